package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/trinex-it/blackout/config"
	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecoveryCodeCount = 8

// totpUsecaseService implements the TOTPUsecase interface.
type totpUsecaseService struct {
	credentialChecker

	txManager     repository.TransactionManager
	otpService    service.OTPService
	qrcodeService service.QRCodeService
	current       usecase.CurrentPrincipal
	issuer        string
	recoveryCodes int
	now           usecase.Clock
	logger        *slog.Logger
}

// TOTPServiceParams holds dependencies for TOTPService, injected by Fx.
type TOTPServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	TxManager        repository.TransactionManager
	Hasher           service.PasswordHasher
	OTPService       service.OTPService
	QRCodeService    service.QRCodeService
	CurrentPrincipal usecase.CurrentPrincipal
	Config           *config.Config
	Logger           *slog.Logger
	Clock            usecase.Clock `optional:"true"`
}

// NewTOTPService is the constructor for totpUsecaseService.
func NewTOTPService(params TOTPServiceParams) usecase.TOTPUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	recoveryCodes := params.Config.Blackout.TOTP.RecoveryCodes
	if recoveryCodes <= 0 {
		recoveryCodes = defaultRecoveryCodeCount
	}

	return &totpUsecaseService{
		credentialChecker: credentialChecker{accountRepo: params.AccountRepo, hasher: params.Hasher},
		txManager:         params.TxManager,
		otpService:        params.OTPService,
		qrcodeService:     params.QRCodeService,
		current:           params.CurrentPrincipal,
		issuer:            params.Config.Blackout.TOTP.AppName,
		recoveryCodes:     recoveryCodes,
		now:               now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *totpUsecaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate creates a secret and its QR code. Nothing is stored until Enable.
func (srv *totpUsecaseService) Generate(ctx context.Context) (*usecase.TOTPRegistration, error) {
	account, err := srv.current.Account(ctx)
	if err != nil {
		return nil, err
	}
	if account.TFAEnabled() {
		return nil, errors.WithStack(domainerrors.ErrTFAAlreadyEnabled)
	}

	secret, err := srv.otpService.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp secret")
	}
	uri, err := srv.otpService.EnrollmentURI(account.TOTPLabel(), secret, srv.issuer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build enrollment uri")
	}
	qrURI, err := srv.qrcodeService.GenerateDataURI(uri)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render enrollment qr code")
	}

	srv.log(ctx).Info("TOTP secret generated", slog.Int64("authID", account.ID))

	return &usecase.TOTPRegistration{Secret: secret, QRURI: qrURI}, nil
}

// Enable checks code against the supplied secret and stores it with fresh recovery codes.
func (srv *totpUsecaseService) Enable(ctx context.Context, input *usecase.EnableTOTPInput) ([]string, error) {
	principal, err := srv.current.Principal(ctx)
	if err != nil {
		return nil, err
	}
	identity := principal.Identity()
	secret := strings.TrimSpace(input.Secret)

	var recoveryCodes []string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()
		account, err := findLocked(ctx, repo, identity)
		if err != nil {
			return err
		}
		if account.TFAEnabled() {
			return errors.WithStack(domainerrors.ErrTFAAlreadyEnabled)
		}
		if !srv.otpService.Verify(input.Code, secret, srv.now()) {
			return errors.WithStack(domainerrors.ErrInvalidTOTP)
		}

		codes, err := srv.otpService.GenerateRecoveryCodes(srv.recoveryCodes)
		if err != nil {
			return errors.Wrap(err, "failed to generate recovery codes")
		}
		account.EnableTFA(secret, codes)

		if err := repo.Save(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store totp secret")
		}
		recoveryCodes = codes

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to enable 2FA", slog.Int64("authID", identity.AuthID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to enable 2fa")
	}

	srv.log(ctx).Info("2FA enabled", slog.Int64("authID", identity.AuthID))

	return recoveryCodes, nil
}

// Disable checks code against the stored secret and clears the secret and recovery codes.
func (srv *totpUsecaseService) Disable(ctx context.Context, code string) error {
	principal, err := srv.current.Principal(ctx)
	if err != nil {
		return err
	}
	identity := principal.Identity()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()
		account, err := findLocked(ctx, repo, identity)
		if err != nil {
			return err
		}
		if !account.TFAEnabled() {
			return errors.WithStack(domainerrors.ErrTFANotEnabled)
		}
		if !srv.otpService.Verify(code, account.TOTPSecret, srv.now()) {
			return errors.WithStack(domainerrors.ErrInvalidTOTP)
		}
		account.DisableTFA()

		return errors.Wrap(repo.Save(ctx, account), "failed to clear totp secret")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to disable 2FA", slog.Int64("authID", identity.AuthID), slog.Any("error", err))

		return errors.Wrap(err, "failed to disable 2fa")
	}

	srv.log(ctx).Info("2FA disabled", slog.Int64("authID", identity.AuthID))

	return nil
}

// DisableWithRecovery clears 2FA after checking credentials and a recovery code.
// The membership check and the clearing write share one locked transaction.
func (srv *totpUsecaseService) DisableWithRecovery(ctx context.Context, input *usecase.DisableWithRecoveryInput) error {
	subject := strings.TrimSpace(input.Subject)

	authenticated, err := srv.authenticate(ctx, srv.log(ctx), subject, input.Password)
	if err != nil {
		return errors.Wrap(err, "recovery disable failed")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()
		account, err := repository.FindBySubject(ctx, repo, subject)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "account vanished")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if account.ID != authenticated.ID || !account.Active {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "account changed")
		}
		if !account.TFAEnabled() {
			return errors.WithStack(domainerrors.ErrTFANotEnabled)
		}
		if !account.HasRecoveryCode(input.RecoveryCode) {
			return errors.WithStack(domainerrors.ErrInvalidRecoveryCode)
		}
		// Using any recovery code invalidates all of them.
		account.DisableTFA()

		return errors.Wrap(repo.Save(ctx, account), "failed to clear totp secret")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to disable 2FA with recovery code", slog.String("subject", subject), slog.Any("error", err))

		return errors.Wrap(err, "failed to disable 2fa with recovery code")
	}

	srv.log(ctx).Info("2FA disabled with recovery code", slog.String("subject", subject))

	return nil
}
