package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/trinex-it/blackout/config"
	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentialChecker

	tokenService service.TokenService
	otpService   service.OTPService
	current      usecase.CurrentPrincipal
	jwtConfig    config.JWTConfig
	defaultRole  string
	now          usecase.Clock
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OTPService       service.OTPService
	CurrentPrincipal usecase.CurrentPrincipal
	Config           *config.Config
	Logger           *slog.Logger
	Clock            usecase.Clock `optional:"true"`
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	return &authService{
		credentialChecker: credentialChecker{accountRepo: params.AccountRepo, hasher: params.Hasher},
		tokenService:      params.TokenService,
		otpService:        params.OTPService,
		current:           params.CurrentPrincipal,
		jwtConfig:         params.Config.Blackout.JWT,
		defaultRole:       params.Config.Blackout.Signup.DefaultRole,
		now:               now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials, enforces the second factor and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	subject := strings.TrimSpace(input.Subject)
	srv.log(ctx).Info("Login attempt", slog.String("subject", subject))

	account, err := srv.authenticate(ctx, srv.log(ctx), subject, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	if account.TFAEnabled() {
		code := strings.TrimSpace(input.TOTPCode)
		if code == "" {
			srv.log(ctx).Info("Login requires TOTP code", slog.String("subject", subject))

			return &usecase.AuthOutput{NeedOTP: true}, nil
		}
		if !srv.otpService.Verify(code, account.TOTPSecret, srv.now()) {
			srv.log(ctx).Warn("Login failed", slog.String("subject", subject), slog.String("reason", "invalid totp"))

			return nil, errors.Wrap(domainerrors.ErrInvalidTOTP, "login failed")
		}
	}

	principal := entity.NewUserPrincipal(account, subject)

	accessToken, err := srv.tokenService.Issue(principal, entity.TokenTypeAccess, srv.jwtConfig.AccessTokenExp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := srv.tokenService.Issue(principal, entity.TokenTypeRefresh, srv.jwtConfig.RefreshTokenExp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	// The refresh token is always signed with the long lifetime; rememberMe only shortens what the client keeps.
	refreshExpiration := srv.jwtConfig.RefreshTokenExpNoRemember
	if input.RememberMe {
		refreshExpiration = srv.jwtConfig.RefreshTokenExp
	}

	srv.log(ctx).Info("Login succeeded", slog.String("subject", subject), slog.Int64("authID", account.ID))

	return &usecase.AuthOutput{
		AccessToken:            accessToken,
		RefreshToken:           refreshToken,
		AccessTokenExpiration:  srv.jwtConfig.AccessTokenExp,
		RefreshTokenExpiration: refreshExpiration,
	}, nil
}

// Refresh issues a new access token for a valid refresh token.
// The refresh token itself is returned unchanged.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.Parse(strings.TrimSpace(refreshToken))
	if err != nil {
		srv.log(ctx).Warn("Invalid or expired refresh token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if claims.TokenType != entity.TokenTypeRefresh {
		srv.log(ctx).Warn("Refresh rejected", slog.String("tokenType", claims.TokenType.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "not a refresh token")
	}

	account, err := srv.loadAccount(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "refresh failed")
	}
	// The subject was freed and taken by a new account after the token was issued.
	if account.ID != claims.AuthID {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject belongs to another account")
	}

	accessToken, err := srv.tokenService.Issue(entity.NewUserPrincipal(account, claims.Subject), entity.TokenTypeAccess, srv.jwtConfig.AccessTokenExp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	remaining := max(claims.ExpiresAt.Sub(srv.now()), 0)

	srv.log(ctx).Info("Token refreshed", slog.String("subject", claims.Subject))

	return &usecase.AuthOutput{
		AccessToken:            accessToken,
		RefreshToken:           refreshToken,
		AccessTokenExpiration:  srv.jwtConfig.AccessTokenExp,
		RefreshTokenExpiration: remaining,
	}, nil
}

// Register hashes the password and stores a new account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	account := &entity.Account{
		Username:    strings.TrimSpace(input.Username),
		Email:       strings.TrimSpace(input.Email),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Active:      input.Active,
		Authorities: entity.NormalizeAuthorities(input.Authorities),
	}
	if !account.HasIdentifier() {
		return nil, errors.WithStack(domainerrors.ErrMissingIdentifier)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	account.PasswordHash = hashedPassword

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		var dupErr *repository.DuplicateKeyError
		if errors.As(err, &dupErr) {
			srv.log(ctx).Warn("Duplicate key violation during registration", slog.String("field", dupErr.Field))
			if dupErr.Field == "" {
				return nil, errors.Wrap(domainerrors.ErrDuplicateKey, "registration failed")
			}

			return nil, errors.Wrap(domainerrors.NewDuplicateKeyError(dupErr.Field, dupErr.Value), "registration failed")
		}

		return nil, errors.Wrap(err, "failed to save account")
	}

	srv.log(ctx).Info("Account registered", slog.Int64("authID", account.ID))

	return account, nil
}

// Signup registers an active account identified by email with the default role.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordsDoNotMatch)
	}

	var authorities []string
	if srv.defaultRole != "" {
		authorities = []string{srv.defaultRole}
	}

	return srv.Register(ctx, &usecase.RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		Active:      true,
		Authorities: authorities,
	})
}

// Status describes the principal of the current request.
func (srv *authService) Status(ctx context.Context) (*usecase.AuthStatus, error) {
	principal, err := srv.current.Principal(ctx)
	if err != nil {
		return nil, err
	}
	identity := principal.Identity()

	return &usecase.AuthStatus{
		ID:        identity.AuthID,
		Username:  identity.Subject,
		Role:      identity.PrimaryAuthority(),
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	}, nil
}

// LoadPrincipal resolves subject to a principal, rejecting unknown and inactive accounts.
func (srv *authService) LoadPrincipal(ctx context.Context, subject string) (*entity.UserPrincipal, error) {
	account, err := srv.loadAccount(ctx, subject)
	if err != nil {
		return nil, err
	}

	return entity.NewUserPrincipal(account, subject), nil
}

func (srv *authService) loadAccount(ctx context.Context, subject string) (*entity.Account, error) {
	account, err := repository.FindBySubject(ctx, srv.accountRepo, subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if !account.Active {
		return nil, errors.WithStack(domainerrors.ErrAccountNotActive)
	}

	return account, nil
}
