// Package blackout embeds password login, JWT sessions, TOTP second factor and signup
// into an echo application.
//
// Applications supply an account store and either call NewAuth or add Module to an fx graph.
// The bearer middleware installs the caller's principal into the request context; protected
// routes are guarded with RequireAuthenticated or RequireAuthority.
package blackout

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/trinex-it/blackout/config"
	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	httpdelivery "github.com/trinex-it/blackout/internal/delivery/http"
	"github.com/trinex-it/blackout/internal/delivery/http/middleware"
	"github.com/trinex-it/blackout/internal/delivery/http/router"
	"github.com/trinex-it/blackout/internal/delivery/http/router/handler"
	"github.com/trinex-it/blackout/internal/delivery/http/validator"
	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/infra/auth"
	logs "github.com/trinex-it/blackout/internal/infra/log"
	"github.com/trinex-it/blackout/internal/infra/qrcode"
	"github.com/trinex-it/blackout/internal/usecase"
	"github.com/trinex-it/blackout/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Types applications use to implement the store and extend principals.
type (
	Config             = config.Config
	Account            = entity.Account
	Principal          = entity.Principal
	UserPrincipal      = entity.UserPrincipal
	Claims             = entity.Claims
	TokenType          = entity.TokenType
	AccountRepository  = repository.AccountRepository
	TransactionManager = repository.TransactionManager
	RepositoryFactory  = repository.RepositoryFactory
	Store              = repository.Store
	DuplicateKeyError  = repository.DuplicateKeyError
	PasswordHasher     = service.PasswordHasher
	OTPService         = service.OTPService
	TokenService       = service.TokenService
	PrincipalFactory   = service.PrincipalFactory
	PrincipalHook      = auth.PrincipalHook
	ClaimsHook         = auth.ClaimsHook
	AppError           = domainerrors.AppError
	AuthUsecase        = usecase.AuthUsecase
	TOTPUsecase        = usecase.TOTPUsecase
	CurrentPrincipal   = usecase.CurrentPrincipal
	RegisterInput      = usecase.RegisterInput
)

// Token types.
const (
	TokenTypeAccess  = entity.TokenTypeAccess
	TokenTypeRefresh = entity.TokenTypeRefresh
)

// Errors returned by the services. Match them with errors.Is.
var (
	ErrAccountNotFound     = repository.ErrAccountNotFound
	ErrInvalidCredentials  = domainerrors.ErrInvalidCredentials
	ErrUnauthenticated     = domainerrors.ErrUnauthenticated
	ErrAccountNotActive    = domainerrors.ErrAccountNotActive
	ErrInvalidToken        = domainerrors.ErrInvalidToken
	ErrForbidden           = domainerrors.ErrForbidden
	ErrInvalidTOTP         = domainerrors.ErrInvalidTOTP
	ErrInvalidRecoveryCode = domainerrors.ErrInvalidRecoveryCode
	ErrTFAAlreadyEnabled   = domainerrors.ErrTFAAlreadyEnabled
	ErrTFANotEnabled       = domainerrors.ErrTFANotEnabled
	ErrDuplicateKey        = domainerrors.ErrDuplicateKey
	ErrPasswordsDoNotMatch = domainerrors.ErrPasswordsDoNotMatch
	ErrUserNotFound        = domainerrors.ErrUserNotFound
)

// DefaultConfig returns the configuration defaults. The JWT secret must still be set.
func DefaultConfig() *Config {
	return config.Default()
}

// NewPrincipalFactory returns a principal factory extended by application hooks. Either hook may be nil.
func NewPrincipalFactory(hook PrincipalHook, extraClaims ClaimsHook) PrincipalFactory {
	return auth.NewPrincipalFactory(hook, extraClaims)
}

// PrincipalFrom returns the principal installed by the bearer middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	return deliverycontext.GetPrincipal(ctx)
}

// Option customizes NewAuth.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock replaces the wall clock used for token and TOTP checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Services exposes the authentication use cases for application code.
type Services struct {
	Auth    AuthUsecase
	TOTP    TOTPUsecase
	Current CurrentPrincipal
	Tokens  TokenService
}

// Auth is the assembled authentication boundary.
type Auth struct {
	cfg             *Config
	logger          *slog.Logger
	services        Services
	authMiddleware  *middleware.AuthMiddleware
	errorMiddleware *middleware.ErrorMiddleware
	authHandler     *handler.AuthHandler
	totpHandler     *handler.TOTPHandler
}

// NewAuth wires the authentication services around an application account store.
// A nil hasher, otp service, principal factory or logger is replaced by the default.
func NewAuth(
	cfg *Config,
	repo AccountRepository,
	txManager TransactionManager,
	hasher PasswordHasher,
	otp OTPService,
	principalFactory PrincipalFactory,
	logger *slog.Logger,
	opts ...Option,
) (*Auth, error) {
	if cfg == nil {
		return nil, errors.New("blackout: config is required")
	}
	if repo == nil || txManager == nil {
		return nil, errors.New("blackout: account repository and transaction manager are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "blackout: invalid config")
	}

	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if logger == nil {
		var err error
		if logger, err = logs.NewWithWriter(cfg, os.Stdout); err != nil {
			return nil, errors.Wrap(err, "blackout: failed to build logger")
		}
	}
	if hasher == nil {
		hasher = auth.NewBcryptHasher(cfg)
	}
	if otp == nil {
		otp = auth.NewTOTPService(cfg)
	}
	if principalFactory == nil {
		principalFactory = auth.NewDefaultPrincipalFactory()
	}

	tokenService, err := auth.NewJWTServiceWithClock(cfg, principalFactory, o.clock)
	if err != nil {
		return nil, errors.Wrap(err, "blackout: failed to build token service")
	}

	current := impl.NewCurrentPrincipalService(repo)
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AccountRepo:      repo,
		Hasher:           hasher,
		TokenService:     tokenService,
		OTPService:       otp,
		CurrentPrincipal: current,
		Config:           cfg,
		Logger:           logger,
		Clock:            o.clock,
	})
	totpUC := impl.NewTOTPService(impl.TOTPServiceParams{
		AccountRepo:      repo,
		TxManager:        txManager,
		Hasher:           hasher,
		OTPService:       otp,
		QRCodeService:    qrcode.NewQRCodeService(cfg),
		CurrentPrincipal: current,
		Config:           cfg,
		Logger:           logger,
		Clock:            o.clock,
	})

	return &Auth{
		cfg:    cfg,
		logger: logger,
		services: Services{
			Auth:    authUC,
			TOTP:    totpUC,
			Current: current,
			Tokens:  tokenService,
		},
		authMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService:     tokenService,
			PrincipalFactory: principalFactory,
			Logger:           logger,
		}),
		errorMiddleware: middleware.NewErrorMiddleware(logger, cfg),
		authHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		totpHandler:     handler.NewTOTPHandler(handler.TOTPHandlerParams{TOTPUC: totpUC, Logger: logger}),
	}, nil
}

// Services returns the use cases behind the HTTP endpoints.
func (a *Auth) Services() Services {
	return a.services
}

// Middleware installs the principal of a valid bearer access token. It never rejects a request.
func (a *Auth) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return a.authMiddleware.Authenticate(next)
}

// RequireAuthenticated rejects requests without a principal.
func (a *Auth) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return a.authMiddleware.RequireAuthenticated(next)
}

// RequireAuthority admits principals holding at least one of authorities.
func (a *Auth) RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return a.authMiddleware.RequireAuthority(authorities...)
}

// ErrorHandler renders errors as the JSON error envelope. Install it as echo's HTTPErrorHandler.
func (a *Auth) ErrorHandler(err error, c echo.Context) {
	a.errorMiddleware.HandleHTTPError(err, c)
}

// RegisterRoutes mounts the authentication endpoints on e under blackout.baseUrl.
// A validator is installed when e has none.
func (a *Auth) RegisterRoutes(e *echo.Echo) {
	if e.Validator == nil {
		e.Validator = validator.New()
	}

	router.NewRouter(router.RouterParams{
		AuthHandler:    a.authHandler,
		TOTPHandler:    a.totpHandler,
		AuthMiddleware: a.authMiddleware,
		Config:         a.cfg,
	}).RegisterRoutes(e)
}

// NewEcho returns an echo instance with the standard middleware, error envelope,
// bearer middleware and authentication routes installed.
func (a *Auth) NewEcho() *echo.Echo {
	e := httpdelivery.NewEcho(a.cfg, a.logger)
	e.HTTPErrorHandler = a.ErrorHandler
	e.Use(a.Middleware)
	a.RegisterRoutes(e)

	return e
}

// Module provides the authentication services, handlers and middleware to an fx graph.
// The graph must supply *config.Config, *slog.Logger and a Store.
// Replace the default PrincipalFactory with fx.Decorate.
var Module = fx.Module("blackout",
	fx.Provide(
		func(store Store) AccountRepository { return store },
		func(store Store) TransactionManager { return store },
		auth.NewBcryptHasher,
		auth.NewTOTPService,
		auth.NewDefaultPrincipalFactory,
		auth.NewJWTService,
		qrcode.NewQRCodeService,
		impl.NewCurrentPrincipalService,
		impl.NewAuthService,
		impl.NewTOTPService,
		middleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		handler.NewTOTPHandler,
	),
)
