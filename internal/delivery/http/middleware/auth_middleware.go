package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService     service.TokenService
	PrincipalFactory service.PrincipalFactory
	Logger           *slog.Logger
}

// AuthMiddleware installs the principal of a valid access token and guards protected routes.
type AuthMiddleware struct {
	tokenService     service.TokenService
	principalFactory service.PrincipalFactory
	logger           *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService:     params.TokenService,
		principalFactory: params.PrincipalFactory,
		logger:           params.Logger,
	}
}

// Authenticate reads the bearer token and installs its principal into the request context.
// It never rejects a request: a missing or invalid token leaves the request unauthenticated
// and the decision to the route's guard. Requests that already carry a principal pass untouched.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if _, ok := deliverycontext.GetPrincipal(ctx); ok {
			return next(c)
		}

		token, ok := bearerToken(req)
		if !ok || !m.tokenService.IsValid(token, entity.TokenTypeAccess) {
			return next(c)
		}

		principal, err := m.principalOf(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Ignoring bearer token",
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)

			return next(c)
		}

		c.SetRequest(req.WithContext(deliverycontext.WithPrincipal(ctx, principal)))

		return next(c)
	}
}

// principalOf converts a validated token into a principal.
// Panics raised by application principal hooks are reported as errors.
func (m *AuthMiddleware) principalOf(token string) (principal entity.Principal, err error) {
	defer func() {
		if r := recover(); r != nil {
			principal = nil
			err = errors.Errorf("principal factory panicked: %v", r)
		}
	}()

	claims, err := m.tokenService.Parse(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	principal, err = m.principalFactory.FromClaims(claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build principal from claims")
	}
	if principal == nil || principal.Identity() == nil {
		return nil, errors.New("principal factory returned no principal")
	}

	return principal, nil
}

// RequireAuthenticated rejects requests without a principal with 401.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetPrincipal(c.Request().Context()); !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// RequireAuthority admits principals holding at least one of authorities.
// Unauthenticated requests get 401, authenticated ones lacking the authority get 403.
func (m *AuthMiddleware) RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			identity := principal.Identity()
			for _, authority := range authorities {
				if identity.HasAuthority(authority) {
					return next(c)
				}
			}

			return errors.WithStack(domainerrors.ErrForbidden)
		}
	}
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
