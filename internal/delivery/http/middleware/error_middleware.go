package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/trinex-it/blackout/config"
	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	"github.com/trinex-it/blackout/internal/delivery/http/response"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const categoryHTTP = "HTTP_ERROR"

// ErrorMiddleware renders every handler error as the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		now:    time.Now,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	_ = response.Error(c, m.appErrorOf(err, c), m.now())
}

func (m *ErrorMiddleware) appErrorOf(err error, c echo.Context) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			return appErr
		}
		m.logUnhandled(err, c)
		if m.debug {
			return appErr
		}

		return domainerrors.ErrInternalError
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(err, c)
		}

		return domainerrors.NewBaseError(httpErr.Code, categoryForStatus(httpErr.Code), message, nil)
	}

	m.logUnhandled(err, c)
	if m.debug {
		return domainerrors.ErrInternalError.WithMessage(err.Error())
	}

	return domainerrors.ErrInternalError
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func categoryForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domainerrors.CategoryValidation
	case http.StatusUnauthorized:
		return domainerrors.CategoryUnauthorized
	case http.StatusForbidden:
		return domainerrors.CategoryAuthorization
	case http.StatusInternalServerError:
		return domainerrors.CategoryInternal
	default:
		return categoryHTTP
	}
}
