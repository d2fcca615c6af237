// Package handler contains the HTTP handlers for the authentication endpoints.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	"github.com/trinex-it/blackout/internal/delivery/http/response"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, refresh, status and signup.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Login exchanges credentials for a token pair, or a 2FA challenge.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Subject:    req.Subject,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		TOTPCode:   req.TOTPCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewAuthResponse(output))
}

// Refresh issues a new access token for a valid refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Token refresh attempt")

	output, err := h.authUC.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewAuthResponse(output))
}

// Status describes the authenticated caller.
func (h *AuthHandler) Status(c echo.Context) error {
	status, err := h.authUC.Status(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewStatusResponse(status))
}

// Signup creates an active account identified by email.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, &response.HealthResponse{Status: "ok"})
}
