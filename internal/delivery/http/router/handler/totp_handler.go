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

// TOTPHandlerParams holds dependencies for TOTPHandler, injected by Fx.
type TOTPHandlerParams struct {
	fx.In

	TOTPUC usecase.TOTPUsecase
	Logger *slog.Logger
}

// TOTPHandler serves two-factor enrollment and removal.
type TOTPHandler struct {
	totpUC usecase.TOTPUsecase
	logger *slog.Logger
}

// NewTOTPHandler is the constructor for TOTPHandler.
func NewTOTPHandler(params TOTPHandlerParams) *TOTPHandler {
	return &TOTPHandler{
		totpUC: params.TOTPUC,
		logger: params.Logger,
	}
}

// Generate returns a new secret and its enrollment QR code.
func (h *TOTPHandler) Generate(c echo.Context) error {
	registration, err := h.totpUC.Generate(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &response.TOTPRegistrationResponse{
		Secret: registration.Secret,
		QRURI:  registration.QRURI,
	})
}

// Enable confirms the secret with a code and returns the recovery codes.
func (h *TOTPHandler) Enable(c echo.Context) error {
	var req EnableTOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("2FA enable attempt")

	codes, err := h.totpUC.Enable(ctx, &usecase.EnableTOTPInput{
		Secret: req.Secret,
		Code:   req.TOTP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &response.RecoveryCodesResponse{RecoveryCodes: codes})
}

// Disable removes 2FA after checking a current code.
func (h *TOTPHandler) Disable(c echo.Context) error {
	var req DisableTOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("2FA disable attempt")

	if err := h.totpUC.Disable(ctx, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// DisableWithRecovery removes 2FA using credentials and a recovery code.
func (h *TOTPHandler) DisableWithRecovery(c echo.Context) error {
	var req DisableWithRecoveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.totpUC.DisableWithRecovery(c.Request().Context(), &usecase.DisableWithRecoveryInput{
		Subject:      req.Subject,
		Password:     req.Password,
		RecoveryCode: req.RecoveryCode,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}
