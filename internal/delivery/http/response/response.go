// Package response holds the JSON bodies written by the HTTP handlers.
package response

import (
	"net/http"
	"time"

	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthResponse is returned by login and refresh.
// Tokens are null while a second factor is pending.
type AuthResponse struct {
	NeedOTP                bool    `json:"needOTP"`
	AccessToken            *string `json:"access_token"`
	RefreshToken           *string `json:"refresh_token"`
	AccessTokenExpiration  int64   `json:"access_token_expiration"`  // Milliseconds.
	RefreshTokenExpiration int64   `json:"refresh_token_expiration"` // Milliseconds.
}

// StatusResponse describes the authenticated principal.
type StatusResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TOTPRegistrationResponse carries a freshly generated secret and its QR code.
type TOTPRegistrationResponse struct {
	Secret string `json:"secret"`
	QRURI  string `json:"qrURI"`
}

// RecoveryCodesResponse is returned once when 2FA is enabled.
type RecoveryCodesResponse struct {
	RecoveryCodes []string `json:"recoveryCodes"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewAuthResponse maps a login or refresh result to its wire form.
func NewAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	if output.NeedOTP {
		return &AuthResponse{NeedOTP: true}
	}

	return &AuthResponse{
		AccessToken:            &output.AccessToken,
		RefreshToken:           &output.RefreshToken,
		AccessTokenExpiration:  output.AccessTokenExpiration.Milliseconds(),
		RefreshTokenExpiration: output.RefreshTokenExpiration.Milliseconds(),
	}
}

// NewStatusResponse maps the current principal's status.
func NewStatusResponse(status *usecase.AuthStatus) *StatusResponse {
	return &StatusResponse{
		ID:        status.ID,
		Username:  status.Username,
		Role:      status.Role,
		FirstName: status.FirstName,
		LastName:  status.LastName,
	}
}

// OK writes body with status 200.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Error writes the error envelope for appErr.
func Error(c echo.Context, appErr domainerrors.AppError, now time.Time) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr, now))
}
