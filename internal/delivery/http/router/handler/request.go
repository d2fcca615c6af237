package handler

import (
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
	TOTPCode   string `json:"totpCode"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// EnableTOTPRequest is the body of POST /2fa.
type EnableTOTPRequest struct {
	Secret string `json:"secret" validate:"required"`
	TOTP   string `json:"totp" validate:"required"`
}

// DisableTOTPRequest is the body of POST /2fa/disable.
type DisableTOTPRequest struct {
	Code string `json:"code" validate:"required"`
}

// DisableWithRecoveryRequest is the body of POST /2fa/disable-recovery.
type DisableWithRecoveryRequest struct {
	Subject      string `json:"subject" validate:"required"`
	Password     string `json:"password" validate:"required"`
	RecoveryCode string `json:"recoveryCode" validate:"required"`
}

var errMalformedBody = domainerrors.ErrValidationFailed.WithMessage("Malformed request body")

// bindAndValidate decodes the JSON body into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(errMalformedBody, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
