package usecase

import "context"

// TOTPRegistration is the material needed to add the account to an authenticator app.
type TOTPRegistration struct {
	Secret string
	QRURI  string // data:image/png;base64 QR code of the otpauth URI.
}

// EnableTOTPInput confirms enrollment with a code computed from Secret.
type EnableTOTPInput struct {
	Secret string
	Code   string
}

// DisableWithRecoveryInput disables 2FA for an account whose authenticator is lost.
type DisableWithRecoveryInput struct {
	Subject      string
	Password     string
	RecoveryCode string
}

// TOTPUsecase defines the second-factor enrollment and removal operations.
type TOTPUsecase interface {
	// Generate prepares a new secret for the current account without storing it.
	Generate(ctx context.Context) (*TOTPRegistration, error)
	// Enable stores the secret and returns fresh recovery codes.
	Enable(ctx context.Context, input *EnableTOTPInput) ([]string, error)
	// Disable removes 2FA from the current account after checking a TOTP code.
	Disable(ctx context.Context, code string) error
	// DisableWithRecovery removes 2FA using credentials and a recovery code.
	DisableWithRecovery(ctx context.Context, input *DisableWithRecoveryInput) error
}
