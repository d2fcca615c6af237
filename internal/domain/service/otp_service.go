package service

import "time"

// OTPService implements the TOTP primitive and recovery code generation.
type OTPService interface {
	// GenerateSecret returns a new base32 secret.
	GenerateSecret() (string, error)

	// Verify reports whether code is valid for secret at now, tolerating one step of drift.
	Verify(code, secret string, now time.Time) bool

	// GenerateRecoveryCodes returns n distinct single-use codes.
	GenerateRecoveryCodes(n int) ([]string, error)

	// EnrollmentURI builds the otpauth:// URI for authenticator apps.
	EnrollmentURI(label, secret, issuer string) (string, error)
}
