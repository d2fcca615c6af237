package auth

import (
	"encoding/base32"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/errors"
)

const (
	totpPeriod     = 30
	totpSkew       = 1
	totpSecretSize = 20
	totpCodeLength = 6

	defaultIssuer = "blackout"
)

var totpValidateOpts = totp.ValidateOpts{
	Period:    totpPeriod,
	Skew:      totpSkew,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// totpService implements RFC 6238 codes with SHA-1, 6 digits and a 30 second step.
type totpService struct {
	issuer string
}

// NewTOTPService creates the TOTP primitive. The issuer defaults to blackout.totp.appName.
func NewTOTPService(cfg *config.Config) service.OTPService {
	issuer := strings.TrimSpace(cfg.Blackout.TOTP.AppName)
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &totpService{issuer: issuer}
}

// GenerateSecret returns a fresh 160-bit base32 secret.
func (s *totpService) GenerateSecret() (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: "enrollment",
		Period:      totpPeriod,
		SecretSize:  totpSecretSize,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", errors.Wrap(err, "totp.Generate")
	}

	return key.Secret(), nil
}

// Verify accepts the code for the current step and one step either side.
func (s *totpService) Verify(code, secret string, now time.Time) bool {
	code = strings.TrimSpace(code)
	secret = strings.TrimSpace(secret)
	if secret == "" || len(code) != totpCodeLength {
		return false
	}

	valid, err := totp.ValidateCustom(code, secret, now.UTC(), totpValidateOpts)

	return err == nil && valid
}

// GenerateRecoveryCodes returns n distinct single-use codes.
func (s *totpService) GenerateRecoveryCodes(n int) ([]string, error) {
	return generateRecoveryCodes(n, nil)
}

// EnrollmentURI builds the otpauth:// URI carrying secret.
func (s *totpService) EnrollmentURI(label, secret, issuer string) (string, error) {
	if strings.TrimSpace(issuer) == "" {
		issuer = s.issuer
	}

	raw, err := decodeTOTPSecret(secret)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: label,
		Period:      totpPeriod,
		Secret:      raw,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", errors.Wrap(err, "totp.Generate")
	}

	return key.URL(), nil
}

func decodeTOTPSecret(secret string) ([]byte, error) {
	normalized := strings.TrimRight(strings.ToUpper(strings.TrimSpace(secret)), "=")
	if normalized == "" {
		return nil, errors.New("totp secret is empty")
	}

	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "totp secret is not base32")
	}

	return raw, nil
}
