// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"
)

// Account is the persisted authentication identity.
// An empty TOTPSecret means the second factor is disabled.
type Account struct {
	ID            int64      // Numeric identifier assigned by the repository.
	Username      string     // Optional login name, unique among live accounts.
	Email         string     // Optional email, unique among live accounts.
	PasswordHash  string     // bcrypt hash of the password; never exposed.
	FirstName     string     // Given name carried into tokens.
	LastName      string     // Family name carried into tokens.
	Active        bool       // Inactive accounts cannot log in or refresh.
	Authorities   []string   // Granted authorities, e.g. "USER" or "ADMIN".
	TOTPSecret    string     // Base32 TOTP secret, empty when 2FA is off.
	RecoveryCodes []string   // Single-use 2FA recovery codes.
	CreatedAt     time.Time  // Timestamp of when this account was created.
	UpdatedAt     time.Time  // Timestamp of the last modification.
	DeletedAt     *time.Time // Set when the account has been soft-deleted.
}

// HasIdentifier reports whether the account has at least one login identifier.
func (a *Account) HasIdentifier() bool {
	return strings.TrimSpace(a.Username) != "" || strings.TrimSpace(a.Email) != ""
}

// TFAEnabled reports whether a TOTP secret is stored.
func (a *Account) TFAEnabled() bool {
	return strings.TrimSpace(a.TOTPSecret) != ""
}

// EnableTFA stores the secret and a fresh set of recovery codes.
func (a *Account) EnableTFA(secret string, recoveryCodes []string) {
	a.TOTPSecret = secret
	a.RecoveryCodes = slices.Clone(recoveryCodes)
}

// DisableTFA clears the secret together with every recovery code.
func (a *Account) DisableTFA() {
	a.TOTPSecret = ""
	a.RecoveryCodes = nil
}

// HasRecoveryCode reports whether code is exactly one of the stored recovery codes.
func (a *Account) HasRecoveryCode(code string) bool {
	if code == "" {
		return false
	}

	return slices.Contains(a.RecoveryCodes, code)
}

// TOTPLabel is the account label shown in authenticator apps.
func (a *Account) TOTPLabel() string {
	switch {
	case a.Email != "" && a.Username != "":
		return a.Email + " - " + a.Username
	case a.Email != "":
		return a.Email
	default:
		return a.Username
	}
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}

	c := *a
	c.Authorities = slices.Clone(a.Authorities)
	c.RecoveryCodes = slices.Clone(a.RecoveryCodes)
	if a.DeletedAt != nil {
		deletedAt := *a.DeletedAt
		c.DeletedAt = &deletedAt
	}

	return &c
}
