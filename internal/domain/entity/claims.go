package entity

import "time"

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	// TokenTypeAccess marks short-lived tokens accepted by the bearer middleware.
	TokenTypeAccess TokenType = "ACCESS"
	// TokenTypeRefresh marks long-lived tokens accepted only by the refresh endpoint.
	TokenTypeRefresh TokenType = "REFRESH"
)

// String returns the string representation of the TokenType.
func (t TokenType) String() string {
	return string(t)
}

// IsValid checks if the TokenType is a known value.
func (t TokenType) IsValid() bool {
	return t == TokenTypeAccess || t == TokenTypeRefresh
}

// Claim names used in issued tokens.
const (
	ClaimSubject     = "sub"
	ClaimAuthID      = "uid"
	ClaimUserID      = "user_id"
	ClaimFirstName   = "first_name"
	ClaimLastName    = "last_name"
	ClaimTokenType   = "token_type"
	ClaimAuthorities = "role"
	ClaimIssuedAt    = "iat"
	ClaimExpiresAt   = "exp"
	ClaimTokenID     = "jti"
)

// Claims is the decoded, verified content of a token.
type Claims struct {
	Subject     string
	AuthID      int64
	UserID      *int64
	FirstName   string
	LastName    string
	TokenType   TokenType
	Authorities []string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	TokenID     string
	Custom      map[string]any // Claims not covered by the fields above.
}

// Get returns a custom claim by name.
func (c *Claims) Get(name string) (any, bool) {
	v, ok := c.Custom[name]

	return v, ok
}

// GetString returns a custom claim as a string, or "" if absent or not a string.
func (c *Claims) GetString(name string) string {
	v, _ := c.Custom[name].(string)

	return v
}
