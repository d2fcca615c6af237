package service

import (
	"errors"
	"time"

	"github.com/trinex-it/blackout/internal/domain/entity"
)

// Token verification failures. Parse wraps one of these.
var (
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// TokenService issues and verifies signed tokens.
type TokenService interface {
	// Issue signs a token of the given type for principal, valid for ttl.
	Issue(principal entity.Principal, tokenType entity.TokenType, ttl time.Duration) (string, error)

	// Parse verifies signature, algorithm and expiry and returns the claims.
	Parse(token string) (*entity.Claims, error)

	// IsValid reports whether token parses and carries the expected type.
	IsValid(token string, expected entity.TokenType) bool

	// ExpirationOf returns the expiry of a valid token.
	ExpirationOf(token string) (time.Time, error)
}
