package service

import "github.com/trinex-it/blackout/internal/domain/entity"

// PrincipalFactory converts between principals and token claims.
// Applications replace it to carry their own fields through tokens.
type PrincipalFactory interface {
	// FromClaims builds the request principal from verified claims.
	FromClaims(claims *entity.Claims) (entity.Principal, error)

	// ClaimsOf projects a principal into the claims written to a token.
	ClaimsOf(principal entity.Principal) map[string]any
}
