package auth

import (
	"maps"
	"slices"

	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/errors"
)

// PrincipalHook builds an application principal around base, which already
// holds the standard fields decoded from claims.
type PrincipalHook func(claims *entity.Claims, base *entity.UserPrincipal) (entity.Principal, error)

// ClaimsHook returns the application claims written into every issued token.
type ClaimsHook func(principal entity.Principal) map[string]any

type principalFactory struct {
	hook        PrincipalHook
	extraClaims ClaimsHook
}

// NewDefaultPrincipalFactory produces plain *entity.UserPrincipal values.
func NewDefaultPrincipalFactory() service.PrincipalFactory {
	return &principalFactory{}
}

// NewPrincipalFactory creates a factory extended by application hooks. Either hook may be nil.
func NewPrincipalFactory(hook PrincipalHook, extraClaims ClaimsHook) service.PrincipalFactory {
	return &principalFactory{
		hook:        hook,
		extraClaims: extraClaims,
	}
}

// FromClaims fills the standard fields and hands the result to the hook.
func (f *principalFactory) FromClaims(claims *entity.Claims) (entity.Principal, error) {
	if claims == nil {
		return nil, errors.New("claims are required")
	}

	base := &entity.UserPrincipal{
		AuthID:      claims.AuthID,
		Subject:     claims.Subject,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		Authorities: slices.Clone(claims.Authorities),
	}
	if claims.UserID != nil {
		userID := *claims.UserID
		base.UserID = &userID
	}

	if f.hook == nil {
		return base, nil
	}

	principal, err := f.hook(claims, base)
	if err != nil {
		return nil, errors.Wrap(err, "principal hook")
	}
	if principal == nil || principal.Identity() == nil {
		return nil, errors.New("principal hook returned no identity")
	}

	return principal, nil
}

// ClaimsOf writes application claims first so they can never shadow the standard ones.
func (f *principalFactory) ClaimsOf(principal entity.Principal) map[string]any {
	claims := map[string]any{}
	if f.extraClaims != nil {
		maps.Copy(claims, f.extraClaims(principal))
	}

	identity := principal.Identity()
	authorities := identity.Authorities
	if authorities == nil {
		authorities = []string{}
	}

	claims[entity.ClaimSubject] = identity.Subject
	claims[entity.ClaimAuthID] = identity.AuthID
	claims[entity.ClaimFirstName] = identity.FirstName
	claims[entity.ClaimLastName] = identity.LastName
	claims[entity.ClaimAuthorities] = authorities
	if identity.UserID != nil {
		claims[entity.ClaimUserID] = *identity.UserID
	} else {
		delete(claims, entity.ClaimUserID)
	}

	return claims
}
