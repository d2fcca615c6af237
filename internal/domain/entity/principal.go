package entity

import "slices"

// Principal is the authenticated identity attached to a request.
// Applications extend it by embedding *UserPrincipal in their own type.
type Principal interface {
	Identity() *UserPrincipal
}

// UserPrincipal is the default principal built from an account or from token claims.
// It never carries a password.
type UserPrincipal struct {
	AuthID      int64    // Account identifier (the "uid" claim).
	UserID      *int64   // Optional application-level user identifier.
	Subject     string   // Login subject (the "sub" claim).
	FirstName   string   // Given name.
	LastName    string   // Family name.
	Authorities []string // Granted authorities.
}

// Identity implements Principal.
func (p *UserPrincipal) Identity() *UserPrincipal {
	return p
}

// HasAuthority checks if the principal was granted authority.
func (p *UserPrincipal) HasAuthority(authority string) bool {
	return Authorities(p.Authorities).Contains(authority)
}

// PrimaryAuthority returns the lexicographically first authority or UnknownAuthority.
func (p *UserPrincipal) PrimaryAuthority() string {
	return Authorities(p.Authorities).Primary()
}

// NewUserPrincipal builds the principal for an account logged in as subject.
func NewUserPrincipal(account *Account, subject string) *UserPrincipal {
	return &UserPrincipal{
		AuthID:      account.ID,
		Subject:     subject,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Authorities: slices.Clone(account.Authorities),
	}
}
