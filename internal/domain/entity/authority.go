package entity

import (
	"slices"
	"strings"
)

// UnknownAuthority is reported when a principal carries no authority.
const UnknownAuthority = "UNKNOWN"

// Authorities is a list of granted authority names.
type Authorities []string

// Contains checks if the list grants authority.
func (as Authorities) Contains(authority string) bool {
	return slices.Contains(as, authority)
}

// Primary returns the lexicographically first authority, or UnknownAuthority if there is none.
func (as Authorities) Primary() string {
	if len(as) == 0 {
		return UnknownAuthority
	}

	return slices.Min(as)
}

// NormalizeAuthorities trims names and drops blanks and duplicates, keeping order.
func NormalizeAuthorities(ss []string) Authorities {
	result := make(Authorities, 0, len(ss))
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" || result.Contains(s) {
			continue
		}
		result = append(result, s)
	}

	return result
}
