package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/errors"
)

type tenantPrincipal struct {
	*entity.UserPrincipal
	TenantID string
}

func TestDefaultPrincipalFactory_FromClaims(t *testing.T) {
	userID := int64(9)
	claims := &entity.Claims{
		Subject:     "alice",
		AuthID:      42,
		UserID:      &userID,
		FirstName:   "Alice",
		LastName:    "Liddell",
		Authorities: []string{"USER"},
	}

	principal, err := NewDefaultPrincipalFactory().FromClaims(claims)
	require.NoError(t, err)

	identity := principal.Identity()
	assert.Equal(t, int64(42), identity.AuthID)
	require.NotNil(t, identity.UserID)
	assert.Equal(t, int64(9), *identity.UserID)
	assert.Equal(t, "alice", identity.Subject)
	assert.Equal(t, "Alice", identity.FirstName)
	assert.Equal(t, "Liddell", identity.LastName)
	assert.Equal(t, []string{"USER"}, identity.Authorities)

	// The principal owns its slices.
	claims.Authorities[0] = "ADMIN"
	assert.Equal(t, []string{"USER"}, identity.Authorities)
}

func TestPrincipalFactory_CustomClaimsRoundTrip(t *testing.T) {
	factory := NewPrincipalFactory(
		func(claims *entity.Claims, base *entity.UserPrincipal) (entity.Principal, error) {
			return &tenantPrincipal{UserPrincipal: base, TenantID: claims.GetString("tenant")}, nil
		},
		func(principal entity.Principal) map[string]any {
			p, ok := principal.(*tenantPrincipal)
			if !ok {
				return nil
			}

			return map[string]any{"tenant": p.TenantID, "sub": "spoofed"}
		},
	)

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc, err := NewJWTServiceWithClock(newTestConfig(), factory, clock.Now)
	require.NoError(t, err)

	issued := &tenantPrincipal{UserPrincipal: testPrincipal(), TenantID: "acme"}
	token, err := svc.Issue(issued, entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	// Standard claims win over application claims with the same name.
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "acme", claims.GetString("tenant"))

	principal, err := factory.FromClaims(claims)
	require.NoError(t, err)

	tp, ok := principal.(*tenantPrincipal)
	require.True(t, ok)
	assert.Equal(t, "acme", tp.TenantID)
	assert.Equal(t, "alice", tp.Subject)
	assert.Equal(t, int64(42), tp.AuthID)
}

func TestPrincipalFactory_HookFailures(t *testing.T) {
	claims := &entity.Claims{Subject: "alice", AuthID: 1}

	failing := NewPrincipalFactory(func(*entity.Claims, *entity.UserPrincipal) (entity.Principal, error) {
		return nil, errors.New("tenant missing")
	}, nil)
	_, err := failing.FromClaims(claims)
	assert.ErrorContains(t, err, "tenant missing")

	empty := NewPrincipalFactory(func(*entity.Claims, *entity.UserPrincipal) (entity.Principal, error) {
		return &tenantPrincipal{}, nil
	}, nil)
	_, err = empty.FromClaims(claims)
	assert.Error(t, err)

	_, err = NewDefaultPrincipalFactory().FromClaims(nil)
	assert.Error(t, err)
}

func TestPrincipalFactory_ClaimsOf(t *testing.T) {
	userID := int64(3)
	p := testPrincipal()
	p.UserID = &userID

	claims := NewDefaultPrincipalFactory().ClaimsOf(p)

	assert.Equal(t, "alice", claims[entity.ClaimSubject])
	assert.Equal(t, int64(42), claims[entity.ClaimAuthID])
	assert.Equal(t, int64(3), claims[entity.ClaimUserID])
	assert.Equal(t, []string{"USER", "ADMIN"}, claims[entity.ClaimAuthorities])
	assert.NotContains(t, claims, "password")
}
