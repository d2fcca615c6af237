package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/errors"
)

var testSigningKey = []byte(strings.Repeat("s", config.MinSecretBytes))

func newTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Blackout.JWT.Secret = base64.StdEncoding.EncodeToString(testSigningKey)

	return cfg
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestJWTService(t *testing.T, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(newTestConfig(), NewDefaultPrincipalFactory(), clock.Now)
	require.NoError(t, err)

	return svc
}

func testPrincipal() *entity.UserPrincipal {
	return &entity.UserPrincipal{
		AuthID:      42,
		Subject:     "alice",
		FirstName:   "Alice",
		LastName:    "Liddell",
		Authorities: []string{"USER", "ADMIN"},
	}
}

func TestJWTService_IssueAndParseRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	for _, tokenType := range []entity.TokenType{entity.TokenTypeAccess, entity.TokenTypeRefresh} {
		t.Run(tokenType.String(), func(t *testing.T) {
			token, err := svc.Issue(testPrincipal(), tokenType, 15*time.Minute)
			require.NoError(t, err)

			claims, err := svc.Parse(token)
			require.NoError(t, err)

			assert.Equal(t, "alice", claims.Subject)
			assert.Equal(t, int64(42), claims.AuthID)
			assert.Nil(t, claims.UserID)
			assert.Equal(t, "Alice", claims.FirstName)
			assert.Equal(t, "Liddell", claims.LastName)
			assert.Equal(t, tokenType, claims.TokenType)
			assert.Equal(t, []string{"USER", "ADMIN"}, claims.Authorities)
			assert.True(t, clock.now.Equal(claims.IssuedAt))
			assert.True(t, clock.now.Add(15*time.Minute).Equal(claims.ExpiresAt))
			assert.NotEmpty(t, claims.TokenID)
			assert.Empty(t, claims.Custom)
		})
	}
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})

	first, err := svc.Issue(testPrincipal(), entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)
	second, err := svc.Issue(testPrincipal(), entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_ClassSeparation(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})

	access, err := svc.Issue(testPrincipal(), entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)
	refresh, err := svc.Issue(testPrincipal(), entity.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	assert.True(t, svc.IsValid(access, entity.TokenTypeAccess))
	assert.False(t, svc.IsValid(access, entity.TokenTypeRefresh))
	assert.True(t, svc.IsValid(refresh, entity.TokenTypeRefresh))
	assert.False(t, svc.IsValid(refresh, entity.TokenTypeAccess))
}

func TestJWTService_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(testPrincipal(), entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	assert.True(t, svc.IsValid(token, entity.TokenTypeAccess))

	clock.Advance(time.Second)
	assert.False(t, svc.IsValid(token, entity.TokenTypeAccess))

	_, err = svc.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))

	_, err = svc.ExpirationOf(token)
	assert.Error(t, err)
}

func TestJWTService_LeewayExtendsExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cfg := newTestConfig()
	cfg.Blackout.JWT.Leeway = 30 * time.Second
	svc, err := NewJWTServiceWithClock(cfg, nil, clock.Now)
	require.NoError(t, err)

	token, err := svc.Issue(testPrincipal(), entity.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	clock.Advance(80 * time.Second)
	assert.True(t, svc.IsValid(token, entity.TokenTypeAccess))

	clock.Advance(20 * time.Second)
	assert.False(t, svc.IsValid(token, entity.TokenTypeAccess))
}

func TestJWTService_ExpirationOf(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(testPrincipal(), entity.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	exp, err := svc.ExpirationOf(token)
	require.NoError(t, err)
	assert.True(t, clock.now.Add(time.Hour).Equal(exp))
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock)

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":        "alice",
			"uid":        42,
			"token_type": "ACCESS",
			"iat":        clock.now.Unix(),
			"exp":        clock.now.Add(time.Minute).Unix(),
		}
	}
	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	without := func(name string) jwt.MapClaims {
		claims := validClaims()
		delete(claims, name)

		return claims
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
			wantErr: service.ErrTokenMalformed,
		},
		{
			name: "wrong key",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(strings.Repeat("x", 32)), validClaims())
			},
			wantErr: service.ErrTokenInvalid,
		},
		{
			name: "other hmac algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, testSigningKey, validClaims())
			},
			wantErr: service.ErrTokenInvalid,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())
			},
			wantErr: service.ErrTokenInvalid,
		},
		{
			name:    "missing sub",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, testSigningKey, without("sub")) },
			wantErr: service.ErrTokenInvalid,
		},
		{
			name:    "missing uid",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, testSigningKey, without("uid")) },
			wantErr: service.ErrTokenInvalid,
		},
		{
			name: "missing token_type",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, testSigningKey, without("token_type"))
			},
			wantErr: service.ErrTokenInvalid,
		},
		{
			name:    "missing exp",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, testSigningKey, without("exp")) },
			wantErr: service.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token(t)

			_, err := svc.Parse(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.False(t, svc.IsValid(token, entity.TokenTypeAccess))
		})
	}
}

func TestJWTService_IssueValidation(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})

	_, err := svc.Issue(nil, entity.TokenTypeAccess, time.Minute)
	assert.Error(t, err)

	_, err = svc.Issue(testPrincipal(), entity.TokenType("ID"), time.Minute)
	assert.Error(t, err)

	_, err = svc.Issue(testPrincipal(), entity.TokenTypeAccess, 0)
	assert.Error(t, err)
}

func TestNewJWTService_RejectsWeakSecrets(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty", secret: ""},
		{name: "not base64", secret: "!!!"},
		{name: "255 bits", secret: base64.StdEncoding.EncodeToString(make([]byte, 31))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.Blackout.JWT.Secret = tt.secret

			svc, err := NewJWTService(cfg, nil)
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestNewJWTService_RejectsExcessiveLeeway(t *testing.T) {
	cfg := newTestConfig()
	cfg.Blackout.JWT.Leeway = 61 * time.Second

	_, err := NewJWTService(cfg, nil)
	assert.Error(t, err)
}
