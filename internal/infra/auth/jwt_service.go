// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/errors"
)

// registeredClaims are the claim names decoded into typed Claims fields.
var registeredClaims = map[string]struct{}{
	entity.ClaimSubject:     {},
	entity.ClaimAuthID:      {},
	entity.ClaimUserID:      {},
	entity.ClaimFirstName:   {},
	entity.ClaimLastName:    {},
	entity.ClaimTokenType:   {},
	entity.ClaimAuthorities: {},
	entity.ClaimIssuedAt:    {},
	entity.ClaimExpiresAt:   {},
	entity.ClaimTokenID:     {},
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	key     []byte                   // HMAC signing key, decoded once at startup.
	factory service.PrincipalFactory // Projects principals into claims.
	parser  *jwt.Parser
	now     func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It fails when the secret is missing, not base64, or shorter than 256 bits.
func NewJWTService(cfg *config.Config, factory service.PrincipalFactory) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg, factory, time.Now)
}

// NewJWTServiceWithClock is NewJWTService with an explicit clock.
func NewJWTServiceWithClock(cfg *config.Config, factory service.PrincipalFactory, now func() time.Time) (service.TokenService, error) {
	key, err := config.DecodeSecret(cfg.Blackout.JWT.Secret)
	if err != nil {
		return nil, err
	}

	leeway := cfg.Blackout.JWT.Leeway
	if leeway < 0 || leeway > config.MaxLeeway {
		return nil, errors.Errorf("invalid leeway %s", leeway)
	}
	if factory == nil {
		factory = NewDefaultPrincipalFactory()
	}
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		key:     key,
		factory: factory,
		now:     now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(leeway),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithJSONNumber(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Issue signs a token carrying the principal's claims.
func (s *jwtService) Issue(principal entity.Principal, tokenType entity.TokenType, ttl time.Duration) (string, error) {
	if principal == nil || principal.Identity() == nil {
		return "", errors.New("principal is required")
	}
	if !tokenType.IsValid() {
		return "", errors.Errorf("unknown token type %q", tokenType)
	}
	if ttl <= 0 {
		return "", errors.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := s.now()
	claims := jwt.MapClaims{}
	for name, value := range s.factory.ClaimsOf(principal) {
		claims[name] = value
	}
	claims[entity.ClaimTokenType] = tokenType.String()
	claims[entity.ClaimIssuedAt] = now.Unix()
	claims[entity.ClaimExpiresAt] = now.Add(ttl).Unix()
	claims[entity.ClaimTokenID] = uuid.NewString()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Parse verifies the token and decodes its claims. The token type is not checked.
func (s *jwtService) Parse(tokenString string) (*entity.Claims, error) {
	token, err := s.parser.Parse(tokenString, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.Wrap(service.ErrTokenInvalid, "unexpected claims type")
	}

	return claimsFromMap(mapClaims)
}

// IsValid reports whether token parses and carries the expected type.
func (s *jwtService) IsValid(token string, expected entity.TokenType) bool {
	claims, err := s.Parse(token)
	if err != nil {
		return false
	}

	return claims.TokenType == expected
}

// ExpirationOf returns the expiry of a valid token.
func (s *jwtService) ExpirationOf(token string) (time.Time, error) {
	claims, err := s.Parse(token)
	if err != nil {
		return time.Time{}, err
	}

	return claims.ExpiresAt, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	default:
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
}

func claimsFromMap(mc jwt.MapClaims) (*entity.Claims, error) {
	subject, err := mc.GetSubject()
	if err != nil || subject == "" {
		return nil, missingClaim(entity.ClaimSubject)
	}

	authID, ok := int64Claim(mc[entity.ClaimAuthID])
	if !ok {
		return nil, missingClaim(entity.ClaimAuthID)
	}

	tokenType, _ := mc[entity.ClaimTokenType].(string)
	if !entity.TokenType(tokenType).IsValid() {
		return nil, missingClaim(entity.ClaimTokenType)
	}

	expiresAt, err := mc.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, missingClaim(entity.ClaimExpiresAt)
	}

	claims := &entity.Claims{
		Subject:     subject,
		AuthID:      authID,
		TokenType:   entity.TokenType(tokenType),
		Authorities: stringsClaim(mc[entity.ClaimAuthorities]),
		ExpiresAt:   expiresAt.Time,
		Custom:      map[string]any{},
	}
	claims.FirstName, _ = mc[entity.ClaimFirstName].(string)
	claims.LastName, _ = mc[entity.ClaimLastName].(string)
	claims.TokenID, _ = mc[entity.ClaimTokenID].(string)

	if userID, ok := int64Claim(mc[entity.ClaimUserID]); ok {
		claims.UserID = &userID
	}
	if issuedAt, err := mc.GetIssuedAt(); err == nil && issuedAt != nil {
		claims.IssuedAt = issuedAt.Time
	}

	for name, value := range mc {
		if _, ok := registeredClaims[name]; ok {
			continue
		}
		claims.Custom[name] = normalizeClaimValue(value)
	}

	return claims, nil
}

func missingClaim(name string) error {
	return errors.Wrapf(service.ErrTokenInvalid, "missing or invalid claim %q", name)
}

func int64Claim(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()

		return n, err == nil
	case float64:
		return int64(v), v == float64(int64(v))
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// stringsClaim accepts both a list of strings and a single string.
func stringsClaim(value any) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}

		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// normalizeClaimValue turns json.Number into int64 or float64, recursively.
func normalizeClaimValue(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()

		return f
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeClaimValue(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalizeClaimValue(item)
		}

		return out
	default:
		return value
	}
}
