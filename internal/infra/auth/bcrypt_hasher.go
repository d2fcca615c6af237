// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/service"
	"github.com/trinex-it/blackout/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The configured cost is raised to config.MinBcryptCost when lower.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return NewBcryptHasherWithCost(max(cfg.Blackout.BcryptCost, config.MinBcryptCost))
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, for tests and embedders.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// CompareHashAndPassword compares in constant time.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
