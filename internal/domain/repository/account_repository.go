// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/trinex-it/blackout/internal/domain/entity"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no live account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
)

// Unique fields reported by DuplicateKeyError.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// DuplicateKeyError is returned by Save when a unique field collides with another live account.
// Field is empty when the store cannot tell which constraint fired.
type DuplicateKeyError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate key"
	}

	return fmt.Sprintf("duplicate key on %s", e.Field)
}

// Unwrap returns the underlying driver error
func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// AccountRepository defines the persistence operations for accounts.
// Soft-deleted accounts are invisible to every lookup.
type AccountRepository interface {
	// FindByUsername retrieves a live account by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a live account by exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Save inserts the account when ID is zero and updates it otherwise.
	// ID and timestamps are written back into account.
	Save(ctx context.Context, account *entity.Account) error

	// Delete soft-deletes the account, freeing its username and email.
	Delete(ctx context.Context, id int64) error
}

// FindBySubject looks the subject up as a username first, then as an email.
func FindBySubject(ctx context.Context, repo AccountRepository, subject string) (*entity.Account, error) {
	account, err := repo.FindByUsername(ctx, subject)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	return repo.FindByEmail(ctx, subject)
}
