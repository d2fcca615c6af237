package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trinex-it/blackout/internal/domain/repository"
)

// PostgreSQL unique_violation error code
const uniqueViolationCode = "23505"

// Unique indexes declared by the migrations
var uniqueConstraintFields = map[string]string{
	"uq_auth_accounts_username": repository.FieldUsername,
	"uq_auth_accounts_email":    repository.FieldEmail,
}

// uniqueViolationField reports whether err is a unique violation and, when it
// can tell, which account field collided.
func uniqueViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolationCode {
			return "", false
		}
		if field, ok := uniqueConstraintFields[pgErr.ConstraintName]; ok {
			return field, true
		}

		return fieldFromMessage(pgErr.Detail + " " + pgErr.Message), true
	}

	// Check for GORM's duplicate key error (TranslateError enabled)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldFromMessage(err.Error()), true
	}

	return "", false
}

func fieldFromMessage(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "username"):
		return repository.FieldUsername
	case strings.Contains(msg, "email"):
		return repository.FieldEmail
	default:
		return ""
	}
}
