// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/domain/service"

	"github.com/pkg/errors"
)

// timingPasswordHash is compared against when the subject is unknown so that
// lookups which miss cost the same bcrypt work as a wrong password.
const timingPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p1AGD8c0WE2PHJkMMCxHHi"

// credentialChecker verifies a subject and password against the account store.
// Unknown subjects, wrong passwords and inactive accounts all fail with ErrInvalidCredentials.
type credentialChecker struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
}

func (c credentialChecker) authenticate(ctx context.Context, logger *slog.Logger, subject, password string) (*entity.Account, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "empty credentials")
	}

	account, err := repository.FindBySubject(ctx, c.accountRepo, subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			c.hasher.Check(password, timingPasswordHash)
			logger.Warn("Authentication failed", slog.String("subject", subject), slog.String("reason", "unknown subject"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	// Password check runs outside any transaction.
	if !c.hasher.Check(password, account.PasswordHash) {
		logger.Warn("Authentication failed", slog.String("subject", subject), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if !account.Active {
		logger.Warn("Authentication failed", slog.String("subject", subject), slog.String("reason", "inactive account"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account is not active")
	}

	return account, nil
}

// findLocked loads the account behind principal through a transactional repository.
// The row stays locked until the transaction ends.
func findLocked(ctx context.Context, repo repository.AccountRepository, principal *entity.UserPrincipal) (*entity.Account, error) {
	account, err := repository.FindBySubject(ctx, repo, principal.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if account.ID != principal.AuthID {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "subject now belongs to a different account")
	}

	return account, nil
}
