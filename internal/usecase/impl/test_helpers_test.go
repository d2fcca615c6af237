package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/repository"
)

var testNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return config.Default()
}

func fixedClock() time.Time {
	return testNow
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_pw",
		FirstName:    "Alice",
		LastName:     "Liddell",
		Active:       true,
		Authorities:  []string{"USER"},
	}
}

func newTestPrincipal() *entity.UserPrincipal {
	return entity.NewUserPrincipal(newTestAccount(), "alice")
}

// runInTx makes a mocked TransactionManager run the callback against factory.
func runInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
