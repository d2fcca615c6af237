package memory

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/repository"
)

func newTestStore() *Store {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return NewStoreWithClock(func() time.Time { return now })
}

func TestStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	alice := &entity.Account{Username: "alice", Email: "alice@example.com", Active: true, Authorities: []string{"USER"}}
	require.NoError(t, store.Save(ctx, alice))
	assert.Equal(t, int64(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	byName, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := store.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	// Returned accounts are copies.
	byName.Authorities[0] = "ADMIN"
	again, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"USER"}, again.Authorities)

	_, err = store.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestStore_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	require.NoError(t, store.Save(ctx, &entity.Account{Username: "alice", Email: "alice@example.com"}))

	tests := []struct {
		name      string
		account   *entity.Account
		wantField string
	}{
		{name: "username", account: &entity.Account{Username: "alice"}, wantField: repository.FieldUsername},
		{name: "email", account: &entity.Account{Email: "alice@example.com"}, wantField: repository.FieldEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Save(ctx, tt.account)

			var dupErr *repository.DuplicateKeyError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, tt.wantField, dupErr.Field)
		})
	}
}

func TestStore_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created
	store := NewStoreWithClock(func() time.Time { return now })

	account := &entity.Account{Username: "alice"}
	require.NoError(t, store.Save(ctx, account))

	now = created.Add(time.Hour)
	account.EnableTFA("JBSWY3DPEHPK3PXP", []string{"code"})
	require.NoError(t, store.Save(ctx, account))

	got, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(now))
	assert.True(t, got.TFAEnabled())

	assert.ErrorIs(t, store.Save(ctx, &entity.Account{ID: 99, Username: "ghost"}), repository.ErrAccountNotFound)
}

func TestStore_SoftDeleteFreesIdentifiers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	account := &entity.Account{Username: "alice"}
	require.NoError(t, store.Save(ctx, account))
	require.NoError(t, store.Delete(ctx, account.ID))

	_, err := store.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.ErrorIs(t, store.Delete(ctx, account.ID), repository.ErrAccountNotFound)
	assert.ErrorIs(t, store.Save(ctx, account), repository.ErrAccountNotFound)

	replacement := &entity.Account{Username: "alice"}
	require.NoError(t, store.Save(ctx, replacement))
	assert.NotEqual(t, account.ID, replacement.ID)
}

func TestStore_ExecuteRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	account := &entity.Account{Username: "alice"}
	require.NoError(t, store.Save(ctx, account))

	businessErr := errors.New("boom")
	err := store.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewAccountRepository()
		locked, err := repo.FindByUsername(ctx, "alice")
		if err != nil {
			return err
		}
		locked.EnableTFA("JBSWY3DPEHPK3PXP", []string{"code"})
		if err := repo.Save(ctx, locked); err != nil {
			return err
		}
		if err := repo.Save(ctx, &entity.Account{Username: "bob"}); err != nil {
			return err
		}

		return businessErr
	})
	assert.ErrorIs(t, err, businessErr)

	got, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, got.TFAEnabled())

	_, err = store.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	// The rolled back insert does not consume an id.
	carol := &entity.Account{Username: "carol"}
	require.NoError(t, store.Save(ctx, carol))
	assert.Equal(t, int64(2), carol.ID)
}

func TestStore_ExecuteCommits(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	require.NoError(t, store.Save(ctx, &entity.Account{Username: "alice"}))

	err := store.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewAccountRepository()
		account, err := repo.FindByUsername(ctx, "alice")
		if err != nil {
			return err
		}
		account.Active = true

		return repo.Save(ctx, account)
	})
	require.NoError(t, err)

	got, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestStore_ExecuteRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	assert.Panics(t, func() {
		_ = store.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.NewAccountRepository().Save(ctx, &entity.Account{Username: "alice"})
			panic("unexpected")
		})
	})

	_, err := store.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	// The lock was released.
	require.NoError(t, store.Save(ctx, &entity.Account{Username: "bob"}))
}

func TestStore_ExecuteCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := newTestStore().Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
