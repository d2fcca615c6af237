package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	logs "github.com/trinex-it/blackout/internal/infra/log"
)

var accountColumns = []string{
	"id", "username", "email", "password_hash", "first_name", "last_name", "is_active",
	"authorities", "totp_secret", "recovery_codes", "created_at", "updated_at", "deleted_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := Open(sqlDB, logs.Discard(), &config.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestAccountRepository_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(accountColumns).AddRow(
		int64(42), "alice", nil, "$2a$10$hash", "Alice", "Liddell", true,
		"{USER,ADMIN}", "JBSWY3DPEHPK3PXP", "{aaaa-bbbb-cccc-dddd}", now, now, nil,
	)
	mock.ExpectQuery(`SELECT \* FROM "auth_accounts" WHERE username = \$1 AND "auth_accounts"."deleted_at" IS NULL`).
		WillReturnRows(rows)

	account, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(42), account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Empty(t, account.Email)
	assert.True(t, account.Active)
	assert.Equal(t, []string{"USER", "ADMIN"}, account.Authorities)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", account.TOTPSecret)
	assert.Equal(t, []string{"aaaa-bbbb-cccc-dddd"}, account.RecoveryCodes)
	assert.Nil(t, account.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "auth_accounts" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmail_EmptyValueSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	_, err := repo.FindByEmail(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByUsername_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "auth_accounts"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByUsername(context.Background(), "alice")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.CategoryInternal, appErr.ErrorCode())
	assert.NotErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_SaveInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`INSERT INTO "auth_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	account := &entity.Account{
		Username:     "bob",
		PasswordHash: "hash",
		FirstName:    "Bob",
		LastName:     "Builder",
		Active:       true,
		Authorities:  []string{"USER"},
	}
	require.NoError(t, repo.Save(context.Background(), account))

	assert.Equal(t, int64(7), account.ID)
	assert.False(t, account.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_SaveInsert_DuplicateKey(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  string
		wantValue  string
	}{
		{name: "username", constraint: "uq_auth_accounts_username", wantField: repository.FieldUsername, wantValue: "bob"},
		{name: "email", constraint: "uq_auth_accounts_email", wantField: repository.FieldEmail, wantValue: "bob@example.com"},
		{name: "unknown constraint", constraint: "some_other_index", wantField: "", wantValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewAccountRepository(db)

			mock.ExpectQuery(`INSERT INTO "auth_accounts"`).
				WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: tt.constraint})

			err := repo.Save(context.Background(), &entity.Account{
				Username:     "bob",
				Email:        "bob@example.com",
				PasswordHash: "hash",
				Active:       true,
			})

			var dupErr *repository.DuplicateKeyError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, tt.wantField, dupErr.Field)
			assert.Equal(t, tt.wantValue, dupErr.Value)
		})
	}
}

func TestAccountRepository_StatementLogsOmitCredentials(t *testing.T) {
	const (
		passwordHash = "$2a$10$STOREDHASHVALUE"
		totpSecret   = "JBSWY3DPEHPK3PXP"
		recoveryCode = "aaaa-bbbb-cccc-dddd"
	)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, err := Open(sqlDB, logger, cfg)
	require.NoError(t, err)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`INSERT INTO "auth_accounts"`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "uq_auth_accounts_email"})
	mock.ExpectExec(`UPDATE "auth_accounts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	signup := &entity.Account{Email: "bob@example.com", PasswordHash: passwordHash, Active: true}
	require.Error(t, repo.Save(context.Background(), signup))

	enrolled := &entity.Account{ID: 42, Username: "alice", PasswordHash: passwordHash, Active: true}
	enrolled.EnableTFA(totpSecret, []string{recoveryCode})
	require.NoError(t, repo.Save(context.Background(), enrolled))
	require.NoError(t, mock.ExpectationsWereMet())

	output := buf.String()
	assert.Contains(t, output, "GORM query failed")
	assert.Contains(t, output, `INSERT INTO`)
	assert.NotContains(t, output, passwordHash)
	assert.NotContains(t, output, totpSecret)
	assert.NotContains(t, output, recoveryCode)
}

func TestAccountRepository_SaveUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "auth_accounts" SET .* WHERE .*"id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	account := &entity.Account{ID: 42, Username: "alice", PasswordHash: "hash", Active: true}
	account.EnableTFA("JBSWY3DPEHPK3PXP", []string{"aaaa-bbbb-cccc-dddd"})

	require.NoError(t, repo.Save(context.Background(), account))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_SaveUpdate_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "auth_accounts"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &entity.Account{ID: 99, Username: "ghost", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "auth_accounts" SET "deleted_at"=\$1 WHERE "auth_accounts"."id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 42))

	mock.ExpectExec(`UPDATE "auth_accounts" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), repository.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitLocksRows(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "auth_accounts" WHERE username = \$1 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
			int64(1), "alice", nil, "hash", "", "", true, "{USER}", nil, nil, now, now, nil,
		))
	mock.ExpectCommit()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		account, err := factory.NewAccountRepository().FindByUsername(context.Background(), "alice")
		if err != nil {
			return err
		}
		assert.False(t, account.TFAEnabled())

		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	businessErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return businessErr
	})
	assert.ErrorIs(t, err, businessErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}
	require.NoError(t, RunMigrations(context.Background(), sqlDB))
	assert.Equal(t, migrationsDir, gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("dirty database")
	}
	err = RunMigrations(context.Background(), sqlDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_auth_accounts.sql", entries[0].Name())
}
