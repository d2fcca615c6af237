// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
	// lockRows adds FOR UPDATE to lookups; set for repositories bound to a transaction.
	lockRows bool
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func newLockingAccountRepository(tx *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: tx, lockRows: true}
}

func (repo *accountRepository) lookup(ctx context.Context) *gorm.DB {
	q := repo.db.WithContext(ctx)
	if repo.lockRows {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	return q
}

// FindByUsername retrieves a live account by exact username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a live account by exact email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, condition string, value string) (*entity.Account, error) {
	if value == "" {
		return nil, repository.ErrAccountNotFound
	}

	var accountM model.AccountModel
	if err := repo.lookup(ctx).Where(condition, value).First(&accountM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// Save inserts the account when ID is zero and updates every mutable column otherwise.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	var err error
	if accountM.ID == 0 {
		err = repo.db.WithContext(ctx).Create(accountM).Error
	} else {
		result := repo.db.WithContext(ctx).
			Model(accountM).
			Select("*").
			Omit("ID", "CreatedAt", "DeletedAt").
			Updates(accountM)
		err = result.Error
		if err == nil && result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}
	}

	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return &repository.DuplicateKeyError{
				Field: field,
				Value: duplicateValue(account, field),
				Err:   err,
			}
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	account.ID = accountM.ID
	account.UpdatedAt = accountM.UpdatedAt
	if !accountM.CreatedAt.IsZero() {
		account.CreatedAt = accountM.CreatedAt
	}

	return nil
}

// Delete soft-deletes the account by setting deleted_at.
func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func duplicateValue(account *entity.Account, field string) string {
	switch field {
	case repository.FieldUsername:
		return account.Username
	case repository.FieldEmail:
		return account.Email
	default:
		return ""
	}
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:            accountM.ID,
		PasswordHash:  accountM.PasswordHash,
		FirstName:     accountM.FirstName,
		LastName:      accountM.LastName,
		Active:        accountM.IsActive,
		Authorities:   []string(accountM.Authorities),
		RecoveryCodes: []string(accountM.RecoveryCodes),
		CreatedAt:     accountM.CreatedAt,
		UpdatedAt:     accountM.UpdatedAt,
	}
	if accountM.Username != nil {
		account.Username = *accountM.Username
	}
	if accountM.Email != nil {
		account.Email = *accountM.Email
	}
	if accountM.TOTPSecret != nil {
		account.TOTPSecret = *accountM.TOTPSecret
	}
	if accountM.DeletedAt.Valid {
		deletedAt := accountM.DeletedAt.Time
		account.DeletedAt = &deletedAt
	}

	return account
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	accountM := &model.AccountModel{
		ID:           account.ID,
		Username:     nullableString(account.Username),
		Email:        nullableString(account.Email),
		PasswordHash: account.PasswordHash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		IsActive:     account.Active,
		Authorities:  account.Authorities,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
	// The secret and its codes are written together or not at all.
	if account.TFAEnabled() {
		accountM.TOTPSecret = &account.TOTPSecret
		accountM.RecoveryCodes = account.RecoveryCodes
		if accountM.RecoveryCodes == nil {
			accountM.RecoveryCodes = []string{}
		}
	}

	return accountM
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
