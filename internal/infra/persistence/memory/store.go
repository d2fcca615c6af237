// Package memory provides an in-process account store for tests and embedders without a database.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/trinex-it/blackout/internal/domain/entity"
	"github.com/trinex-it/blackout/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store keeps accounts in a map and implements repository.Store.
// Transactions are serialized and rolled back by restoring a snapshot.
type Store struct {
	// txMu serializes transactions and writes made outside of them.
	txMu sync.Mutex

	mu       sync.RWMutex
	accounts map[int64]*entity.Account
	nextID   int64
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]*entity.Account),
		now:      time.Now,
	}
}

// NewStoreWithClock creates an empty store stamping audit fields with now.
func NewStoreWithClock(now func() time.Time) *Store {
	s := NewStore()
	s.now = now

	return s
}

// FindByUsername retrieves a live account by exact username.
func (s *Store) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	return s.find(func(a *entity.Account) bool { return username != "" && a.Username == username })
}

// FindByEmail retrieves a live account by exact email.
func (s *Store) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	return s.find(func(a *entity.Account) bool { return email != "" && a.Email == email })
}

// Save inserts the account when ID is zero and updates it otherwise.
func (s *Store) Save(ctx context.Context, account *entity.Account) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return s.save(ctx, account)
}

// Delete soft-deletes the account.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return s.delete(ctx, id)
}

// Execute runs fn with exclusive access to the store.
// Every change made through the factory is discarded when fn fails or panics.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot, nextID := s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.restore(snapshot, nextID)
			panic(r)
		}
		if err != nil {
			s.restore(snapshot, nextID)
		}
	}()

	return fn(txFactory{store: s})
}

func (s *Store) find(match func(*entity.Account) bool) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.DeletedAt == nil && match(a) {
			return a.Clone(), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *Store) save(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(account); err != nil {
		return err
	}

	now := s.now()
	stored := account.Clone()
	stored.DeletedAt = nil
	if stored.ID == 0 {
		s.nextID++
		stored.ID = s.nextID
		stored.CreatedAt = now
	} else {
		existing, ok := s.accounts[stored.ID]
		if !ok || existing.DeletedAt != nil {
			return repository.ErrAccountNotFound
		}
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = now
	s.accounts[stored.ID] = stored

	account.ID = stored.ID
	account.CreatedAt = stored.CreatedAt
	account.UpdatedAt = stored.UpdatedAt

	return nil
}

func (s *Store) checkUnique(account *entity.Account) error {
	for id, a := range s.accounts {
		if id == account.ID || a.DeletedAt != nil {
			continue
		}
		if account.Username != "" && a.Username == account.Username {
			return &repository.DuplicateKeyError{Field: repository.FieldUsername, Value: account.Username}
		}
		if account.Email != "" && a.Email == account.Email {
			return &repository.DuplicateKeyError{Field: repository.FieldEmail, Value: account.Email}
		}
	}

	return nil
}

func (s *Store) delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok || a.DeletedAt != nil {
		return repository.ErrAccountNotFound
	}
	now := s.now()
	a.DeletedAt = &now
	a.UpdatedAt = now

	return nil
}

func (s *Store) snapshot() (map[int64]*entity.Account, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[int64]*entity.Account, len(s.accounts))
	for id, a := range s.accounts {
		snapshot[id] = a.Clone()
	}

	return snapshot, s.nextID
}

func (s *Store) restore(snapshot map[int64]*entity.Account, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = maps.Clone(snapshot)
	s.nextID = nextID
}

// txFactory hands out repositories that write without taking txMu, which Execute already holds.
type txFactory struct {
	store *Store
}

func (f txFactory) NewAccountRepository() repository.AccountRepository {
	return txRepository{store: f.store}
}

type txRepository struct {
	store *Store
}

func (r txRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.store.FindByUsername(ctx, username)
}

func (r txRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.store.FindByEmail(ctx, email)
}

func (r txRepository) Save(ctx context.Context, account *entity.Account) error {
	return r.store.save(ctx, account)
}

func (r txRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}
