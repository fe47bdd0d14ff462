// Package memory is an in-process AccountRepository for local runs and tests.
// It enforces the same unique rules as the SQL schema.
package memory

import (
	"context"
	"sync"
	"time"

	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/repository"
	"linkauth/internal/errors"

	"github.com/google/uuid"
)

type providerKey struct {
	provider  string
	subjectID string
}

// AccountRepository keeps accounts in maps guarded by a single RWMutex.
type AccountRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*entity.Account
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID
	byProvider map[providerKey]uuid.UUID
	now        func() time.Time
}

// NewAccountRepository returns an empty store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:       make(map[uuid.UUID]*entity.Account),
		byEmail:    make(map[string]uuid.UUID),
		byUsername: make(map[string]uuid.UUID),
		byProvider: make(map[providerKey]uuid.UUID),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return clone(r.byID[id]), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return find(ctx, r, r.byEmail, email)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return find(ctx, r, r.byUsername, username)
}

// FindByUsernameOrEmail prefers a username match, like the SQL implementation.
func (r *AccountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	account, err := find(ctx, r, r.byUsername, identifier)
	if err != nil || account != nil {
		return account, err
	}

	return find(ctx, r, r.byEmail, identifier)
}

func (r *AccountRepository) FindByProviderSubject(ctx context.Context, provider, subjectID string) (*entity.Account, error) {
	return find(ctx, r, r.byProvider, providerKey{provider: provider, subjectID: subjectID})
}

func (r *AccountRepository) Create(ctx context.Context, req entity.NewAccount) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid account request")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate account id")
	}

	account := req.Account()
	account.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(account); err != nil {
		return nil, err
	}

	now := r.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.index(account)

	return clone(account), nil
}

func (r *AccountRepository) Save(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[account.ID]
	if !ok {
		return repository.ErrAccountMissing
	}

	if err := r.checkUnique(account); err != nil {
		return err
	}

	r.unindex(current)
	stored := clone(account)
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = r.now()
	r.index(stored)
	account.UpdatedAt = stored.UpdatedAt

	return nil
}

// Delete removes an account. The service never deletes accounts; tests use
// this to simulate removal by another system.
func (r *AccountRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.byID[id]; ok {
		r.unindex(current)
	}
}

func find[K comparable](ctx context.Context, r *AccountRepository, index map[K]uuid.UUID, key K) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := index[key]
	if !ok {
		return nil, nil
	}

	return clone(r.byID[id]), nil
}

// checkUnique must run under the write lock. Rows owned by account.ID itself do not conflict.
func (r *AccountRepository) checkUnique(account *entity.Account) error {
	owned := func(id uuid.UUID, ok bool) bool { return ok && id != account.ID }

	if owned(lookupID(r.byEmail, account.Email)) {
		return repository.NewConstraintViolation(repository.ConstraintEmail, nil)
	}
	if owned(lookupID(r.byUsername, account.Username)) {
		return repository.NewConstraintViolation(repository.ConstraintUsername, nil)
	}
	if key, linked := providerKeyOf(account); linked && owned(lookupID(r.byProvider, key)) {
		return repository.NewConstraintViolation(repository.ConstraintProviderSubject, nil)
	}

	return nil
}

func lookupID[K comparable](index map[K]uuid.UUID, key K) (uuid.UUID, bool) {
	id, ok := index[key]

	return id, ok
}

func (r *AccountRepository) index(account *entity.Account) {
	r.byID[account.ID] = account
	r.byEmail[account.Email] = account.ID
	r.byUsername[account.Username] = account.ID
	if key, ok := providerKeyOf(account); ok {
		r.byProvider[key] = account.ID
	}
}

func (r *AccountRepository) unindex(account *entity.Account) {
	delete(r.byID, account.ID)
	delete(r.byEmail, account.Email)
	delete(r.byUsername, account.Username)
	if key, ok := providerKeyOf(account); ok {
		delete(r.byProvider, key)
	}
}

func providerKeyOf(account *entity.Account) (providerKey, bool) {
	if account.Provider == nil || account.ProviderSubjectID == nil {
		return providerKey{}, false
	}

	return providerKey{provider: *account.Provider, subjectID: *account.ProviderSubjectID}, true
}

func clone(account *entity.Account) *entity.Account {
	if account == nil {
		return nil
	}

	cp := *account
	cp.PasswordHash = cloneString(account.PasswordHash)
	cp.Provider = cloneString(account.Provider)
	cp.ProviderSubjectID = cloneString(account.ProviderSubjectID)
	cp.FirstName = cloneString(account.FirstName)
	cp.LastName = cloneString(account.LastName)
	cp.ProfilePictureURL = cloneString(account.ProfilePictureURL)

	return &cp
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
