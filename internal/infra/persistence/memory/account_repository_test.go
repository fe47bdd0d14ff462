package memory

import (
	"context"
	"sync"
	"testing"

	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/repository"
	"linkauth/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	created, err := repo.Create(ctx, entity.NewCredentialAccount("jeanluc", "jeanluc@gmail.com", "hash"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), created.ID.Version())

	for name, find := range map[string]func() (*entity.Account, error){
		"id":                func() (*entity.Account, error) { return repo.FindByID(ctx, created.ID) },
		"email":             func() (*entity.Account, error) { return repo.FindByEmail(ctx, "jeanluc@gmail.com") },
		"username":          func() (*entity.Account, error) { return repo.FindByUsername(ctx, "jeanluc") },
		"either / username": func() (*entity.Account, error) { return repo.FindByUsernameOrEmail(ctx, "jeanluc") },
		"either / email":    func() (*entity.Account, error) { return repo.FindByUsernameOrEmail(ctx, "jeanluc@gmail.com") },
	} {
		t.Run(name, func(t *testing.T) {
			found, err := find()
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, created.ID, found.ID)
		})
	}

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	created, err := repo.Create(ctx, entity.NewCredentialAccount("jeanluc", "jeanluc@gmail.com", "hash"))
	require.NoError(t, err)

	created.Email = "mutated@example.com"
	*created.PasswordHash = "mutated"

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jeanluc@gmail.com", stored.Email)
	assert.Equal(t, "hash", *stored.PasswordHash)
}

func TestAccountRepository_UniqueRules(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.Create(ctx, entity.NewFederatedAccount("picard", "picard@gmail.com",
		entity.FederatedIdentity{Provider: entity.ProviderGoogle, ProviderSubjectID: "sub-1"}, entity.Profile{}))
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   entity.NewAccount
		field repository.ConstraintField
	}{
		{name: "email", req: entity.NewCredentialAccount("xavier", "picard@gmail.com", "h"), field: repository.ConstraintEmail},
		{name: "username", req: entity.NewCredentialAccount("picard", "x@gmail.com", "h"), field: repository.ConstraintUsername},
		{
			name: "provider subject",
			req: entity.NewFederatedAccount("riker", "riker@gmail.com",
				entity.FederatedIdentity{Provider: entity.ProviderGoogle, ProviderSubjectID: "sub-1"}, entity.Profile{}),
			field: repository.ConstraintProviderSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.req)
			cv, ok := repository.AsConstraintViolation(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, cv.Field)
		})
	}
}

func TestAccountRepository_SaveReindexes(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	account, err := repo.Create(ctx, entity.NewCredentialAccount("jeanluc", "jeanluc@gmail.com", "hash"))
	require.NoError(t, err)

	account.LinkIdentity(&entity.OAuthAssertion{Provider: entity.ProviderGoogle, ProviderSubjectID: "sub-9"})
	account.Email = "picard@starfleet.org"
	require.NoError(t, repo.Save(ctx, account))

	old, err := repo.FindByEmail(ctx, "jeanluc@gmail.com")
	require.NoError(t, err)
	assert.Nil(t, old)

	linked, err := repo.FindByProviderSubject(ctx, entity.ProviderGoogle, "sub-9")
	require.NoError(t, err)
	require.NotNil(t, linked)
	assert.Equal(t, "picard@starfleet.org", linked.Email)

	// Saving the same account again does not conflict with itself.
	assert.NoError(t, repo.Save(ctx, linked))

	ghost := &entity.Account{ID: uuid.New(), Username: "ghost", Email: "ghost@example.com"}
	assert.True(t, errors.Is(repo.Save(ctx, ghost), repository.ErrAccountMissing))
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	account, err := repo.Create(ctx, entity.NewCredentialAccount("jeanluc", "jeanluc@gmail.com", "hash"))
	require.NoError(t, err)

	repo.Delete(account.ID)

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// The handle is free again.
	_, err = repo.Create(ctx, entity.NewCredentialAccount("jeanluc", "jeanluc@gmail.com", "hash"))
	assert.NoError(t, err)
}

func TestAccountRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			username := "user" + string(rune('a'+i))
			_, err := repo.Create(ctx, entity.NewCredentialAccount(username, "same@example.com", "hash"))
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAccountRepository().FindByEmail(ctx, "a@b.c")
	assert.ErrorIs(t, err, context.Canceled)
}
