// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"linkauth/internal/domain/entity"
	"linkauth/internal/errors"

	"github.com/google/uuid"
)

// AccountRepository is the durable account store.
//
// Lookups return (nil, nil) when nothing matches; an error always means the
// store itself failed. Create and Save return a *ConstraintViolation when a
// unique constraint rejects the write.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByUsernameOrEmail matches the identifier against either column.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error)

	// FindByProviderSubject retrieves the account linked to a provider identity.
	FindByProviderSubject(ctx context.Context, provider, subjectID string) (*entity.Account, error)

	// Create persists a new account and returns it with its generated ID and timestamps.
	Create(ctx context.Context, req entity.NewAccount) (*entity.Account, error)

	// Save updates an existing account by ID.
	Save(ctx context.Context, account *entity.Account) error
}

// ErrAccountMissing is returned by Save when no row has the account's ID.
var ErrAccountMissing = errors.New("account does not exist")
