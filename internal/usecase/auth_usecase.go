// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"linkauth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a password account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries either a username or an email as Identifier.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// RegisterOutput returns the id of the created account.
type RegisterOutput struct {
	AccountID uuid.UUID
}

// AuthUsecase defines the authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*entity.TokenPair, error)
	RefreshTokens(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error)
	OAuthCallback(ctx context.Context, assertion *entity.OAuthAssertion) (*entity.TokenPair, error)

	// Authenticate validates a bearer token of the given kind and returns its live account.
	Authenticate(ctx context.Context, kind entity.TokenKind, token string) (*entity.Account, error)
}
