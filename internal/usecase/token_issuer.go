package usecase

import (
	"context"

	"linkauth/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenIssuer mints and checks token pairs for accounts.
type TokenIssuer interface {
	// Issue signs both halves concurrently. It never returns a partial pair.
	Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error)

	// Refresh re-reads the account by id and issues a new pair.
	Refresh(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error)

	// Authenticate validates token as kind and resolves its subject to a live account.
	Authenticate(ctx context.Context, kind entity.TokenKind, token string) (*entity.Account, error)
}
