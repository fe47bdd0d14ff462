package usecase

import (
	"context"

	"linkauth/internal/domain/entity"
)

// Resolution tiers reported to metrics.
const (
	ResolutionTierLink   = "link"
	ResolutionTierEmail  = "email"
	ResolutionTierCreate = "create"
)

// IdentityResolver maps a provider assertion to exactly one account.
//
// Tiers run in order: an account already linked to (provider, subject); else
// an account with the same email, which gets linked; else a new federated
// account without a password.
type IdentityResolver interface {
	Resolve(ctx context.Context, assertion *entity.OAuthAssertion) (*entity.Account, error)
}
