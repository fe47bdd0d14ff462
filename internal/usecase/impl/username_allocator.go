package impl

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"

	"linkauth/config"
	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/repository"
	"linkauth/internal/domain/service"

	"go.uber.org/fx"
)

const (
	usernameSuffixMin   = 1000
	usernameSuffixRange = 8999 // suffix in [1000, 9999)
	usernameSuffixLen   = 4
	usernameFallback    = "user"
)

// usernameAllocator derives handles from email local parts.
type usernameAllocator struct {
	accountRepo repository.AccountRepository
	attempts    int
	store       storeGuard
	suffix      func() int
}

// UsernameAllocatorParams holds dependencies for the allocator, injected by Fx.
type UsernameAllocatorParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Config      *config.Config
}

// NewUsernameAllocator is the constructor for usernameAllocator.
func NewUsernameAllocator(params UsernameAllocatorParams) service.UsernameAllocator {
	attempts := 1
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.UsernameAttempts > 0 {
		attempts = params.Config.Auth.UsernameAttempts
	}

	return &usernameAllocator{
		accountRepo: params.AccountRepo,
		attempts:    attempts,
		store:       newStoreGuard(params.Config),
		suffix:      func() int { return usernameSuffixMin + rand.IntN(usernameSuffixRange) },
	}
}

// Allocate returns the lower-cased local part when it is free. Otherwise it
// tries suffixed candidates; the last one is returned without a check and the
// store's unique constraint decides. With one attempt this is a single
// unchecked suffix.
func (a *usernameAllocator) Allocate(ctx context.Context, email string) (string, error) {
	base := baseUsername(email)

	taken, err := a.taken(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for attempt := 1; ; attempt++ {
		candidate := withSuffix(base, a.suffix())
		if attempt >= a.attempts {
			return candidate, nil
		}

		taken, err := a.taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func (a *usernameAllocator) taken(ctx context.Context, username string) (bool, error) {
	existing, err := guarded(ctx, a.store, "find account by username", func(ctx context.Context) (*entity.Account, error) {
		return a.accountRepo.FindByUsername(ctx, username)
	})
	if err != nil {
		return false, err
	}

	return existing != nil, nil
}

// baseUsername lower-cases the local part, keeps [a-z0-9._-] and fits the result into the length bounds.
func baseUsername(email string) string {
	local := email
	if at := strings.LastIndex(email, "@"); at >= 0 {
		local = email[:at]
	}

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		name = usernameFallback
	}
	if len(name) < entity.UsernameMinLength {
		name += strings.Repeat("0", entity.UsernameMinLength-len(name))
	}
	if len(name) > entity.UsernameMaxLength {
		name = name[:entity.UsernameMaxLength]
	}

	return name
}

func withSuffix(base string, suffix int) string {
	if maxBase := entity.UsernameMaxLength - usernameSuffixLen; len(base) > maxBase {
		base = base[:maxBase]
	}

	return base + strconv.Itoa(suffix)
}
