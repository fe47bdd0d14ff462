package impl

import (
	"context"
	"log/slog"

	"linkauth/config"
	deliverycontext "linkauth/internal/delivery/context"
	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/repository"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"
	"linkauth/internal/usecase"

	"go.uber.org/fx"
)

// identityResolver implements usecase.IdentityResolver.
type identityResolver struct {
	accountRepo repository.AccountRepository
	allocator   service.UsernameAllocator
	metrics     service.AuthMetrics
	store       storeGuard
	logger      *slog.Logger
}

// IdentityResolverParams holds dependencies for the resolver, injected by Fx.
type IdentityResolverParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Allocator   service.UsernameAllocator
	Metrics     service.AuthMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityResolver is the constructor for identityResolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityResolver {
	return &identityResolver{
		accountRepo: params.AccountRepo,
		allocator:   params.Allocator,
		metrics:     params.Metrics,
		store:       newStoreGuard(params.Config),
		logger:      params.Logger,
	}
}

func (r *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve runs the lookup tiers. If a concurrent callback wins the race for the
// same email or identity, the tiers run once more and find its account.
func (r *identityResolver) Resolve(ctx context.Context, assertion *entity.OAuthAssertion) (*entity.Account, error) {
	if assertion == nil || assertion.Provider == "" || assertion.ProviderSubjectID == "" || assertion.Email == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("incomplete provider assertion")
	}

	account, tier, err := r.resolve(ctx, assertion)
	if cv, ok := repository.AsConstraintViolation(err); ok && cv.Field != repository.ConstraintUsername {
		r.log(ctx).InfoContext(ctx, "Identity created concurrently, resolving again",
			slog.String("field", string(cv.Field)))
		account, tier, err = r.resolve(ctx, assertion)
	}
	if err != nil {
		if _, ok := repository.AsConstraintViolation(err); ok {
			return nil, errors.Join(domainerrors.ErrConstraintViolation, err)
		}

		return nil, err
	}

	r.metrics.RecordIdentityResolution(tier)

	return account, nil
}

func (r *identityResolver) resolve(ctx context.Context, assertion *entity.OAuthAssertion) (*entity.Account, string, error) {
	linked, err := guarded(ctx, r.store, "find account by provider subject", func(ctx context.Context) (*entity.Account, error) {
		return r.accountRepo.FindByProviderSubject(ctx, assertion.Provider, assertion.ProviderSubjectID)
	})
	if err != nil {
		return nil, "", err
	}
	if linked != nil {
		return linked, usecase.ResolutionTierLink, nil
	}

	byEmail, err := guarded(ctx, r.store, "find account by email", func(ctx context.Context) (*entity.Account, error) {
		return r.accountRepo.FindByEmail(ctx, assertion.Email)
	})
	if err != nil {
		return nil, "", err
	}
	if byEmail != nil {
		if err := r.link(ctx, byEmail, assertion); err != nil {
			return nil, "", err
		}

		return byEmail, usecase.ResolutionTierEmail, nil
	}

	created, err := r.create(ctx, assertion)
	if err != nil {
		return nil, "", err
	}

	return created, usecase.ResolutionTierCreate, nil
}

// link attaches the provider identity to an account found by email. The
// address is trusted as reported by the provider.
func (r *identityResolver) link(ctx context.Context, account *entity.Account, assertion *entity.OAuthAssertion) error {
	if account.Provider != nil && !account.IsLinkedTo(assertion.Provider, assertion.ProviderSubjectID) {
		r.log(ctx).WarnContext(ctx, "Replacing existing provider link on email match",
			slog.String("accountID", account.ID.String()),
			slog.String("previousProvider", *account.Provider),
			slog.String("provider", assertion.Provider))
	}

	account.LinkIdentity(assertion)

	return guardedExec(ctx, r.store, "save account", func(ctx context.Context) error {
		return r.accountRepo.Save(ctx, account)
	})
}

// create allocates a handle and inserts a password-less account. A username
// collision gets one more allocation.
func (r *identityResolver) create(ctx context.Context, assertion *entity.OAuthAssertion) (*entity.Account, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		username, err := r.allocator.Allocate(ctx, assertion.Email)
		if err != nil {
			return nil, err
		}

		req := entity.NewFederatedAccount(username, assertion.Email, assertion.Identity(), assertion.Profile())
		account, err := guarded(ctx, r.store, "create account", func(ctx context.Context) (*entity.Account, error) {
			return r.accountRepo.Create(ctx, req)
		})
		if err == nil {
			r.log(ctx).InfoContext(ctx, "Created federated account",
				slog.String("accountID", account.ID.String()), slog.String("provider", assertion.Provider))

			return account, nil
		}

		cv, ok := repository.AsConstraintViolation(err)
		if !ok || cv.Field != repository.ConstraintUsername {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
