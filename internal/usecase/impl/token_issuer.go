package impl

import (
	"context"
	"log/slog"
	"time"

	"linkauth/config"
	deliverycontext "linkauth/internal/delivery/context"
	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/repository"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"
	"linkauth/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// tokenIssuer implements usecase.TokenIssuer on a TokenService signer.
type tokenIssuer struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	metrics      service.AuthMetrics
	store        storeGuard
	logger       *slog.Logger
}

// TokenIssuerParams holds dependencies for the issuer, injected by Fx.
type TokenIssuerParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTokenIssuer is the constructor for tokenIssuer.
func NewTokenIssuer(params TokenIssuerParams) usecase.TokenIssuer {
	return &tokenIssuer{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		store:        newStoreGuard(params.Config),
		logger:       params.Logger,
	}
}

func (iss *tokenIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, iss.logger)
}

// Issue signs the access and refresh tokens in parallel.
func (iss *tokenIssuer) Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error) {
	start := time.Now()

	var (
		pair entity.TokenPair
		g    errgroup.Group
	)
	g.Go(func() error {
		token, err := iss.tokenService.Sign(entity.TokenKindAccess, account.ID, account.Email)
		pair.AccessToken = token

		return err
	})
	g.Go(func() error {
		token, err := iss.tokenService.Sign(entity.TokenKindRefresh, account.ID, account.Email)
		pair.RefreshToken = token

		return err
	})

	if err := g.Wait(); err != nil {
		iss.log(ctx).ErrorContext(ctx, "Failed to sign token pair",
			slog.String("accountID", account.ID.String()), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrSigningFailure, err)
	}

	iss.metrics.RecordTokenIssue(time.Since(start))

	return &pair, nil
}

// Refresh fails with ErrAccountNotFound when the account is gone.
func (iss *tokenIssuer) Refresh(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error) {
	account, err := guarded(ctx, iss.store, "find account by id", func(ctx context.Context) (*entity.Account, error) {
		return iss.accountRepo.FindByID(ctx, accountID)
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound
	}

	return iss.Issue(ctx, account)
}

// Authenticate validates the token and loads its subject.
func (iss *tokenIssuer) Authenticate(ctx context.Context, kind entity.TokenKind, token string) (*entity.Account, error) {
	claims, err := iss.tokenService.Validate(kind, token)
	if err != nil {
		iss.log(ctx).DebugContext(ctx, "Rejected bearer token", slog.String("kind", kind.String()), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrInvalidToken, err)
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, errors.Join(domainerrors.ErrInvalidToken, err)
	}

	account, err := guarded(ctx, iss.store, "find account by id", func(ctx context.Context) (*entity.Account, error) {
		return iss.accountRepo.FindByID(ctx, accountID)
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.ErrUserNoLongerExists
	}

	return account, nil
}
