package impl

import (
	"context"
	"log/slog"
	"sync"

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
)

// Operation names reported to metrics.
const (
	opRegister      = "register"
	opLogin         = "login"
	opRefresh       = "refresh"
	opOAuthCallback = "oauth_callback"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	resolver    usecase.IdentityResolver
	issuer      usecase.TokenIssuer
	metrics     service.AuthMetrics
	store       storeGuard
	logger      *slog.Logger

	decoyOnce   sync.Once
	decoyDigest string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Resolver    usecase.IdentityResolver
	Issuer      usecase.TokenIssuer
	Metrics     service.AuthMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		resolver:    params.Resolver,
		issuer:      params.Issuer,
		metrics:     params.Metrics,
		store:       newStoreGuard(params.Config),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) record(op string, err error) {
	srv.metrics.RecordOperation(op, outcome(err))
}

// outcome is the business code of err, "ok" for nil and "error" when unclassified.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "error"
}

// Register creates a password account. Duplicate email is reported before duplicate username.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (output *usecase.RegisterOutput, err error) {
	defer func() { srv.record(opRegister, err) }()

	if err := entity.ValidateUsername(input.Username); err != nil {
		return nil, errors.Join(domainerrors.ErrValidationFailed.WithDetails(err.Error()), err)
	}

	existing, err := guarded(ctx, srv.store, "find account by email", func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByEmail(ctx, input.Email)
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateEmail
	}

	existing, err = guarded(ctx, srv.store, "find account by username", func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByUsername(ctx, input.Username)
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateUsername
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrPasswordHashFailed, err)
	}

	account, err := guarded(ctx, srv.store, "create account", func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.Create(ctx, entity.NewCredentialAccount(input.Username, input.Email, hash))
	})
	if err != nil {
		return nil, registerConflict(err)
	}

	srv.log(ctx).InfoContext(ctx, "Registered account", slog.String("accountID", account.ID.String()))

	return &usecase.RegisterOutput{AccountID: account.ID}, nil
}

// registerConflict maps a late unique violation to the matching duplicate error.
func registerConflict(err error) error {
	cv, ok := repository.AsConstraintViolation(err)
	if !ok {
		return err
	}

	switch cv.Field {
	case repository.ConstraintEmail:
		return errors.Join(domainerrors.ErrDuplicateEmail, err)
	case repository.ConstraintUsername:
		return errors.Join(domainerrors.ErrDuplicateUsername, err)
	default:
		return errors.Join(domainerrors.ErrConstraintViolation, err)
	}
}

// Login accepts a username or an email. Unknown identifiers and wrong passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (pair *entity.TokenPair, err error) {
	defer func() { srv.record(opLogin, err) }()

	account, err := guarded(ctx, srv.store, "find account by username or email", func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	})
	if err != nil {
		return nil, err
	}
	if account == nil || !account.HasPassword() {
		// Same bcrypt work as a wrong password so response time does not reveal the identifier.
		srv.hasher.Check(input.Password, srv.decoy(ctx))
		srv.log(ctx).InfoContext(ctx, "Rejected login attempt")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.hasher.Check(input.Password, *account.PasswordHash) {
		srv.log(ctx).InfoContext(ctx, "Rejected login attempt")

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issuer.Issue(ctx, account)
}

// decoy returns a digest of an unguessable password, hashed once at the configured cost.
func (srv *authService) decoy(ctx context.Context) string {
	srv.decoyOnce.Do(func() {
		digest, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.log(ctx).WarnContext(ctx, "Failed to prepare decoy digest", slog.Any("error", err))

			return
		}
		srv.decoyDigest = digest
	})

	return srv.decoyDigest
}

// RefreshTokens issues a new pair for an account that still exists.
func (srv *authService) RefreshTokens(ctx context.Context, accountID uuid.UUID) (pair *entity.TokenPair, err error) {
	defer func() { srv.record(opRefresh, err) }()

	return srv.issuer.Refresh(ctx, accountID)
}

// OAuthCallback resolves the provider assertion to an account and issues its pair.
func (srv *authService) OAuthCallback(ctx context.Context, assertion *entity.OAuthAssertion) (pair *entity.TokenPair, err error) {
	defer func() { srv.record(opOAuthCallback, err) }()

	account, err := srv.resolver.Resolve(ctx, assertion)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "Failed to resolve provider identity", slog.Any("error", err))

		return nil, err
	}

	return srv.issuer.Issue(ctx, account)
}

// Authenticate resolves a bearer token to its live account.
func (srv *authService) Authenticate(ctx context.Context, kind entity.TokenKind, token string) (*entity.Account, error) {
	return srv.issuer.Authenticate(ctx, kind, token)
}
