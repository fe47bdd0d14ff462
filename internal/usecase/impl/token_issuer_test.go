package impl

import (
	"context"
	"testing"
	"time"

	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/service"
	mockRepo "linkauth/internal/mocks/repository"
	mockSvc "linkauth/internal/mocks/service"
	"linkauth/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenIssuerFixtures struct {
	issuer       usecase.TokenIssuer
	accountRepo  *mockRepo.MockAccountRepository
	tokenService *mockSvc.MockTokenService
	metrics      *mockSvc.MockAuthMetrics
}

func createTestTokenIssuer(t *testing.T) tokenIssuerFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	issuer := NewTokenIssuer(TokenIssuerParams{
		AccountRepo:  accountRepo,
		TokenService: tokenService,
		Metrics:      metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return tokenIssuerFixtures{
		issuer:       issuer,
		accountRepo:  accountRepo,
		tokenService: tokenService,
		metrics:      metrics,
	}
}

func TestTokenIssuer_Issue_Success(t *testing.T) {
	fx := createTestTokenIssuer(t)
	account := newTestAccount("jeanluc", "jeanluc@gmail.com")

	fx.tokenService.EXPECT().Sign(entity.TokenKindAccess, account.ID, account.Email).Return("access-token", nil)
	fx.tokenService.EXPECT().Sign(entity.TokenKindRefresh, account.ID, account.Email).Return("refresh-token", nil)
	fx.metrics.EXPECT().RecordTokenIssue(mock.AnythingOfType("time.Duration")).Return()

	pair, err := fx.issuer.Issue(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestTokenIssuer_Issue_SigningFailureFailsWholePair(t *testing.T) {
	fx := createTestTokenIssuer(t)
	account := newTestAccount("jeanluc", "jeanluc@gmail.com")

	fx.tokenService.EXPECT().Sign(entity.TokenKindAccess, account.ID, account.Email).Return("access-token", nil)
	fx.tokenService.EXPECT().Sign(entity.TokenKindRefresh, account.ID, account.Email).Return("", errors.New("key unavailable"))

	pair, err := fx.issuer.Issue(context.Background(), account)

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrSigningFailure)
	assert.ErrorContains(t, err, "key unavailable")
}

func TestTokenIssuer_Refresh(t *testing.T) {
	t.Run("account exists", func(t *testing.T) {
		fx := createTestTokenIssuer(t)
		account := newTestAccount("jeanluc", "jeanluc@gmail.com")

		fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
		fx.tokenService.EXPECT().Sign(mock.Anything, account.ID, account.Email).Return("token", nil).Twice()
		fx.metrics.EXPECT().RecordTokenIssue(mock.Anything).Return()

		pair, err := fx.issuer.Refresh(context.Background(), account.ID)

		require.NoError(t, err)
		assert.NotNil(t, pair)
	})

	t.Run("account removed", func(t *testing.T) {
		fx := createTestTokenIssuer(t)
		id := uuid.New()

		fx.accountRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

		pair, err := fx.issuer.Refresh(context.Background(), id)

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestTokenIssuer_Authenticate(t *testing.T) {
	account := newTestAccount("jeanluc", "jeanluc@gmail.com")
	validClaims := &service.Claims{
		Email:            account.Email,
		Kind:             entity.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: account.ID.String()},
	}

	t.Run("live account", func(t *testing.T) {
		fx := createTestTokenIssuer(t)

		fx.tokenService.EXPECT().Validate(entity.TokenKindAccess, "good").Return(validClaims, nil)
		fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

		got, err := fx.issuer.Authenticate(context.Background(), entity.TokenKindAccess, "good")

		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestTokenIssuer(t)

		fx.tokenService.EXPECT().Validate(entity.TokenKindAccess, "bad").Return(nil, jwt.ErrTokenExpired)

		_, err := fx.issuer.Authenticate(context.Background(), entity.TokenKindAccess, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("malformed subject", func(t *testing.T) {
		fx := createTestTokenIssuer(t)
		claims := &service.Claims{Kind: entity.TokenKindAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "nope"}}

		fx.tokenService.EXPECT().Validate(entity.TokenKindAccess, "odd").Return(claims, nil)

		_, err := fx.issuer.Authenticate(context.Background(), entity.TokenKindAccess, "odd")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("account removed", func(t *testing.T) {
		fx := createTestTokenIssuer(t)

		fx.tokenService.EXPECT().Validate(entity.TokenKindAccess, "good").Return(validClaims, nil)
		fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(nil, nil)

		_, err := fx.issuer.Authenticate(context.Background(), entity.TokenKindAccess, "good")

		assert.ErrorIs(t, err, domainerrors.ErrUserNoLongerExists)
	})
}

func TestTokenIssuer_StoreTimeout(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	cfg := newTestConfig()
	cfg.Auth.StoreTimeout = 10 * time.Millisecond

	issuer := NewTokenIssuer(TokenIssuerParams{
		AccountRepo:  accountRepo,
		TokenService: mockSvc.NewMockTokenService(t),
		Metrics:      mockSvc.NewMockAuthMetrics(t),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	id := uuid.New()
	accountRepo.EXPECT().FindByID(mock.Anything, id).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.Account, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := issuer.Refresh(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
