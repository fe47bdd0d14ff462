package auth

import (
	"testing"
	"time"

	"linkauth/config"
	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Access:  config.TokenConfig{Secret: "test_access_secret_key_very_long_for_testing", Expiry: 15 * time.Minute},
		Refresh: config.TokenConfig{Secret: "test_refresh_secret_key_very_long_for_testing", Expiry: 7 * 24 * time.Hour},
		Auth:    &config.AuthConfig{Issuer: "linkauth"},
	}
}

func TestJWTService_SignAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	for _, kind := range []entity.TokenKind{entity.TokenKindAccess, entity.TokenKindRefresh} {
		t.Run(kind.String(), func(t *testing.T) {
			token, err := jwtService.Sign(kind, accountID, "jeanluc@gmail.com")
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := jwtService.Validate(kind, token)
			require.NoError(t, err)
			assert.Equal(t, kind, claims.Kind)
			assert.Equal(t, "jeanluc@gmail.com", claims.Email)
			assert.Equal(t, "linkauth", claims.Issuer)
			assert.NotEmpty(t, claims.ID)

			id, err := claims.AccountID()
			require.NoError(t, err)
			assert.Equal(t, accountID, id)
		})
	}
}

func TestJWTService_TokensDifferWithinSameSecond(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	jwtService, err := newJWTService(newTestConfig(), func() time.Time { return fixed })
	require.NoError(t, err)

	accountID := uuid.New()
	first, err := jwtService.Sign(entity.TokenKindAccess, accountID, "a@b.c")
	require.NoError(t, err)
	second, err := jwtService.Sign(entity.TokenKindAccess, accountID, "a@b.c")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	jwtService, err := newJWTService(newTestConfig(), func() time.Time { return clock() })
	require.NoError(t, err)

	token, err := jwtService.Sign(entity.TokenKindAccess, uuid.New(), "a@b.c")
	require.NoError(t, err)

	claims, err := jwtService.Validate(entity.TokenKindAccess, token)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)

	clock = func() time.Time { return now.Add(16 * time.Minute) }
	_, err = jwtService.Validate(entity.TokenKindAccess, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	// Refresh tokens outlive access tokens.
	refresh, err := jwtService.Sign(entity.TokenKindRefresh, uuid.New(), "a@b.c")
	require.NoError(t, err)
	_, err = jwtService.Validate(entity.TokenKindRefresh, refresh)
	assert.NoError(t, err)
}

func TestJWTService_RejectsOtherKindSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	access, err := jwtService.Sign(entity.TokenKindAccess, uuid.New(), "a@b.c")
	require.NoError(t, err)
	refresh, err := jwtService.Sign(entity.TokenKindRefresh, uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = jwtService.Validate(entity.TokenKindRefresh, access)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))

	_, err = jwtService.Validate(entity.TokenKindAccess, refresh)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTService_RejectsKindClaimMismatch(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Signed with the access secret but labelled refresh.
	claims := service.Claims{
		Kind: entity.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "linkauth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Access.Secret))
	require.NoError(t, err)

	_, err = jwtService.Validate(entity.TokenKindAccess, token)
	assert.True(t, errors.Is(err, ErrTokenKind))
}

func TestJWTService_RejectsForeignAlgorithm(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims := service.Claims{
		Kind: entity.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "linkauth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.Validate(entity.TokenKindAccess, token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate(entity.TokenKindAccess, "clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.Refresh.Secret = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
