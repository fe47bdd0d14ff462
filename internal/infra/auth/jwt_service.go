package auth

import (
	"time"

	"linkauth/config"
	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenKind is returned when a token validates under the right secret but carries another type claim.
var ErrTokenKind = errors.New("token kind mismatch")

type tokenSettings struct {
	secret []byte
	ttl    time.Duration
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	settings map[entity.TokenKind]tokenSettings
	issuer   string
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.Access.Secret == "" || cfg.Refresh.Secret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Access.Expiry <= 0 || cfg.Refresh.Expiry <= 0 {
		return nil, errors.New("jwt expiries must be positive")
	}

	var issuer string
	if cfg.Auth != nil {
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		settings: map[entity.TokenKind]tokenSettings{
			entity.TokenKindAccess:  {secret: []byte(cfg.Access.Secret), ttl: cfg.Access.Expiry},
			entity.TokenKindRefresh: {secret: []byte(cfg.Refresh.Secret), ttl: cfg.Refresh.Expiry},
		},
		issuer: issuer,
		now:    now,
	}, nil
}

// Sign creates an HS256 token. Every token carries a fresh jti so two tokens
// signed within the same second still differ.
func (s *jwtService) Sign(kind entity.TokenKind, accountID uuid.UUID, email string) (string, error) {
	settings, ok := s.settings[kind]
	if !ok {
		return "", errors.Errorf("unknown token kind %q", kind)
	}

	now := s.now()
	claims := service.Claims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(settings.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(settings.secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", kind)
	}

	return signed, nil
}

// Validate parses a token with the secret of kind.
func (s *jwtService) Validate(kind entity.TokenKind, tokenString string) (*service.Claims, error) {
	settings, ok := s.settings[kind]
	if !ok {
		return nil, errors.Errorf("unknown token kind %q", kind)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return settings.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s token", kind)
	}

	if claims.Kind != kind {
		return nil, errors.Wrapf(ErrTokenKind, "want %s, got %q", kind, claims.Kind)
	}

	return claims, nil
}
