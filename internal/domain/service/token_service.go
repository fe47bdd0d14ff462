package service

import (
	"linkauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Email string           `json:"email"`
	Kind  entity.TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService signs and validates single tokens. Each kind has its own secret and expiry.
type TokenService interface {
	// Sign creates a token of the given kind for the subject.
	Sign(kind entity.TokenKind, accountID uuid.UUID, email string) (string, error)

	// Validate parses a token with the secret of the given kind and rejects
	// expired tokens, foreign signatures and tokens of another kind.
	Validate(kind entity.TokenKind, token string) (*Claims, error)
}
