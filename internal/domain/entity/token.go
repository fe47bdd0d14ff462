package entity

// TokenKind distinguishes the two halves of a TokenPair.
type TokenKind string

const (
	// TokenKindAccess is the short-lived token presented on each request.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived token exchanged for a new pair.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// IsValid checks if the TokenKind is a known value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindAccess, TokenKindRefresh:
		return true
	default:
		return false
	}
}

// TokenPair is an access/refresh pair of signed, expiring bearer assertions.
// It is never persisted.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
