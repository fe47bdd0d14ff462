package service

import (
	"context"

	"linkauth/internal/domain/entity"
)

// OAuthService drives the provider's authorization-code flow.
type OAuthService interface {
	// AuthorizationURL returns the provider consent URL carrying a fresh signed state.
	AuthorizationURL() (string, error)

	// ValidateState checks a state value returned on the callback.
	ValidateState(state string) error

	// Exchange trades an authorization code for the user's identity claims.
	Exchange(ctx context.Context, code string) (*entity.OAuthAssertion, error)

	// Provider returns the provider name recorded on linked accounts.
	Provider() string
}

// IDTokenVerifier verifies provider-issued ID tokens sent directly by clients.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*entity.OAuthAssertion, error)
}
