package google

import (
	"context"
	"log/slog"

	"linkauth/config"
	"linkauth/internal/domain/entity"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

// ValidateFunc matches idtoken.Validate.
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// IDTokenVerifier checks Google ID tokens posted by clients that ran the sign-in flow themselves.
type IDTokenVerifier struct {
	clientID string
	validate ValidateFunc
	logger   *slog.Logger
}

// NewIDTokenVerifier verifies tokens against Google's published keys.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IDTokenVerifier {
	return NewIDTokenVerifierWithValidator(cfg, logger, idtoken.Validate)
}

// NewIDTokenVerifierWithValidator is NewIDTokenVerifier with the signature check swapped out.
func NewIDTokenVerifierWithValidator(cfg *config.Config, logger *slog.Logger, validate ValidateFunc) *IDTokenVerifier {
	var clientID string
	if cfg.OAuth != nil {
		clientID = cfg.OAuth.ClientID
	}

	return &IDTokenVerifier{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience, issuer and expiry, then maps the claims.
func (v *IDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.OAuthAssertion, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	info := userInfo{
		Sub:           payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
		Picture:       stringClaim(payload.Claims, "picture"),
	}

	assertion, err := info.assertion()
	if err != nil {
		return nil, err
	}

	v.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", assertion.ProviderSubjectID))

	return assertion, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

// email_verified arrives as a bool, or as "true" from some older issuers.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
