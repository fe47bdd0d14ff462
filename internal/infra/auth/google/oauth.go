// Package google implements the Google sign-in adapters: the authorization-code
// flow and direct ID-token verification.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"linkauth/config"
	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	defaultUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	stateTTL      = 10 * time.Minute
	stateAudience = "oauth-state"
)

// Failures carry the domain codes so the transport renders them directly.
var (
	ErrStateInvalid   = domainerrors.ErrOAuthStateInvalid
	ErrEmailMissing   = domainerrors.ErrOAuthEmailMissing
	ErrSubjectMissing = domainerrors.ErrOAuthFailed.WithDetails("provider did not return a subject")
)

// OAuthService handles the Google authorization-code flow.
type OAuthService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
	stateKey    []byte
	httpClient  *http.Client
	now         func() time.Time
}

// Option customises an OAuthService.
type Option func(*OAuthService)

// WithEndpoint points the flow at other authorization, token and userinfo URLs.
func WithEndpoint(authURL, tokenURL, userInfoURL string) Option {
	return func(s *OAuthService) {
		s.oauthConfig.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
		s.userInfoURL = userInfoURL
	}
}

// WithHTTPClient sets the client used for the token exchange and userinfo calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *OAuthService) {
		s.httpClient = client
	}
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, opts ...Option) service.OAuthService {
	oauthCfg := cfg.OAuth
	if oauthCfg == nil {
		oauthCfg = &config.OAuthConfig{}
	}

	scopes := oauthCfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}

	s := &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.CallbackURL,
			Endpoint:     endpoints.Google,
			Scopes:       scopes,
		},
		userInfoURL: defaultUserInfoURL,
		stateKey:    []byte(oauthCfg.ClientSecret),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Provider returns the OAuth provider name.
func (s *OAuthService) Provider() string {
	return entity.ProviderGoogle
}

// AuthorizationURL constructs the consent URL. The state is a short-lived
// HMAC-signed token so no server-side storage is needed.
func (s *OAuthService) AuthorizationURL() (string, error) {
	state, err := s.newState()
	if err != nil {
		return "", err
	}

	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (s *OAuthService) newState() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Audience:  jwt.ClaimStrings{stateAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}

	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.stateKey)
	if err != nil {
		return "", errors.Wrap(err, "sign oauth state")
	}

	return state, nil
}

// ValidateState checks the signature and expiry of a state value.
func (s *OAuthService) ValidateState(state string) error {
	if state == "" {
		return ErrStateInvalid
	}

	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return s.stateKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(stateAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return errors.Wrap(ErrStateInvalid, err.Error())
	}

	return nil
}

// Exchange trades the authorization code for a token and reads the userinfo endpoint.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*entity.OAuthAssertion, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	client := s.oauthConfig.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return info.assertion()
}

type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func (u userInfo) assertion() (*entity.OAuthAssertion, error) {
	if u.Sub == "" {
		return nil, ErrSubjectMissing
	}
	if u.Email == "" {
		return nil, ErrEmailMissing
	}
	// Unverified addresses never reach the email-merge tier.
	if !u.EmailVerified {
		return nil, ErrEmailMissing.WithDetails("provider email is not verified")
	}

	return &entity.OAuthAssertion{
		Provider:          entity.ProviderGoogle,
		ProviderSubjectID: u.Sub,
		Email:             u.Email,
		EmailVerified:     u.EmailVerified,
		FirstName:         u.GivenName,
		LastName:          u.FamilyName,
		PictureURL:        u.Picture,
	}, nil
}
