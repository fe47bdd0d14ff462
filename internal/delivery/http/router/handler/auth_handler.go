// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkauth/config"
	deliverycontext "linkauth/internal/delivery/context"
	"linkauth/internal/delivery/http/response"
	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/service"
	"linkauth/internal/errors"
	"linkauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const frontendCallbackPath = "/oauth/callback"

// RegisterRequest is the registration body.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32,password"`
}

// LoginRequest accepts a username or an email as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// GoogleTokenRequest carries an ID token obtained by a client-side Google sign-in.
type GoogleTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

// AccountResponse is the public view of an account. The password hash is never exposed.
type AccountResponse struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FirstName         *string   `json:"firstName,omitempty"`
	LastName          *string   `json:"lastName,omitempty"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
	Provider          *string   `json:"provider,omitempty"`
	HasPassword       bool      `json:"hasPassword"`
	CreatedAt         time.Time `json:"createdAt"`
}

func newAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:                account.ID,
		Username:          account.Username,
		Email:             account.Email,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		ProfilePictureURL: account.ProfilePictureURL,
		Provider:          account.Provider,
		HasPassword:       account.HasPassword(),
		CreatedAt:         account.CreatedAt,
	}
}

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	authUC      usecase.AuthUsecase
	oauth       service.OAuthService
	idTokens    service.IDTokenVerifier
	frontendURL string
	logger      *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx. The
// Google services are absent when OAuth is disabled.
type AuthHandlerParams struct {
	fx.In

	AuthUsecase     usecase.AuthUsecase
	OAuthService    service.OAuthService    `optional:"true"`
	IDTokenVerifier service.IDTokenVerifier `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	var frontendURL string
	if params.Config.OAuth != nil {
		frontendURL = strings.TrimRight(params.Config.OAuth.FrontendURL, "/")
	}

	return &AuthHandler{
		authUC:      params.AuthUsecase,
		oauth:       params.OAuthService,
		idTokens:    params.IDTokenVerifier,
		frontendURL: frontendURL,
		logger:      params.Logger,
	}
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// bindAndValidate decodes the body and runs the struct rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Join(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err)
	}

	return c.Validate(req)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{UserID: output.AccountID}, "User registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair, "Login successful")
}

// Refresh handles POST /api/auth/refresh behind the refresh-token middleware.
func (h *AuthHandler) Refresh(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	pair, err := h.authUC.RefreshTokens(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair, "Tokens refreshed")
}

// Logout handles POST /api/auth/logout. Tokens are not tracked server-side, so
// the client discarding its pair is the whole logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "")
}

// GoogleLogin handles GET /api/auth/google by redirecting to the consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if h.oauth == nil {
		return echo.ErrNotFound
	}

	authURL, err := h.oauth.AuthorizationURL()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles GET /api/auth/google/callback and hands the pair to
// the frontend as query parameters.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if h.oauth == nil {
		return echo.ErrNotFound
	}

	ctx := c.Request().Context()

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.log(c).InfoContext(ctx, "Provider denied authorization", slog.String("error", providerErr))

		return domainerrors.ErrOAuthFailed.WithDetails(providerErr)
	}

	if err := h.oauth.ValidateState(c.QueryParam("state")); err != nil {
		return oauthFailure(err)
	}

	code := c.QueryParam("code")
	if code == "" {
		return domainerrors.ErrOAuthFailed.WithDetails("missing authorization code")
	}

	assertion, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.log(c).WarnContext(ctx, "OAuth code exchange failed", slog.Any("error", err))

		return oauthFailure(err)
	}

	pair, err := h.authUC.OAuthCallback(ctx, assertion)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, h.frontendCallbackURL(pair))
}

// GoogleToken handles POST /api/auth/google/token for clients that already hold a Google ID token.
func (h *AuthHandler) GoogleToken(c echo.Context) error {
	if h.idTokens == nil {
		return echo.ErrNotFound
	}

	var req GoogleTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assertion, err := h.idTokens.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return oauthFailure(err)
	}

	pair, err := h.authUC.OAuthCallback(c.Request().Context(), assertion)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair, "Login successful")
}

func (h *AuthHandler) frontendCallbackURL(pair *entity.TokenPair) string {
	query := url.Values{}
	query.Set("access_token", pair.AccessToken)
	query.Set("refresh_token", pair.RefreshToken)

	return h.frontendURL + frontendCallbackPath + "?" + query.Encode()
}

// oauthFailure keeps a classified provider error and classifies the rest as ErrOAuthFailed.
func oauthFailure(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Join(domainerrors.ErrOAuthFailed, err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
