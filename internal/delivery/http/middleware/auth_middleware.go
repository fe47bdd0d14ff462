package middleware

import (
	"strings"

	deliverycontext "linkauth/internal/delivery/context"
	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens to live accounts.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate requires a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.TokenKindAccess)(next)
}

// AuthenticateRefresh requires a valid refresh token.
func (m *AuthMiddleware) AuthenticateRefresh(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.TokenKindRefresh)(next)
}

func (m *AuthMiddleware) require(kind entity.TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domainerrors.ErrInvalidToken.WithDetails("missing bearer token")
			}

			account, err := m.authUC.Authenticate(c.Request().Context(), kind, token)
			if err != nil {
				return err
			}

			deliverycontext.SetAccount(c, account)

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
