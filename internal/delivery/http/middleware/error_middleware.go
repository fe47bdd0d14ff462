// Package middleware contains the echo middleware of the HTTP API.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "linkauth/internal/delivery/context"
	"linkauth/internal/delivery/http/response"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders handler errors into the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// Commit renders a handler error before it reaches the outer middleware, so the
// access log sees the committed status instead of echo's generic 500 wrapper.
func (m *ErrorMiddleware) Commit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := next(c); err != nil {
			c.Error(err)
		}

		return nil
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	// A 500 HTTPError carrying an internal cause is a wrapped unclassified error.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && !(httpErr.Code >= http.StatusInternalServerError && httpErr.Internal != nil) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.ErrorContext(c.Request().Context(), "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}
