package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkauth/config"
	domainerrors "linkauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func limitedCall(t *testing.T, rl *RateLimiter, ip string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()

	err := rl.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(e.NewContext(req, rec))

	return rec, err
}

func TestRateLimiter_BurstPerClient(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Limit: 10, Window: time.Minute}}
	rl := NewRateLimiter(cfg)

	for i := range 10 {
		_, err := limitedCall(t, rl, "10.0.0.1")
		require.NoError(t, err, "request %d", i)
	}

	rec, err := limitedCall(t, rl, "10.0.0.1")
	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	assert.Equal(t, "6", rec.Header().Get("Retry-After"))

	_, err = limitedCall(t, rl, "10.0.0.2")
	assert.NoError(t, err, "other clients keep their own bucket")
}

func TestRateLimiter_Refills(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Limit: 1, Window: 50 * time.Millisecond}}
	rl := NewRateLimiter(cfg)

	_, err := limitedCall(t, rl, "10.0.0.1")
	require.NoError(t, err)
	_, err = limitedCall(t, rl, "10.0.0.1")
	require.ErrorIs(t, err, domainerrors.ErrTooManyRequests)

	time.Sleep(80 * time.Millisecond)

	_, err = limitedCall(t, rl, "10.0.0.1")
	assert.NoError(t, err)
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: false, Limit: 1, Window: time.Minute}}
	rl := NewRateLimiter(cfg)

	for range 3 {
		_, err := limitedCall(t, rl, "10.0.0.1")
		assert.NoError(t, err)
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrDuplicateEmail,
			wantCode: http.StatusConflict,
			wantBody: "DUPLICATE_EMAIL",
		},
		{
			name:     "app error behind generic wrapper",
			err:      echo.NewHTTPError(http.StatusInternalServerError).WithInternal(domainerrors.ErrInvalidCredentials),
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
		{
			name:     "unclassified behind generic wrapper",
			err:      echo.NewHTTPError(http.StatusInternalServerError).WithInternal(errors.New("pq: connection refused")),
			wantCode: http.StatusInternalServerError,
			wantBody: "INTERNAL_ERROR",
		},
		{
			name:     "echo error",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_CommitRendersInPlace(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	e.HTTPErrorHandler = mw.HandleHTTPError
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := mw.Commit(func(echo.Context) error {
		return domainerrors.ErrTooManyRequests
	})(c)

	require.NoError(t, err)
	assert.True(t, c.Response().Committed)
	assert.Equal(t, http.StatusTooManyRequests, c.Response().Status)
}
