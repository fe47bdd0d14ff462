package middleware

import (
	"strconv"
	"time"

	"linkauth/config"
	domainerrors "linkauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
	// Visitors idle for this many windows are forgotten.
	idleWindows = 3
)

// RateLimiter throttles requests per client IP with a token bucket that
// refills limit tokens per window.
type RateLimiter struct {
	enabled    bool
	limit      int
	window     time.Duration
	middleware echo.MiddlewareFunc
}

// NewRateLimiter builds the limiter from config.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		limit:  defaultLimit,
		window: defaultWindow,
	}
	if cfg.RateLimit != nil {
		rl.enabled = cfg.RateLimit.Enabled
		if cfg.RateLimit.Limit > 0 {
			rl.limit = cfg.RateLimit.Limit
		}
		if cfg.RateLimit.Window > 0 {
			rl.window = cfg.RateLimit.Window
		}
	}

	rl.middleware = echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(echo.Context) bool { return !rl.enabled },
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(rl.interval()),
			Burst:     rl.limit,
			ExpiresIn: idleWindows * rl.window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return domainerrors.ErrInternalError.WithDetails(err.Error())
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

			return domainerrors.ErrTooManyRequests
		},
	})

	return rl
}

// Handle rejects a client once its bucket is empty.
func (rl *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return rl.middleware(next)
}

// retryAfterSeconds is the time for one token to refill, rounded up.
func (rl *RateLimiter) retryAfterSeconds() int {
	return int((rl.interval() + time.Second - 1) / time.Second)
}

func (rl *RateLimiter) interval() time.Duration {
	return rl.window / time.Duration(rl.limit)
}
