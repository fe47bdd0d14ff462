// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"linkauth/config"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/errors"
)

const defaultStoreTimeout = 5 * time.Second

// storeGuard bounds each repository call. A deadline becomes ErrStoreUnavailable.
type storeGuard struct {
	timeout time.Duration
}

func newStoreGuard(cfg *config.Config) storeGuard {
	timeout := defaultStoreTimeout
	if cfg != nil && cfg.Auth != nil && cfg.Auth.StoreTimeout > 0 {
		timeout = cfg.Auth.StoreTimeout
	}

	return storeGuard{timeout: timeout}
}

// guarded runs fn under the store timeout and classifies its error.
func guarded[T any](ctx context.Context, g storeGuard, op string, fn func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := fn(callCtx)
	if err != nil {
		var zero T

		return zero, classifyStoreError(err, op)
	}

	return result, nil
}

// guardedExec is guarded for calls without a result.
func guardedExec(ctx context.Context, g storeGuard, op string, fn func(context.Context) error) error {
	_, err := guarded(ctx, g, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	return err
}

func classifyStoreError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(domainerrors.ErrStoreUnavailable.WithDetails(op), err)
	}

	return errors.Wrap(err, op)
}
