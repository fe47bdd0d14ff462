package service

import "context"

// UsernameAllocator derives a login handle from an email address.
type UsernameAllocator interface {
	// Allocate returns a handle that was free when it was checked. The store's
	// unique constraint stays authoritative.
	Allocate(ctx context.Context, email string) (string, error)
}
