package repository

import (
	"fmt"

	"linkauth/internal/errors"
)

// ConstraintField names the unique constraint a write ran into.
type ConstraintField string

const (
	ConstraintEmail           ConstraintField = "email"
	ConstraintUsername        ConstraintField = "username"
	ConstraintProviderSubject ConstraintField = "provider_subject"
	// ConstraintUnknown is reported when the driver does not name the constraint.
	ConstraintUnknown ConstraintField = "unknown"
)

// ConstraintViolation is returned by Create and Save when a uniqueness rule rejects the write.
type ConstraintViolation struct {
	Field ConstraintField
	Err   error
}

// NewConstraintViolation builds a ConstraintViolation for field.
func NewConstraintViolation(field ConstraintField, err error) *ConstraintViolation {
	return &ConstraintViolation{Field: field, Err: err}
}

func (e *ConstraintViolation) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unique constraint violated on %s", e.Field)
	}

	return fmt.Sprintf("unique constraint violated on %s: %v", e.Field, e.Err)
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}

// AsConstraintViolation extracts a ConstraintViolation from err's tree.
func AsConstraintViolation(err error) (*ConstraintViolation, bool) {
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return cv, true
	}

	return nil, false
}
