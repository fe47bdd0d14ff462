// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"
	"unicode"

	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagPassword is the struct tag enforcing password strength.
const TagPassword = "password"

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the custom password rule registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag or nil func.
	_ = validate.RegisterValidation(TagPassword, func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate reports the first failing fields as ErrValidationFailed details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, describe(fe))
	}

	return errors.Join(domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; ")), err)
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case TagPassword:
		return field + " must contain upper and lower case letters and a number or special character"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// StrongPassword requires an upper-case letter, a lower-case letter and a
// digit or symbol. A leading dot or any newline is rejected.
func StrongPassword(password string) bool {
	if strings.HasPrefix(password, ".") || strings.ContainsAny(password, "\r\n") {
		return false
	}

	var upper, lower, digitOrSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r), !unicode.IsLetter(r) && r != '_':
			digitOrSymbol = true
		}
	}

	return upper && lower && digitOrSymbol
}
