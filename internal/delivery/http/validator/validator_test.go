package validator

import (
	"testing"

	domainerrors "linkauth/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Username string `validate:"required,min=3,max=20"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=32,password"`
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{password: "Test123!", want: true},
		{password: "Enterprise1701", want: true},
		{password: "Picard!Picard", want: true},
		{password: "alllowercase1", want: false},
		{password: "ALLUPPERCASE1", want: false},
		{password: "NoDigitsHere", want: false},
		{password: ".Leading1dot", want: false},
		{password: "Line\nBreak1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, StrongPassword(tt.password))
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Username: "jeanluc", Email: "jeanluc@gmail.com", Password: "Test123!"}))

	err := v.Validate(&signup{Username: "jl", Email: "not-an-email", Password: "weakpass"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "username must be at least 3 characters")
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "password must contain")
}
