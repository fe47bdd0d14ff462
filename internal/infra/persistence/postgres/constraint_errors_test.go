package postgres

import (
	"testing"

	"linkauth/internal/domain/repository"
	"linkauth/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAsConstraintViolation(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantOK    bool
		wantField repository.ConstraintField
	}{
		{
			name:      "postgres email",
			err:       errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_email"}, "insert"),
			wantOK:    true,
			wantField: repository.ConstraintEmail,
		},
		{
			name:      "postgres username",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_username"},
			wantOK:    true,
			wantField: repository.ConstraintUsername,
		},
		{
			name:      "postgres provider subject",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_provider_subject"},
			wantOK:    true,
			wantField: repository.ConstraintProviderSubject,
		},
		{
			name:   "postgres not null",
			err:    &pgconn.PgError{Code: "23502", ConstraintName: ""},
			wantOK: false,
		},
		{
			name:      "sqlite email",
			err:       errors.New("constraint failed: UNIQUE constraint failed: accounts.email (2067)"),
			wantOK:    true,
			wantField: repository.ConstraintEmail,
		},
		{
			name:      "sqlite composite",
			err:       errors.New("UNIQUE constraint failed: accounts.provider, accounts.provider_subject_id"),
			wantOK:    true,
			wantField: repository.ConstraintProviderSubject,
		},
		{
			name:      "translated duplicate",
			err:       gorm.ErrDuplicatedKey,
			wantOK:    true,
			wantField: repository.ConstraintUnknown,
		},
		{
			name:   "other",
			err:    errors.New("connection refused"),
			wantOK: false,
		},
		{
			name:   "nil",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, ok := asConstraintViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantField, cv.Field)
				assert.True(t, errors.Is(cv, tt.err))
			}
		})
	}
}
