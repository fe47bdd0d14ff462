package postgres

import (
	"strings"

	"linkauth/internal/domain/repository"
	"linkauth/internal/errors"
	"linkauth/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL unique_violation.
const pgUniqueViolation = "23505"

// asConstraintViolation maps a unique-constraint failure from the driver to the
// column it protects. ok is false for every other error.
func asConstraintViolation(err error) (*repository.ConstraintViolation, bool) {
	if err == nil {
		return nil, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return nil, false
		}

		return repository.NewConstraintViolation(constraintField(pgErr.ConstraintName), err), true
	}

	// SQLite reports "UNIQUE constraint failed: accounts.email".
	msg := err.Error()
	if idx := strings.Index(msg, "UNIQUE constraint failed: "); idx >= 0 {
		return repository.NewConstraintViolation(constraintField(msg[idx:]), err), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.NewConstraintViolation(repository.ConstraintUnknown, err), true
	}

	return nil, false
}

func constraintField(name string) repository.ConstraintField {
	switch {
	case strings.Contains(name, model.IndexAccountsProviderSubject), strings.Contains(name, "accounts.provider"):
		return repository.ConstraintProviderSubject
	case strings.Contains(name, model.IndexAccountsEmail), strings.Contains(name, "accounts.email"):
		return repository.ConstraintEmail
	case strings.Contains(name, model.IndexAccountsUsername), strings.Contains(name, "accounts.username"):
		return repository.ConstraintUsername
	default:
		return repository.ConstraintUnknown
	}
}
