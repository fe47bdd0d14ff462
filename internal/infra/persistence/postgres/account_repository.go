// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"linkauth/internal/domain/entity"
	domainerrors "linkauth/internal/domain/errors"
	"linkauth/internal/domain/repository"
	"linkauth/internal/errors"
	"linkauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first("find account by id", repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first("find account by email", repo.db.WithContext(ctx).Where("email = ?", email))
}

// FindByUsername retrieves a single account by its username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.first("find account by username", repo.db.WithContext(ctx).Where("username = ?", username))
}

// FindByUsernameOrEmail matches either column. A username match wins if the
// identifier happens to hit two different rows.
func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	query := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN username = ? THEN 0 ELSE 1 END",
			Vars:               []any{identifier},
			WithoutParentheses: true,
		}})

	return repo.first("find account by username or email", query)
}

// FindByProviderSubject retrieves the account linked to a provider identity.
func (repo *accountRepository) FindByProviderSubject(ctx context.Context, provider, subjectID string) (*entity.Account, error) {
	query := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_subject_id = ?", provider, subjectID)

	return repo.first("find account by provider subject", query)
}

// Create persists a new account. The ID is a UUIDv7 generated here.
func (repo *accountRepository) Create(ctx context.Context, req entity.NewAccount) (*entity.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid account request")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate account id")
	}

	account := req.Account()
	account.ID = id
	now := repo.now()
	account.CreatedAt = now
	account.UpdatedAt = now

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if cv, ok := asConstraintViolation(err); ok {
			return nil, cv
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return toAccountDomain(accountM), nil
}

// Save writes every mutable column of an existing account.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	updatedAt := repo.now()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"username":            account.Username,
			"email":               account.Email,
			"password_hash":       account.PasswordHash,
			"provider":            account.Provider,
			"provider_subject_id": account.ProviderSubjectID,
			"first_name":          account.FirstName,
			"last_name":           account.LastName,
			"profile_picture_url": account.ProfilePictureURL,
			"updated_at":          updatedAt,
		})
	if result.Error != nil {
		if cv, ok := asConstraintViolation(result.Error); ok {
			return cv
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountMissing
	}

	account.UpdatedAt = updatedAt

	return nil
}

func (repo *accountRepository) first(op string, query *gorm.DB) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.Take(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Provider:          data.Provider,
		ProviderSubjectID: data.ProviderSubjectID,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		ProfilePictureURL: data.ProfilePictureURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Provider:          data.Provider,
		ProviderSubjectID: data.ProviderSubjectID,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		ProfilePictureURL: data.ProfilePictureURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
