// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names shared by the SQL migrations and AutoMigrate.
const (
	IndexAccountsEmail           = "uq_accounts_email"
	IndexAccountsUsername        = "uq_accounts_username"
	IndexAccountsProviderSubject = "uq_accounts_provider_subject"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 assigned by the
// repository so ordering by id follows creation order.
type AccountModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username          string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_accounts_username"`
	Email             string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_email"`
	PasswordHash      *string   `gorm:"type:text"`
	Provider          *string   `gorm:"type:varchar(32);uniqueIndex:uq_accounts_provider_subject,priority:1"`
	ProviderSubjectID *string   `gorm:"type:varchar(255);uniqueIndex:uq_accounts_provider_subject,priority:2"`
	FirstName         *string   `gorm:"type:varchar(100)"`
	LastName          *string   `gorm:"type:varchar(100)"`
	ProfilePictureURL *string   `gorm:"column:profile_picture_url;type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
