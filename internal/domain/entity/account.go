// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Username length bounds enforced on every stored handle.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

// ProviderGoogle is the provider name recorded for Google sign-ins.
const ProviderGoogle = "google"

// Account is the durable identity record unifying credential and federated logins.
type Account struct {
	ID                uuid.UUID // Stable identifier, never changes after creation.
	Username          string    // Unique login handle.
	Email             string    // Unique contact address, also accepted as a login identifier.
	PasswordHash      *string   // Nil for accounts created through OAuth that never set a password.
	Provider          *string   // OAuth provider name, e.g. "google".
	ProviderSubjectID *string   // The provider's immutable subject identifier.
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasPassword reports whether the account can log in with a password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// IsLinkedTo reports whether the account is already linked to the given provider identity.
func (a *Account) IsLinkedTo(provider, subjectID string) bool {
	return a.Provider != nil && a.ProviderSubjectID != nil &&
		*a.Provider == provider && *a.ProviderSubjectID == subjectID
}

// LinkIdentity records the provider identity on the account and applies the
// profile fields the assertion supplies. Absent fields are left untouched.
func (a *Account) LinkIdentity(assertion *OAuthAssertion) {
	provider := assertion.Provider
	subjectID := assertion.ProviderSubjectID
	a.Provider = &provider
	a.ProviderSubjectID = &subjectID

	if assertion.FirstName != "" {
		firstName := assertion.FirstName
		a.FirstName = &firstName
	}
	if assertion.LastName != "" {
		lastName := assertion.LastName
		a.LastName = &lastName
	}
	if assertion.PictureURL != "" {
		picture := assertion.PictureURL
		a.ProfilePictureURL = &picture
	}
}
