package entity

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AccountKind tags how an account enters the system.
type AccountKind int

const (
	// AccountKindCredential is an account registered with a password.
	AccountKindCredential AccountKind = iota + 1
	// AccountKindFederated is an account created from an OAuth assertion.
	AccountKindFederated
)

// String returns the name of the kind.
func (k AccountKind) String() string {
	switch k {
	case AccountKindCredential:
		return "credential"
	case AccountKindFederated:
		return "federated"
	default:
		return "unknown"
	}
}

// Errors returned by NewAccount.Validate.
var (
	ErrNewAccountKind     = errors.New("account kind is not set")
	ErrNewAccountIdentity = errors.New("account needs exactly one of a password hash or a provider identity")
	ErrNewAccountHandle   = errors.New("username and email are required")
	ErrUsernameLength     = errors.New("username must be 3 to 20 characters")
)

// ValidateUsername enforces the handle length bounds, counted in characters.
func ValidateUsername(username string) error {
	if n := utf8.RuneCountInString(username); n < UsernameMinLength || n > UsernameMaxLength {
		return ErrUsernameLength
	}

	return nil
}

// FederatedIdentity is the provider half of a federated account.
type FederatedIdentity struct {
	Provider          string
	ProviderSubjectID string
}

// Profile is optional display metadata.
type Profile struct {
	FirstName  string
	LastName   string
	PictureURL string
}

// NewAccount is a creation request. Build it with NewCredentialAccount or
// NewFederatedAccount; the zero value is rejected by Validate.
type NewAccount struct {
	kind         AccountKind
	username     string
	email        string
	passwordHash string
	identity     FederatedIdentity
	profile      Profile
}

// NewCredentialAccount builds a request for an account that logs in with a password.
func NewCredentialAccount(username, email, passwordHash string) NewAccount {
	return NewAccount{
		kind:         AccountKindCredential,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
	}
}

// NewFederatedAccount builds a request for an account created from an OAuth identity.
func NewFederatedAccount(username, email string, identity FederatedIdentity, profile Profile) NewAccount {
	return NewAccount{
		kind:     AccountKindFederated,
		username: username,
		email:    email,
		identity: identity,
		profile:  profile,
	}
}

// Kind returns the request tag.
func (n NewAccount) Kind() AccountKind { return n.kind }

// Username returns the requested handle.
func (n NewAccount) Username() string { return n.username }

// Email returns the requested email.
func (n NewAccount) Email() string { return n.email }

// Validate rejects out-of-bounds handles and requests that carry neither
// credential nor provider identity, or both.
func (n NewAccount) Validate() error {
	if n.username == "" || n.email == "" {
		return ErrNewAccountHandle
	}
	if err := ValidateUsername(n.username); err != nil {
		return err
	}

	hasPassword := n.passwordHash != ""
	hasIdentity := n.identity.Provider != "" && n.identity.ProviderSubjectID != ""

	switch n.kind {
	case AccountKindCredential:
		if !hasPassword || hasIdentity {
			return ErrNewAccountIdentity
		}
	case AccountKindFederated:
		if hasPassword || !hasIdentity {
			return ErrNewAccountIdentity
		}
	default:
		return ErrNewAccountKind
	}

	return nil
}

// Account materialises the request into an Account without id or timestamps.
func (n NewAccount) Account() *Account {
	account := &Account{
		Username: n.username,
		Email:    n.email,
	}

	switch n.kind {
	case AccountKindCredential:
		hash := n.passwordHash
		account.PasswordHash = &hash
	case AccountKindFederated:
		account.LinkIdentity(&OAuthAssertion{
			Provider:          n.identity.Provider,
			ProviderSubjectID: n.identity.ProviderSubjectID,
			Email:             n.email,
			FirstName:         n.profile.FirstName,
			LastName:          n.profile.LastName,
			PictureURL:        n.profile.PictureURL,
		})
	}

	return account
}
