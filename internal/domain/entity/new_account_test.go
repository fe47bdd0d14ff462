package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Validate(t *testing.T) {
	identity := FederatedIdentity{Provider: ProviderGoogle, ProviderSubjectID: "g-123"}

	tests := []struct {
		name    string
		req     NewAccount
		wantErr error
	}{
		{
			name: "credential",
			req:  NewCredentialAccount("jeanluc", "jeanluc@example.com", "hash"),
		},
		{
			name: "federated",
			req:  NewFederatedAccount("jeanluc", "jeanluc@example.com", identity, Profile{}),
		},
		{
			name:    "zero value",
			req:     NewAccount{},
			wantErr: ErrNewAccountHandle,
		},
		{
			name:    "credential without hash",
			req:     NewCredentialAccount("jeanluc", "jeanluc@example.com", ""),
			wantErr: ErrNewAccountIdentity,
		},
		{
			name:    "federated without subject",
			req:     NewFederatedAccount("jeanluc", "jeanluc@example.com", FederatedIdentity{Provider: ProviderGoogle}, Profile{}),
			wantErr: ErrNewAccountIdentity,
		},
		{
			name:    "missing email",
			req:     NewCredentialAccount("jeanluc", "", "hash"),
			wantErr: ErrNewAccountHandle,
		},
		{
			name:    "username too short",
			req:     NewCredentialAccount("jl", "jeanluc@example.com", "hash"),
			wantErr: ErrUsernameLength,
		},
		{
			name:    "username too long",
			req:     NewCredentialAccount(strings.Repeat("j", UsernameMaxLength+1), "jeanluc@example.com", "hash"),
			wantErr: ErrUsernameLength,
		},
		{
			name: "username at the bounds counts characters",
			req:  NewCredentialAccount(strings.Repeat("é", UsernameMaxLength), "jeanluc@example.com", "hash"),
		},
		{
			name:    "no kind",
			req:     NewAccount{username: "jeanluc", email: "jeanluc@example.com", passwordHash: "hash"},
			wantErr: ErrNewAccountKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAccount_Account(t *testing.T) {
	t.Run("credential carries hash only", func(t *testing.T) {
		account := NewCredentialAccount("jeanluc", "jeanluc@example.com", "hash").Account()

		require.NotNil(t, account.PasswordHash)
		assert.Equal(t, "hash", *account.PasswordHash)
		assert.Nil(t, account.Provider)
		assert.Nil(t, account.ProviderSubjectID)
	})

	t.Run("federated carries identity and profile", func(t *testing.T) {
		req := NewFederatedAccount("jeanluc", "jeanluc@gmail.com",
			FederatedIdentity{Provider: ProviderGoogle, ProviderSubjectID: "g-123"},
			Profile{FirstName: "Jean-Luc", PictureURL: "https://example.com/p.png"})

		account := req.Account()

		assert.Nil(t, account.PasswordHash)
		assert.False(t, account.HasPassword())
		assert.True(t, account.IsLinkedTo(ProviderGoogle, "g-123"))
		require.NotNil(t, account.FirstName)
		assert.Equal(t, "Jean-Luc", *account.FirstName)
		assert.Nil(t, account.LastName)
		require.NotNil(t, account.ProfilePictureURL)
		assert.Equal(t, AccountKindFederated, req.Kind())
	})
}

func TestAccountKind_String(t *testing.T) {
	assert.Equal(t, "credential", AccountKindCredential.String())
	assert.Equal(t, "federated", AccountKindFederated.String())
	assert.Equal(t, "unknown", AccountKind(0).String())
}
