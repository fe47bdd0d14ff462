package entity

// OAuthAssertion is the set of identity claims received from an OAuth provider during callback.
type OAuthAssertion struct {
	Provider          string // Provider name, e.g. "google".
	ProviderSubjectID string // The provider's 'sub' claim.
	Email             string
	EmailVerified     bool
	FirstName         string // Optional.
	LastName          string // Optional.
	PictureURL        string // Optional.
}

// Identity returns the provider half of the assertion.
func (a *OAuthAssertion) Identity() FederatedIdentity {
	return FederatedIdentity{
		Provider:          a.Provider,
		ProviderSubjectID: a.ProviderSubjectID,
	}
}

// Profile returns the optional display metadata of the assertion.
func (a *OAuthAssertion) Profile() Profile {
	return Profile{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		PictureURL: a.PictureURL,
	}
}
