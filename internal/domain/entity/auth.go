package entity

import "time"

// ProviderType identifies how an identity was proven.
type ProviderType string

const (
	ProviderTypePassword ProviderType = "password"
	ProviderTypeGoogle   ProviderType = "google.com"
)

// Identity is a verified caller attached to a request.
type Identity struct {
	UserID      string       `json:"userId"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName,omitempty"`
	Provider    ProviderType `json:"provider"`
}

// AuthSession is what a successful sign-in hands back to the client.
type AuthSession struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Identity     Identity  `json:"identity"`
	Profile      *Profile  `json:"profile,omitempty"`
}

// Credential is the self-hosted record backing a sign-in method.
type Credential struct {
	UserID       string       `json:"userId"`
	Provider     ProviderType `json:"provider"`
	Subject      string       `json:"subject"`
	PasswordHash string       `json:"-"`
	// TokensValidAfter revokes every token issued before it.
	TokensValidAfter time.Time `json:"tokensValidAfter"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FederatedClaims are the facts extracted from a verified Google ID token.
type FederatedClaims struct {
	Subject    string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
}
