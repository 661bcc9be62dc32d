package service

import (
	"context"

	"inkwell/internal/domain/entity"
)

// IdentityProvider is the external auth collaborator. Implementations return
// domain errors (ErrInvalidCredentials, ErrUserAlreadyExists, ErrAuthRequired)
// for caller mistakes and wrap transport failures as backend errors.
type IdentityProvider interface {
	// Register creates a password identity.
	Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)

	// SignInWithGoogle exchanges a Google ID token for a session and the name claims carried by the token.
	SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, *entity.FederatedClaims, error)

	// Refresh issues a new session from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)

	// Verify checks a bearer token, including revocation.
	Verify(ctx context.Context, token string) (*entity.Identity, error)

	// Revoke invalidates every token issued to the user so far.
	Revoke(ctx context.Context, userID string) error
}

// FederatedVerifier validates third-party ID tokens.
type FederatedVerifier interface {
	Verify(ctx context.Context, idToken string) (*entity.FederatedClaims, error)
}

// OAuthService drives the authorization-code flow of a federated provider.
type OAuthService interface {
	// AuthCodeURL returns the consent URL and the CSRF state bound to it.
	AuthCodeURL() (authURL string, state string)

	// Exchange validates state, redeems code and returns the raw ID token.
	Exchange(ctx context.Context, code, state string) (string, error)
}
