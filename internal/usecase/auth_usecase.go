package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// AuthUsecase is the server half of the session gate.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, error)
	GoogleAuthURL(ctx context.Context) (*OAuthRedirect, error)
	GoogleCallback(ctx context.Context, code, state string) (*entity.AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)
	SignOut(ctx context.Context, identity *entity.Identity) error

	// Authenticate resolves a bearer token to the caller's identity.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

// --- Input DTOs ---

// SignUpInput is the sign-up form.
type SignUpInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// OAuthRedirect is the consent URL a client should open.
type OAuthRedirect struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
