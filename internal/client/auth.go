package client

import (
	"context"
	"net/http"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"
)

// SignUp registers a password account and returns its first session.
func (c *Client) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.AuthSession, error) {
	var session entity.AuthSession
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/signup", body: input}, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SignIn exchanges an email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	body := map[string]string{"email": email, "password": password}

	var session entity.AuthSession
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: body}, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SignInWithGoogle exchanges a Google ID token for a session.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, error) {
	body := map[string]string{"idToken": idToken}

	var session entity.AuthSession
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/google", body: body}, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// GoogleAuthURL returns the consent page to open in a browser.
func (c *Client) GoogleAuthURL(ctx context.Context) (*usecase.OAuthRedirect, error) {
	var redirect usecase.OAuthRedirect
	if err := c.do(ctx, request{method: http.MethodGet, path: "/oauth/google/login"}, &redirect); err != nil {
		return nil, err
	}

	return &redirect, nil
}

// GoogleCallback completes the authorization-code flow.
func (c *Client) GoogleCallback(ctx context.Context, code, state string) (*entity.AuthSession, error) {
	body := map[string]string{"code": code, "state": state}

	var session entity.AuthSession
	if err := c.do(ctx, request{method: http.MethodPost, path: "/oauth/google/callback", body: body}, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Refresh trades a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	body := map[string]string{"refreshToken": refreshToken}

	var session entity.AuthSession
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/refresh", body: body}, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SignOut revokes the current session's tokens.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/logout", auth: true}, nil)
}

// GetProfile fetches the caller's profile document.
func (c *Client) GetProfile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/profile", auth: true}, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile applies the settings form.
func (c *Client) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (*entity.Profile, error) {
	if patch.IsEmpty() {
		return nil, validationError("nothing to update")
	}

	var profile entity.Profile
	if err := c.do(ctx, request{method: http.MethodPut, path: "/api/v1/profile", body: patch, auth: true}, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
