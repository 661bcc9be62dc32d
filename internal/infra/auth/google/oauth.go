package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"inkwell/config"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const stateTTL = 10 * time.Minute

// OAuthService handles the Google authorization-code flow.
type OAuthService struct {
	config *oauth2.Config

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
	now        func() time.Time
}

// NewOAuthService creates a new Google OAuth service. It returns nil when no
// client is configured so the dependency can be omitted.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil
	}

	return newOAuthService(cfg.GoogleOAuth, googleoauth.Endpoint)
}

func newOAuthService(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint) *OAuthService {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "email", "profile"}
	}

	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		stateStore: make(map[string]time.Time),
		now:        time.Now,
	}
}

// AuthCodeURL returns the consent URL with a fresh single-use state.
func (s *OAuthService) AuthCodeURL() (string, string) {
	state := generateState()
	s.storeState(state)

	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline), state
}

// Exchange validates state, redeems the code and returns the ID token issued with it.
func (s *OAuthService) Exchange(ctx context.Context, code, state string) (string, error) {
	if !s.consumeState(state) {
		return "", errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("code exchange failed"))
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("token response has no id_token"))
	}

	return idToken, nil
}

// generateState generates a cryptographically secure random state string
func generateState() string {
	bytes := make([]byte, 32)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	now := s.now()
	for key, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, key)
		}
	}
	s.stateStore[state] = now.Add(stateTTL)
}

// consumeState reports whether state was issued and unexpired, and removes it
// so it cannot be replayed.
func (s *OAuthService) consumeState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return !s.now().After(expiry)
}
