package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"inkwell/config"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestOAuthService(t *testing.T, tokenHandler http.HandlerFunc) *OAuthService {
	server := httptest.NewServer(tokenHandler)
	t.Cleanup(server.Close)

	return newOAuthService(&config.GoogleOAuthConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURI:  "http://localhost:8080/oauth/google/callback",
	}, oauth2.Endpoint{
		AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL: server.URL + "/token",
	})
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := newTestOAuthService(t, nil)

	authURL, state := svc.AuthCodeURL()
	require.NotEmpty(t, state)
	assert.Len(t, state, 64)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/oauth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, state, query.Get("state"))

	_, other := svc.AuthCodeURL()
	assert.NotEqual(t, state, other)
}

func TestOAuthService_Exchange(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the id token", func(t *testing.T) {
		svc := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "auth-code", r.PostForm.Get("code"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "access",
				"token_type":   "Bearer",
				"expires_in":   3600,
				"id_token":     "raw-id-token",
			})
		})

		_, state := svc.AuthCodeURL()
		idToken, err := svc.Exchange(ctx, "auth-code", state)
		require.NoError(t, err)
		assert.Equal(t, "raw-id-token", idToken)
	})

	t.Run("state is single use", func(t *testing.T) {
		svc := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer","id_token":"raw"}`))
		})

		_, state := svc.AuthCodeURL()
		_, err := svc.Exchange(ctx, "auth-code", state)
		require.NoError(t, err)

		_, err = svc.Exchange(ctx, "auth-code", state)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("unknown state", func(t *testing.T) {
		svc := newTestOAuthService(t, nil)

		_, err := svc.Exchange(ctx, "auth-code", "forged")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("expired state", func(t *testing.T) {
		svc := newTestOAuthService(t, nil)

		_, state := svc.AuthCodeURL()
		svc.now = func() time.Time { return time.Now().Add(stateTTL + time.Minute) }

		_, err := svc.Exchange(ctx, "auth-code", state)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("token endpoint error", func(t *testing.T) {
		svc := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		})

		_, state := svc.AuthCodeURL()
		_, err := svc.Exchange(ctx, "bad-code", state)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})

	t.Run("missing id token", func(t *testing.T) {
		svc := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer"}`))
		})

		_, state := svc.AuthCodeURL()
		_, err := svc.Exchange(ctx, "auth-code", state)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})
}

func TestNewOAuthService_Unconfigured(t *testing.T) {
	assert.Nil(t, NewOAuthService(&config.Config{}))
}
