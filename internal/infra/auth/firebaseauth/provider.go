// Package firebaseauth implements the identity provider on Firebase Authentication.
package firebaseauth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const (
	identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL     = "https://securetoken.googleapis.com/v1/token"
)

// authClient is the part of the Firebase Auth admin client the provider uses.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// ProviderParams holds dependencies for the Firebase identity provider.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Client *auth.Client
	Logger *slog.Logger
}

// Provider signs users in through the Identity Toolkit REST API and verifies
// the resulting Firebase ID tokens with the admin SDK.
type Provider struct {
	client     authClient
	apiKey     string
	baseURL    string
	httpClient *http.Client
	refresher  *oauth2.Config
	logger     *slog.Logger

	isEmailTaken func(error) bool
}

// NewProvider is the constructor for the Firebase identity provider.
func NewProvider(params ProviderParams) (service.IdentityProvider, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.APIKey == "" {
		return nil, errors.New("firebase.apiKey is required for the firebase auth provider")
	}

	return newProvider(params.Client, params.Config.Firebase.APIKey, identityToolkitURL, secureTokenURL, params.Logger), nil
}

func newProvider(client authClient, apiKey, baseURL, tokenURL string, logger *slog.Logger) *Provider {
	return &Provider{
		client:     client,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		refresher: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL + "?key=" + url.QueryEscape(apiKey),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		logger:       logger,
		isEmailTaken: auth.IsEmailAlreadyExists,
	}
}

// signInResponse is the shared shape of the signInWithPassword and signInWithIdp replies.
type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`

	// Federated sign-in only.
	FederatedID string `json:"federatedId"`
	FullName    string `json:"fullName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Register creates a password user in Firebase Auth.
func (p *Provider) Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	user := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		user = user.DisplayName(displayName)
	}

	record, err := p.client.CreateUser(ctx, user)
	if err != nil {
		if p.isEmailTaken(err) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to create user"))
	}

	p.logger.Info("Created firebase user", slog.String("user_id", record.UID))

	return &entity.Identity{
		UserID:      record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Provider:    entity.ProviderTypePassword,
	}, nil
}

// SignIn exchanges email and password for a Firebase session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	var resp signInResponse
	err := p.call(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return p.session(ctx, resp.IDToken, resp.RefreshToken)
}

// SignInWithGoogle exchanges a Google ID token for a Firebase session.
func (p *Provider) SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, *entity.FederatedClaims, error) {
	var resp signInResponse
	err := p.call(ctx, "accounts:signInWithIdp", map[string]any{
		"postBody":            url.Values{"id_token": {idToken}, "providerId": {string(entity.ProviderTypeGoogle)}}.Encode(),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}, &resp)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("google rejected the id token"))
		}

		return nil, nil, err
	}

	session, err := p.session(ctx, resp.IDToken, resp.RefreshToken)
	if err != nil {
		return nil, nil, err
	}

	name := resp.FullName
	if name == "" {
		name = resp.DisplayName
	}

	return session, &entity.FederatedClaims{
		Subject:    resp.FederatedID,
		Email:      resp.Email,
		Name:       name,
		GivenName:  resp.FirstName,
		FamilyName: resp.LastName,
	}, nil
}

// Refresh redeems a Firebase refresh token at the secure token endpoint.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.refresher.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil && retrieveErr.Response.StatusCode < http.StatusInternalServerError {
			return nil, errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("refresh token is invalid or expired"))
		}

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to refresh session"))
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return nil, errors.WithStack(domainerrors.NewBackendError(errors.New("no id_token in refresh response"), "failed to refresh session"))
	}

	return p.session(ctx, idToken, token.RefreshToken)
}

// Verify checks a Firebase ID token, including revocation.
func (p *Provider) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if auth.IsIDTokenRevoked(err) || auth.IsUserDisabled(err) {
			return nil, errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("session has been revoked"))
		}

		return nil, errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("token is invalid or expired"))
	}

	return identityFromToken(token), nil
}

// Revoke invalidates every refresh token of the user.
func (p *Provider) Revoke(ctx context.Context, userID string) error {
	if err := p.client.RevokeRefreshTokens(ctx, userID); err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "failed to revoke tokens"))
	}

	return nil
}

func (p *Provider) session(ctx context.Context, idToken, refreshToken string) (*entity.AuthSession, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewBackendError(err, "identity toolkit returned an unverifiable token"))
	}

	return &entity.AuthSession{
		Token:        idToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Unix(token.Expires, 0).UTC(),
		Identity:     *identityFromToken(token),
	}, nil
}

func identityFromToken(token *auth.Token) *entity.Identity {
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	provider := entity.ProviderTypePassword
	if token.Firebase.SignInProvider == string(entity.ProviderTypeGoogle) {
		provider = entity.ProviderTypeGoogle
	}

	return &entity.Identity{
		UserID:      token.UID,
		Email:       email,
		DisplayName: name,
		Provider:    provider,
	}
}

// call posts a JSON body to an Identity Toolkit method and decodes the reply.
func (p *Provider) call(ctx context.Context, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}

	endpoint := p.baseURL + "/" + method + "?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "identity toolkit is unreachable"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "failed to read identity toolkit response"))
	}

	if resp.StatusCode != http.StatusOK {
		return p.mapAPIError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "failed to decode identity toolkit response"))
	}

	return nil
}

// mapAPIError turns Identity Toolkit error codes into domain errors. Codes may
// carry a suffix, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
func (p *Provider) mapAPIError(status int, raw []byte) error {
	var apiErr apiError
	_ = json.Unmarshal(raw, &apiErr)
	code, _, _ := strings.Cut(apiErr.Error.Message, " ")

	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL",
		"USER_DISABLED", "INVALID_IDP_RESPONSE":
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	case "EMAIL_EXISTS":
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	p.logger.Warn("Identity toolkit call failed",
		slog.Int("status", status),
		slog.String("code", apiErr.Error.Message),
	)

	return errors.WithStack(domainerrors.NewBackendError(
		errors.Errorf("identity toolkit returned %d: %s", status, apiErr.Error.Message),
		"sign-in service failed",
	))
}
