package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocalProviderParams holds dependencies for the self-hosted identity provider.
type LocalProviderParams struct {
	fx.In

	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Federated   service.FederatedVerifier `optional:"true"`
	Logger      *slog.Logger
}

// localProvider keeps credentials in the application store and issues its own JWTs.
type localProvider struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	federated   service.FederatedVerifier
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocalProvider is the constructor for the self-hosted identity provider.
func NewLocalProvider(params LocalProviderParams) service.IdentityProvider {
	return &localProvider{
		credentials: params.Credentials,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		federated:   params.Federated,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Register creates a password credential under a fresh user id.
func (p *localProvider) Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	email = normalizeEmail(email)

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	credential := &entity.Credential{
		UserID:       uuid.NewString(),
		Provider:     entity.ProviderTypePassword,
		Subject:      email,
		PasswordHash: hash,
		CreatedAt:    p.now().UTC(),
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to store credential"))
	}

	p.logger.Info("Registered password credential", slog.String("user_id", credential.UserID))

	return &entity.Identity{
		UserID:      credential.UserID,
		Email:       email,
		DisplayName: displayName,
		Provider:    entity.ProviderTypePassword,
	}, nil
}

// SignIn checks the password against the stored hash.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	email = normalizeEmail(email)

	credential, err := p.credentials.FindBySubject(ctx, entity.ProviderTypePassword, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to look up credential"))
	}

	if !p.hasher.Matches(credential.PasswordHash, password) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return p.issue(&entity.Identity{
		UserID:   credential.UserID,
		Email:    email,
		Provider: entity.ProviderTypePassword,
	})
}

// SignInWithGoogle verifies the ID token and finds or creates the matching credential.
func (p *localProvider) SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, *entity.FederatedClaims, error) {
	if p.federated == nil {
		return nil, nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("google sign-in is not configured"))
	}

	claims, err := p.federated.Verify(ctx, idToken)
	if err != nil {
		return nil, nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails(err.Error()))
	}

	credential, err := p.credentials.FindBySubject(ctx, entity.ProviderTypeGoogle, claims.Subject)
	switch {
	case errors.Is(err, repository.ErrCredentialNotFound):
		credential, err = p.linkGoogle(ctx, claims)
		if err != nil {
			return nil, nil, err
		}
	case err != nil:
		return nil, nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to look up credential"))
	}

	session, err := p.issue(&entity.Identity{
		UserID:      credential.UserID,
		Email:       normalizeEmail(claims.Email),
		DisplayName: claims.Name,
		Provider:    entity.ProviderTypeGoogle,
	})
	if err != nil {
		return nil, nil, err
	}

	return session, claims, nil
}

// linkGoogle attaches a google credential to the password account with the same
// email, or to a new user id when there is none.
func (p *localProvider) linkGoogle(ctx context.Context, claims *entity.FederatedClaims) (*entity.Credential, error) {
	userID := uuid.NewString()
	if claims.Email != "" {
		existing, err := p.credentials.FindBySubject(ctx, entity.ProviderTypePassword, normalizeEmail(claims.Email))
		switch {
		case err == nil:
			userID = existing.UserID
		case !errors.Is(err, repository.ErrCredentialNotFound):
			return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to look up credential"))
		}
	}

	credential := &entity.Credential{
		UserID:    userID,
		Provider:  entity.ProviderTypeGoogle,
		Subject:   claims.Subject,
		CreatedAt: p.now().UTC(),
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.WithStack(domainerrors.NewBackendError(err, "failed to store credential"))
		}

		// Lost a race with a concurrent first sign-in.
		return p.credentials.FindBySubject(ctx, entity.ProviderTypeGoogle, claims.Subject)
	}

	p.logger.Info("Linked google credential", slog.String("user_id", userID))

	return credential, nil
}

// Refresh exchanges a refresh token for a new session.
func (p *localProvider) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	claims, err := p.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("refresh token is invalid or expired"))
	}

	if err := p.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}

	return p.issue(&entity.Identity{UserID: claims.UserID, Email: claims.Email, Provider: claims.Provider})
}

// Verify validates an access token and its revocation watermark.
func (p *localProvider) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("token is invalid or expired"))
	}

	if err := p.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}

	return &entity.Identity{UserID: claims.UserID, Email: claims.Email, Provider: claims.Provider}, nil
}

// Revoke moves the watermark so every token issued so far is rejected.
func (p *localProvider) Revoke(ctx context.Context, userID string) error {
	if err := p.credentials.RevokeTokens(ctx, userID, p.now().UTC()); err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "failed to revoke tokens"))
	}

	return nil
}

// checkRevocation rejects tokens of deleted users and tokens issued before the
// latest revocation. Token timestamps have second precision.
func (p *localProvider) checkRevocation(ctx context.Context, claims *service.TokenClaims) error {
	credentials, err := p.credentials.ListByUserID(ctx, claims.UserID)
	if err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "failed to load credentials"))
	}
	if len(credentials) == 0 {
		return errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("account no longer exists"))
	}

	for _, credential := range credentials {
		if claims.IssuedAt.Before(credential.TokensValidAfter.Truncate(time.Second)) {
			return errors.WithStack(domainerrors.ErrAuthRequired.WithDetails("session has been revoked"))
		}
	}

	return nil
}

func (p *localProvider) issue(identity *entity.Identity) (*entity.AuthSession, error) {
	accessToken, refreshToken, expiresAt, err := p.tokens.GenerateTokens(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &entity.AuthSession{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Identity:     *identity,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
