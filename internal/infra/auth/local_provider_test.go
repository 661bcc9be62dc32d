package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	mockRepo "inkwell/internal/mocks/repository"
	mockSvc "inkwell/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type localProviderMocks struct {
	credentials *mockRepo.MockCredentialRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	federated   *mockSvc.MockFederatedVerifier
}

func newLocalProviderForTest(t *testing.T) (*localProvider, *localProviderMocks) {
	m := &localProviderMocks{
		credentials: mockRepo.NewMockCredentialRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
		federated:   mockSvc.NewMockFederatedVerifier(t),
	}

	provider := NewLocalProvider(LocalProviderParams{
		Credentials: m.credentials,
		Hasher:      m.hasher,
		Tokens:      m.tokens,
		Federated:   m.federated,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*localProvider)

	return provider, m
}

func TestLocalProvider_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a lowercased password credential", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.credentials.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Subject == "ada@inkwell.test" && c.PasswordHash == "hashed" &&
				c.Provider == entity.ProviderTypePassword && c.UserID != ""
		})).Return(nil)

		identity, err := provider.Register(ctx, " Ada@Inkwell.test ", "secret1", "Ada Lovelace")
		require.NoError(t, err)
		assert.Equal(t, "ada@inkwell.test", identity.Email)
		assert.Equal(t, "Ada Lovelace", identity.DisplayName)
		assert.NotEmpty(t, identity.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.credentials.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := provider.Register(ctx, "ada@inkwell.test", "secret1", "Ada")
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("store failure", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.credentials.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := provider.Register(ctx, "ada@inkwell.test", "secret1", "Ada")
		assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	})
}

func TestLocalProvider_SignIn(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(15 * time.Minute)
	credential := &entity.Credential{UserID: "u1", Provider: entity.ProviderTypePassword, Subject: "ada@inkwell.test", PasswordHash: "hashed"}

	t.Run("issues a session", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypePassword, "ada@inkwell.test").Return(credential, nil)
		m.hasher.EXPECT().Matches("hashed", "secret1").Return(true)
		m.tokens.EXPECT().GenerateTokens(mock.MatchedBy(func(i *entity.Identity) bool { return i.UserID == "u1" })).
			Return("access", "refresh", expiresAt, nil)

		session, err := provider.SignIn(ctx, "ADA@inkwell.test", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "access", session.Token)
		assert.Equal(t, "refresh", session.RefreshToken)
		assert.Equal(t, expiresAt, session.ExpiresAt)
		assert.Equal(t, "u1", session.Identity.UserID)
	})

	t.Run("unknown email", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypePassword, "ghost@inkwell.test").Return(nil, repository.ErrCredentialNotFound)

		_, err := provider.SignIn(ctx, "ghost@inkwell.test", "secret1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypePassword, "ada@inkwell.test").Return(credential, nil)
		m.hasher.EXPECT().Matches("hashed", "nope").Return(false)

		_, err := provider.SignIn(ctx, "ada@inkwell.test", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestLocalProvider_SignInWithGoogle(t *testing.T) {
	ctx := context.Background()
	claims := &entity.FederatedClaims{Subject: "g-1", Email: "Ada@inkwell.test", Name: "Ada Lovelace", GivenName: "Ada", FamilyName: "Lovelace"}

	t.Run("existing google credential", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.federated.EXPECT().Verify(ctx, "id-token").Return(claims, nil)
		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypeGoogle, "g-1").
			Return(&entity.Credential{UserID: "u1", Provider: entity.ProviderTypeGoogle, Subject: "g-1"}, nil)
		m.tokens.EXPECT().GenerateTokens(mock.Anything).Return("access", "refresh", time.Now(), nil)

		session, got, err := provider.SignInWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "u1", session.Identity.UserID)
		assert.Equal(t, entity.ProviderTypeGoogle, session.Identity.Provider)
		assert.Equal(t, "ada@inkwell.test", session.Identity.Email)
		assert.Equal(t, claims, got)
	})

	t.Run("links to the password account with the same email", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.federated.EXPECT().Verify(ctx, "id-token").Return(claims, nil)
		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypeGoogle, "g-1").Return(nil, repository.ErrCredentialNotFound)
		m.credentials.EXPECT().FindBySubject(ctx, entity.ProviderTypePassword, "ada@inkwell.test").
			Return(&entity.Credential{UserID: "u-pw"}, nil)
		m.credentials.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.UserID == "u-pw" && c.Provider == entity.ProviderTypeGoogle && c.Subject == "g-1"
		})).Return(nil)
		m.tokens.EXPECT().GenerateTokens(mock.Anything).Return("access", "refresh", time.Now(), nil)

		session, _, err := provider.SignInWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "u-pw", session.Identity.UserID)
	})

	t.Run("rejected token", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.federated.EXPECT().Verify(ctx, "bad").Return(nil, errors.New("signature mismatch"))

		_, _, err := provider.SignInWithGoogle(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})

	t.Run("not configured", func(t *testing.T) {
		provider, _ := newLocalProviderForTest(t)
		provider.federated = nil

		_, _, err := provider.SignInWithGoogle(ctx, "id-token")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})
}

func TestLocalProvider_VerifyAndRevoke(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	claims := &service.TokenClaims{UserID: "u1", Email: "ada@inkwell.test", Provider: entity.ProviderTypePassword, IssuedAt: issuedAt}

	t.Run("valid token", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		m.credentials.EXPECT().ListByUserID(ctx, "u1").
			Return([]*entity.Credential{{UserID: "u1", TokensValidAfter: issuedAt.Add(-time.Hour)}}, nil)

		identity, err := provider.Verify(ctx, "access")
		require.NoError(t, err)
		assert.Equal(t, "u1", identity.UserID)
	})

	t.Run("token issued in the revocation second stays valid", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		m.credentials.EXPECT().ListByUserID(ctx, "u1").
			Return([]*entity.Credential{{UserID: "u1", TokensValidAfter: issuedAt.Add(400 * time.Millisecond)}}, nil)

		_, err := provider.Verify(ctx, "access")
		assert.NoError(t, err)
	})

	t.Run("revoked token", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		m.credentials.EXPECT().ListByUserID(ctx, "u1").
			Return([]*entity.Credential{{UserID: "u1", TokensValidAfter: issuedAt.Add(time.Minute)}}, nil)

		_, err := provider.Verify(ctx, "access")
		assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	})

	t.Run("deleted account", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		m.credentials.EXPECT().ListByUserID(ctx, "u1").Return(nil, nil)

		_, err := provider.Verify(ctx, "access")
		assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	})

	t.Run("malformed token", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)

		m.tokens.EXPECT().ValidateAccessToken("junk").Return(nil, errors.New("invalid token"))

		_, err := provider.Verify(ctx, "junk")
		assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	})

	t.Run("revoke moves the watermark", func(t *testing.T) {
		provider, m := newLocalProviderForTest(t)
		now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		provider.now = func() time.Time { return now }

		m.credentials.EXPECT().RevokeTokens(ctx, "u1", now).Return(nil)

		assert.NoError(t, provider.Revoke(ctx, "u1"))
	})
}

func TestLocalProvider_Refresh(t *testing.T) {
	ctx := context.Background()
	claims := &service.TokenClaims{UserID: "u1", Email: "ada@inkwell.test", Provider: entity.ProviderTypePassword, IssuedAt: time.Now()}

	provider, m := newLocalProviderForTest(t)

	m.tokens.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
	m.credentials.EXPECT().ListByUserID(ctx, "u1").Return([]*entity.Credential{{UserID: "u1"}}, nil)
	m.tokens.EXPECT().GenerateTokens(mock.Anything).Return("access-2", "refresh-2", time.Now(), nil)

	session, err := provider.Refresh(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "access-2", session.Token)
	assert.Equal(t, "refresh-2", session.RefreshToken)
}
