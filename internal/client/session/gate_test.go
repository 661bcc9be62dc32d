package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	token         string
	profile       *entity.Profile
	profileCalls  int
	signOutCalls  int
	signInSession *entity.AuthSession
	refreshed     *entity.AuthSession
	refreshErr    error
}

func (f *fakeRemote) SignUp(context.Context, usecase.SignUpInput) (*entity.AuthSession, error) {
	return f.signInSession, nil
}

func (f *fakeRemote) SignIn(_ context.Context, email, password string) (*entity.AuthSession, error) {
	if password != "secret" {
		return nil, errors.New("INVALID_CREDENTIALS")
	}

	return f.signInSession, nil
}

func (f *fakeRemote) SignInWithGoogle(context.Context, string) (*entity.AuthSession, error) {
	return f.signInSession, nil
}

func (f *fakeRemote) GoogleCallback(context.Context, string, string) (*entity.AuthSession, error) {
	return f.signInSession, nil
}

func (f *fakeRemote) Refresh(context.Context, string) (*entity.AuthSession, error) {
	return f.refreshed, f.refreshErr
}

func (f *fakeRemote) SignOut(context.Context) error {
	f.signOutCalls++

	return nil
}

func (f *fakeRemote) GetProfile(context.Context) (*entity.Profile, error) {
	f.profileCalls++
	p := *f.profile

	return &p, nil
}

func (f *fakeRemote) UpdateProfile(_ context.Context, patch entity.ProfilePatch) (*entity.Profile, error) {
	patch.Apply(f.profile)
	p := *f.profile

	return &p, nil
}

func (f *fakeRemote) SetToken(token string) {
	f.token = token
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newFixture() (*Gate, *fakeRemote, *MemoryStore, *clock) {
	remote := &fakeRemote{
		profile: &entity.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace"},
		signInSession: &entity.AuthSession{
			Token:        "tok",
			RefreshToken: "ref",
			ExpiresAt:    time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC),
			Identity:     entity.Identity{UserID: "u1", Email: "ada@example.com"},
		},
	}
	store := NewMemoryStore()
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	return NewGate(remote, store, WithClock(clk.Now)), remote, store, clk
}

func TestGate_SignInResolvesAndCachesProfile(t *testing.T) {
	gate, remote, _, _ := newFixture()

	var seen []State
	cancel := gate.Subscribe(func(state State, _ *Session) { seen = append(seen, state) })
	defer cancel()

	profile, err := gate.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, SignedIn, gate.State())
	assert.Equal(t, "tok", remote.token)
	assert.Equal(t, []State{SignedIn}, seen)

	_, err = gate.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, remote.profileCalls, "second lookup should be served from cache")
}

func TestGate_SignInFailureStaysSignedOut(t *testing.T) {
	gate, _, _, _ := newFixture()

	_, err := gate.SignIn(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, SignedOut, gate.State())
	assert.Nil(t, gate.Session())
}

func TestGate_ProfileCacheInvalidation(t *testing.T) {
	tests := []struct {
		name  string
		entry func(now time.Time) cachedProfile
	}{
		{
			name: "expired",
			entry: func(now time.Time) cachedProfile {
				return cachedProfile{Version: profileCacheVersion, CachedAt: now.Add(-DefaultProfileTTL), UserID: "u1"}
			},
		},
		{
			name: "other version",
			entry: func(now time.Time) cachedProfile {
				return cachedProfile{Version: profileCacheVersion + 1, CachedAt: now, UserID: "u1"}
			},
		},
		{
			name: "other user",
			entry: func(now time.Time) cachedProfile {
				return cachedProfile{Version: profileCacheVersion, CachedAt: now, UserID: "someone-else"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, remote, store, clk := newFixture()
			require.NoError(t, store.Set(keySession, Session{Token: "tok", UserID: "u1", ExpiresAt: clk.now.Add(time.Hour)}))
			require.NoError(t, gate.Restore(context.Background()))

			entry := tt.entry(clk.now)
			entry.Profile = &entity.Profile{UserID: entry.UserID, FirstName: "Stale"}
			require.NoError(t, store.Set(keyUserData, entry))

			profile, err := gate.Profile(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "Ada", profile.FirstName)
			assert.Equal(t, 1, remote.profileCalls)
		})
	}
}

func TestGate_FreshCacheIsUsed(t *testing.T) {
	gate, remote, store, clk := newFixture()
	require.NoError(t, store.Set(keySession, Session{Token: "tok", UserID: "u1"}))
	require.NoError(t, gate.Restore(context.Background()))

	require.NoError(t, store.Set(keyUserData, cachedProfile{
		Version:  profileCacheVersion,
		CachedAt: clk.now.Add(-DefaultProfileTTL + time.Minute),
		UserID:   "u1",
		Profile:  &entity.Profile{UserID: "u1", FirstName: "Cached"},
	}))

	profile, err := gate.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cached", profile.FirstName)
	assert.Zero(t, remote.profileCalls)
}

func TestGate_UpdateProfileOverwritesCache(t *testing.T) {
	gate, remote, _, _ := newFixture()
	_, err := gate.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	first := "Augusta"
	updated, err := gate.UpdateProfile(context.Background(), entity.ProfilePatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)

	cached, err := gate.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Augusta", cached.FirstName)
	assert.Equal(t, 1, remote.profileCalls)
}

func TestGate_SignOutClearsEverything(t *testing.T) {
	gate, remote, store, _ := newFixture()
	_, err := gate.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	var last State = SignedIn
	gate.Subscribe(func(state State, s *Session) {
		last = state
		assert.Nil(t, s)
	})

	require.NoError(t, gate.SignOut(context.Background()))
	assert.Equal(t, SignedOut, gate.State())
	assert.Equal(t, SignedOut, last)
	assert.Equal(t, 1, remote.signOutCalls)
	assert.Empty(t, remote.token)

	var entry cachedProfile
	ok, err := store.Get(keyUserData, &entry)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = gate.Profile(context.Background())
	assert.ErrorIs(t, err, ErrSignedOut)
}

func TestGate_RestoreRefreshesExpiredSession(t *testing.T) {
	gate, remote, store, clk := newFixture()
	require.NoError(t, store.Set(keySession, Session{Token: "old", RefreshToken: "ref", UserID: "u1", ExpiresAt: clk.now.Add(-time.Minute)}))
	remote.refreshed = &entity.AuthSession{Token: "new", ExpiresAt: clk.now.Add(time.Hour), Identity: entity.Identity{UserID: "u1"}}

	require.NoError(t, gate.Restore(context.Background()))
	assert.Equal(t, SignedIn, gate.State())
	assert.Equal(t, "new", gate.Session().Token)
	assert.Equal(t, "new", remote.token)
}

func TestGate_RestoreDropsUnrefreshableSession(t *testing.T) {
	gate, remote, store, clk := newFixture()
	require.NoError(t, store.Set(keySession, Session{Token: "old", RefreshToken: "ref", UserID: "u1", ExpiresAt: clk.now.Add(-time.Minute)}))
	remote.refreshErr = errors.New("revoked")

	require.NoError(t, gate.Restore(context.Background()))
	assert.Equal(t, SignedOut, gate.State())

	var saved Session
	ok, err := store.Get(keySession, &saved)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell", "store.json")
	store := NewFileStore(path)

	var missing Session
	ok, err := store.Get(keySession, &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(keySession, Session{Token: "tok", UserID: "u1"}))
	require.NoError(t, store.Set(keyUserData, cachedProfile{Version: 1, UserID: "u1"}))

	reopened := NewFileStore(path)
	var got Session
	ok, err = reopened.Get(keySession, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", got.Token)

	require.NoError(t, reopened.Delete(keySession))
	ok, err = reopened.Get(keySession, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefaultStorePath_UsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}

	path, err := DefaultStorePath()
	require.NoError(t, err)
	if filepath.Dir(filepath.Dir(path)) == dir {
		assert.Equal(t, filepath.Join(dir, "inkwell", "store.json"), path)
	}
}
