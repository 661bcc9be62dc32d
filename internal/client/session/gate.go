// Package session is the client half of the session gate: it tracks whether
// the user is signed in, persists the session between runs, and keeps a
// time-boxed copy of the profile document.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// DefaultProfileTTL bounds how long a cached profile is trusted.
	DefaultProfileTTL = 30 * time.Minute

	profileCacheVersion = 1
)

// ErrSignedOut is returned by operations that need a session.
var ErrSignedOut = errors.New("not signed in")

// State is the gate's position.
type State int

const (
	SignedOut State = iota
	SignedIn
)

func (s State) String() string {
	if s == SignedIn {
		return "SignedIn"
	}

	return "SignedOut"
}

// Remote is the part of the API client the gate drives.
type Remote interface {
	SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, error)
	GoogleCallback(ctx context.Context, code, state string) (*entity.AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)
	SignOut(ctx context.Context) error
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (*entity.Profile, error)
	SetToken(token string)
}

// Session is the persisted sign-in.
type Session struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time           `json:"expiresAt"`
	UserID       string              `json:"userId"`
	Email        string              `json:"email"`
	DisplayName  string              `json:"displayName,omitempty"`
	Provider     entity.ProviderType `json:"provider"`
}

type cachedProfile struct {
	Version  int             `json:"version"`
	CachedAt time.Time       `json:"cachedAt"`
	UserID   string          `json:"userId"`
	Profile  *entity.Profile `json:"profile"`
}

// Observer is told about every sign-in and sign-out. session is nil when
// signed out.
type Observer func(state State, session *Session)

// Option configures a Gate.
type Option func(*Gate)

// WithProfileTTL overrides DefaultProfileTTL.
func WithProfileTTL(ttl time.Duration) Option {
	return func(g *Gate) {
		g.ttl = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// WithLogger sets the gate's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// Gate gates owner-scoped operations on a signed-in session.
type Gate struct {
	remote Remote
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu        sync.RWMutex
	state     State
	session   *Session
	observers map[int]Observer
	nextID    int
}

// NewGate creates a signed-out gate. Call Restore to pick up a saved session.
func NewGate(remote Remote, store Store, opts ...Option) *Gate {
	g := &Gate{
		remote:    remote,
		store:     store,
		ttl:       DefaultProfileTTL,
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// State returns the current state.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state
}

// Session returns a copy of the current session, or nil when signed out.
func (g *Gate) Session() *Session {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.session == nil {
		return nil
	}
	s := *g.session

	return &s
}

// Subscribe registers fn for state transitions and returns its cancel func.
func (g *Gate) Subscribe(fn Observer) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.observers[id] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.observers, id)
	}
}

// Restore loads the saved session. An expired token is refreshed when
// possible; otherwise the gate stays signed out.
func (g *Gate) Restore(ctx context.Context) error {
	var saved Session
	ok, err := g.store.Get(keySession, &saved)
	if err != nil {
		return err
	}
	if !ok || saved.Token == "" {
		return nil
	}

	if !saved.ExpiresAt.IsZero() && !g.now().Before(saved.ExpiresAt) {
		if saved.RefreshToken == "" {
			return g.clear()
		}

		auth, err := g.remote.Refresh(ctx, saved.RefreshToken)
		if err != nil {
			g.logger.Warn("Session refresh failed", slog.Any("error", err))

			return g.clear()
		}

		return g.establish(auth)
	}

	g.transition(SignedIn, &saved)

	return nil
}

// SignUp registers an account and signs in.
func (g *Gate) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Profile, error) {
	auth, err := g.remote.SignUp(ctx, input)
	if err != nil {
		return nil, err
	}

	return g.signedIn(ctx, auth)
}

// SignIn signs in with email and password and resolves the profile.
func (g *Gate) SignIn(ctx context.Context, email, password string) (*entity.Profile, error) {
	auth, err := g.remote.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return g.signedIn(ctx, auth)
}

// SignInWithGoogle signs in with a Google ID token.
func (g *Gate) SignInWithGoogle(ctx context.Context, idToken string) (*entity.Profile, error) {
	auth, err := g.remote.SignInWithGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return g.signedIn(ctx, auth)
}

// CompleteGoogle finishes the authorization-code flow.
func (g *Gate) CompleteGoogle(ctx context.Context, code, state string) (*entity.Profile, error) {
	auth, err := g.remote.GoogleCallback(ctx, code, state)
	if err != nil {
		return nil, err
	}

	return g.signedIn(ctx, auth)
}

// SignOut revokes the session remotely when possible and always clears local
// state, including the cached profile.
func (g *Gate) SignOut(ctx context.Context) error {
	if g.State() == SignedOut {
		return nil
	}

	if err := g.remote.SignOut(ctx); err != nil {
		g.logger.Warn("Remote sign-out failed", slog.Any("error", err))
	}

	return g.clear()
}

// Profile resolves the signed-in user's profile: a fresh cache entry first,
// then the server, whose answer is cached.
func (g *Gate) Profile(ctx context.Context) (*entity.Profile, error) {
	current := g.Session()
	if current == nil {
		return nil, errors.WithStack(ErrSignedOut)
	}

	if profile := g.cachedProfile(current.UserID); profile != nil {
		return profile, nil
	}

	profile, err := g.remote.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	g.cacheProfile(current.UserID, profile)

	return profile, nil
}

// UpdateProfile saves the settings form and replaces the cached profile with
// the server's answer.
func (g *Gate) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (*entity.Profile, error) {
	current := g.Session()
	if current == nil {
		return nil, errors.WithStack(ErrSignedOut)
	}

	profile, err := g.remote.UpdateProfile(ctx, patch)
	if err != nil {
		return nil, err
	}
	g.cacheProfile(current.UserID, profile)

	return profile, nil
}

func (g *Gate) signedIn(ctx context.Context, auth *entity.AuthSession) (*entity.Profile, error) {
	if err := g.establish(auth); err != nil {
		return nil, err
	}
	if auth.Profile != nil {
		g.cacheProfile(auth.Identity.UserID, auth.Profile)

		return auth.Profile, nil
	}

	return g.Profile(ctx)
}

func (g *Gate) establish(auth *entity.AuthSession) error {
	if auth == nil || auth.Token == "" {
		return errors.New("sign-in returned no token")
	}

	s := &Session{
		Token:        auth.Token,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    auth.ExpiresAt,
		UserID:       auth.Identity.UserID,
		Email:        auth.Identity.Email,
		DisplayName:  auth.Identity.DisplayName,
		Provider:     auth.Identity.Provider,
	}
	if err := g.store.Set(keySession, s); err != nil {
		return err
	}

	g.transition(SignedIn, s)

	return nil
}

func (g *Gate) clear() error {
	sessionErr := g.store.Delete(keySession)
	cacheErr := g.store.Delete(keyUserData)

	g.transition(SignedOut, nil)

	if sessionErr != nil {
		return sessionErr
	}

	return cacheErr
}

func (g *Gate) transition(state State, s *Session) {
	g.mu.Lock()
	g.state = state
	g.session = s
	observers := make([]Observer, 0, len(g.observers))
	for _, fn := range g.observers {
		observers = append(observers, fn)
	}
	g.mu.Unlock()

	token := ""
	if s != nil {
		token = s.Token
	}
	g.remote.SetToken(token)

	for _, fn := range observers {
		var snapshot *Session
		if s != nil {
			copied := *s
			snapshot = &copied
		}
		fn(state, snapshot)
	}
}

// cachedProfile returns the cached profile if it belongs to userID, was
// written by this version and is younger than the TTL.
func (g *Gate) cachedProfile(userID string) *entity.Profile {
	var entry cachedProfile
	ok, err := g.store.Get(keyUserData, &entry)
	if err != nil {
		g.logger.Warn("Ignoring unreadable profile cache", slog.Any("error", err))

		return nil
	}
	if !ok || entry.Profile == nil {
		return nil
	}

	switch {
	case entry.Version != profileCacheVersion,
		entry.UserID != userID,
		g.now().Sub(entry.CachedAt) >= g.ttl:
		return nil
	}

	return entry.Profile
}

func (g *Gate) cacheProfile(userID string, profile *entity.Profile) {
	entry := cachedProfile{
		Version:  profileCacheVersion,
		CachedAt: g.now(),
		UserID:   userID,
		Profile:  profile,
	}
	if err := g.store.Set(keyUserData, entry); err != nil {
		g.logger.Warn("Failed to cache profile", slog.Any("error", err))
	}
}
