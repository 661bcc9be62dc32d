package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLen = 6

// authService implements the AuthUsecase interface.
type authService struct {
	provider       service.IdentityProvider
	oauth          service.OAuthService
	profileRepo    repository.ProfileRepository
	validate       *validator.Validate
	minPasswordLen int
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config      *config.Config
	Provider    service.IdentityProvider
	OAuth       service.OAuthService `optional:"true"`
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPasswordLen := defaultMinPasswordLen
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLen > 0 {
		minPasswordLen = params.Config.Auth.MinPasswordLen
	}

	return &authService{
		provider:       params.Provider,
		oauth:          params.OAuth,
		profileRepo:    params.ProfileRepo,
		validate:       validator.New(),
		minPasswordLen: minPasswordLen,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// SignUp registers a password identity, writes its profile document and signs it in.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.AuthSession, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if len([]rune(input.Password)) < srv.minPasswordLen {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLen),
		))
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	identity, err := srv.provider.Register(ctx, input.Email, input.Password, displayName)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	profile := &entity.Profile{
		UserID:    identity.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.profileRepo.Create(ctx, profile); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		srv.log(ctx).Error("Failed to create profile after registration",
			slog.String("user_id", identity.UserID),
			slog.Any("error", err),
		)

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "create profile"))
	}

	session, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in after registration")
	}
	session.Profile = profile

	srv.log(ctx).Debug("Registration completed", slog.String("user_id", identity.UserID))

	return session, nil
}

// SignIn authenticates with email and password.
func (srv *authService) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email and password are required"))
	}

	session, err := srv.provider.SignIn(ctx, email, password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	session.Profile = srv.loadProfile(ctx, session.Identity.UserID)
	srv.log(ctx).Debug("User logged in successfully", slog.String("user_id", session.Identity.UserID))

	return session, nil
}

// SignInWithGoogle signs in with a Google ID token and creates the profile on first use.
func (srv *authService) SignInWithGoogle(ctx context.Context, idToken string) (*entity.AuthSession, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id token is required"))
	}

	session, claims, err := srv.provider.SignInWithGoogle(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "google login failed")
	}

	profile, err := srv.ensureFederatedProfile(ctx, session.Identity, claims)
	if err != nil {
		return nil, err
	}
	session.Profile = profile

	return session, nil
}

// GoogleAuthURL starts the authorization-code flow.
func (srv *authService) GoogleAuthURL(_ context.Context) (*usecase.OAuthRedirect, error) {
	if srv.oauth == nil {
		return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("google sign-in is not configured"))
	}

	authURL, state := srv.oauth.AuthCodeURL()

	return &usecase.OAuthRedirect{URL: authURL, State: state}, nil
}

// GoogleCallback finishes the authorization-code flow.
func (srv *authService) GoogleCallback(ctx context.Context, code, state string) (*entity.AuthSession, error) {
	if srv.oauth == nil {
		return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("google sign-in is not configured"))
	}
	if code == "" || state == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("code and state are required"))
	}

	idToken, err := srv.oauth.Exchange(ctx, code, state)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	return srv.SignInWithGoogle(ctx, idToken)
}

// Refresh issues a new session from a refresh token.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("refresh token is required"))
	}

	session, err := srv.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}
	session.Profile = srv.loadProfile(ctx, session.Identity.UserID)

	return session, nil
}

// SignOut revokes every token issued to the caller.
func (srv *authService) SignOut(ctx context.Context, identity *entity.Identity) error {
	if identity == nil || identity.UserID == "" {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	if err := srv.provider.Revoke(ctx, identity.UserID); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	srv.log(ctx).Info("User signed out", slog.String("user_id", identity.UserID))

	return nil
}

// Authenticate resolves a bearer token.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	identity, err := srv.provider.Verify(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	return identity, nil
}

func (srv *authService) ensureFederatedProfile(ctx context.Context, identity entity.Identity, claims *entity.FederatedClaims) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, identity.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.WithStack(domainerrors.NewBackendError(err, "load profile"))
	}

	profile = &entity.Profile{
		UserID:    identity.UserID,
		Email:     identity.Email,
		CreatedAt: srv.now().UTC(),
	}
	if claims != nil {
		profile.FirstName, profile.LastName = splitName(claims)
		if profile.Email == "" {
			profile.Email = claims.Email
		}
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return srv.loadProfile(ctx, identity.UserID), nil
		}

		return nil, errors.WithStack(domainerrors.NewBackendError(err, "create profile"))
	}

	srv.log(ctx).Info("Created profile on first federated sign-in", slog.String("user_id", identity.UserID))

	return profile, nil
}

// loadProfile returns nil when the profile is missing or cannot be read. Sign-in still succeeds.
func (srv *authService) loadProfile(ctx context.Context, userID string) *entity.Profile {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load profile", slog.String("user_id", userID), slog.Any("error", err))
		}

		return nil
	}

	return profile
}

func splitName(claims *entity.FederatedClaims) (string, string) {
	if claims.GivenName != "" || claims.FamilyName != "" {
		return claims.GivenName, claims.FamilyName
	}

	first, last, _ := strings.Cut(strings.TrimSpace(claims.Name), " ")

	return first, strings.TrimSpace(last)
}
