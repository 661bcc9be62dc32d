// Package google verifies Google ID tokens and drives the Google OAuth consent flow.
package google

import (
	"context"
	"log/slog"
	"sync"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
)

const issuerURL = "https://accounts.google.com"

// idTokenClaims are the Google-specific claims read from a verified ID token.
type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// Verifier checks Google ID tokens against Google's published keys.
type Verifier struct {
	clientID string
	logger   *slog.Logger

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
	discover func(ctx context.Context) (*oidc.IDTokenVerifier, error)
}

// NewVerifier creates a verifier for tokens issued to the configured client.
// Provider discovery happens on first use and is retried until it succeeds.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.FederatedVerifier {
	v := &Verifier{logger: logger}
	if cfg.GoogleOAuth != nil {
		v.clientID = cfg.GoogleOAuth.ClientID
	}
	v.discover = func(ctx context.Context) (*oidc.IDTokenVerifier, error) {
		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to discover google provider")
		}

		return provider.Verifier(&oidc.Config{ClientID: v.clientID}), nil
	}

	return v
}

// Verify validates signature, issuer, audience and expiry, then extracts the name claims.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*entity.FederatedClaims, error) {
	if v.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	verifier, err := v.idTokenVerifier(ctx)
	if err != nil {
		return nil, err
	}

	token, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid google id token")
	}

	var claims idTokenClaims
	if err := token.Claims(&claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse google id token claims")
	}
	if claims.Email != "" && !claims.EmailVerified {
		return nil, errors.New("google account email is not verified")
	}

	v.logger.Debug("Verified google id token", slog.String("subject", token.Subject))

	return &entity.FederatedClaims{
		Subject:    token.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
	}, nil
}

func (v *Verifier) idTokenVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.verifier != nil {
		return v.verifier, nil
	}

	verifier, err := v.discover(ctx)
	if err != nil {
		return nil, err
	}
	v.verifier = verifier

	return verifier, nil
}
