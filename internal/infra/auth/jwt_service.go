// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "inkwell"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     15 * time.Minute,
		refreshTTL:    7 * 24 * time.Hour,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates an access and refresh token pair for an identity.
func (s *jwtService) GenerateTokens(identity *entity.Identity) (accessToken, refreshToken string, expiresAt time.Time, err error) {
	now := s.now()
	expiresAt = now.Add(s.accessTTL)

	accessToken, err = s.sign(identity, service.TokenTypeAccess, now, expiresAt, s.accessSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err = s.sign(identity, service.TokenTypeRefresh, now, now.Add(s.refreshTTL), s.refreshSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, expiresAt, nil
}

// ValidateAccessToken parses and validates an access token.
func (s *jwtService) ValidateAccessToken(token string) (*service.TokenClaims, error) {
	return s.validate(token, service.TokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken parses and validates a refresh token.
func (s *jwtService) ValidateRefreshToken(token string) (*service.TokenClaims, error) {
	return s.validate(token, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) sign(identity *entity.Identity, tokenType string, issuedAt, expiresAt time.Time, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"iss":      issuer,
		"sub":      identity.UserID,
		"jti":      uuid.NewString(),
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
		"type":     tokenType,
		"email":    identity.Email,
		"provider": string(identity.Provider),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString, tokenType string, secret []byte) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if got, _ := claims["type"].(string); got != tokenType {
		return nil, errors.Errorf("unexpected token type %q", got)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("token has no subject")
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return nil, errors.New("token has no issue time")
	}
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, errors.New("token has no expiry")
	}

	email, _ := claims["email"].(string)
	provider, _ := claims["provider"].(string)

	return &service.TokenClaims{
		UserID:    subject,
		Email:     email,
		Provider:  entity.ProviderType(provider),
		Type:      tokenType,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}
