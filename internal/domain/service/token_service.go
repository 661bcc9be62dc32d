package service

import (
	"time"

	"inkwell/internal/domain/entity"
)

// Token types.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the verified contents of a self-issued token.
type TokenClaims struct {
	UserID    string
	Email     string
	Provider  entity.ProviderType
	Type      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService generates and validates self-issued tokens.
type TokenService interface {
	// GenerateTokens creates an access and refresh token pair for an identity.
	GenerateTokens(identity *entity.Identity) (accessToken, refreshToken string, expiresAt time.Time, err error)

	ValidateAccessToken(token string) (*TokenClaims, error)

	ValidateRefreshToken(token string) (*TokenClaims, error)
}
