package repository

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// CredentialRepository backs the self-hosted identity provider.
type CredentialRepository interface {
	// Create returns ErrDuplicate when the provider and subject pair is taken.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindBySubject returns ErrCredentialNotFound when nothing matches.
	FindBySubject(ctx context.Context, provider entity.ProviderType, subject string) (*entity.Credential, error)

	ListByUserID(ctx context.Context, userID string) ([]*entity.Credential, error)

	// RevokeTokens moves the revocation watermark of every credential of the user.
	RevokeTokens(ctx context.Context, userID string, at time.Time) error
}
