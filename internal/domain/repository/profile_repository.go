package repository

import (
	"context"

	"inkwell/internal/domain/entity"
)

// ProfileRepository persists the users/{uid} profile documents.
type ProfileRepository interface {
	// FindByUserID returns ErrProfileNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)

	// Create returns ErrDuplicate when a profile already exists for the user.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update overwrites the name and email fields. Returns ErrProfileNotFound when absent.
	Update(ctx context.Context, profile *entity.Profile) error
}
