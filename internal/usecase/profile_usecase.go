package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// ProfileUsecase backs the settings page.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch entity.ProfilePatch) (*entity.Profile, error)
}
