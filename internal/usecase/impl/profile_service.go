// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// GetProfile retrieves the profile document of a user.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("user_id", userID))

	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapProfileError(err, "failed to get user profile")
	}

	return profile, nil
}

// UpdateProfile applies the settings form to the profile document.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, patch entity.ProfilePatch) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating user profile", slog.String("user_id", userID))

	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	patch, err := srv.normalize(patch)
	if err != nil {
		return nil, err
	}

	// 1. Find the profile
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapProfileError(err, "failed to find user profile")
	}

	// 2. Apply and save
	patch.Apply(profile)
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, mapProfileError(err, "failed to update user profile")
	}

	return profile, nil
}

func (srv *profileService) normalize(patch entity.ProfilePatch) (entity.ProfilePatch, error) {
	if patch.IsEmpty() {
		return patch, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("nothing to update"))
	}

	trim := func(field string, value *string) (*string, error) {
		if value == nil {
			return nil, nil
		}
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field + " cannot be empty"))
		}

		return &trimmed, nil
	}

	var err error
	if patch.FirstName, err = trim("first name", patch.FirstName); err != nil {
		return patch, err
	}
	if patch.LastName, err = trim("last name", patch.LastName); err != nil {
		return patch, err
	}
	if patch.Email, err = trim("email", patch.Email); err != nil {
		return patch, err
	}
	if patch.Email != nil {
		if vErr := srv.validate.Var(*patch.Email, "email"); vErr != nil {
			return patch, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is not valid"))
		}
	}

	return patch, nil
}

func mapProfileError(err error, message string) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrProfileNotFound, message)
	}

	return errors.WithStack(domainerrors.NewBackendError(err, message))
}
