package postgres

import (
	"context"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves the profile of a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profileM.ToDomain(), nil
}

// Create inserts the profile row of a new user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if err := repo.db.WithContext(ctx).Create(model.FromProfileDomain(profile)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// Update overwrites the name and email of a profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
