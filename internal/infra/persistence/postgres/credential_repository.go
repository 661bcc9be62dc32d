package postgres

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create inserts a credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	if err := repo.db.WithContext(ctx).Create(model.FromCredentialDomain(credential)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create credential")
	}

	return nil
}

// FindBySubject retrieves the credential of a provider subject.
func (repo *credentialRepository) FindBySubject(ctx context.Context, provider entity.ProviderType, subject string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND subject = ?", string(provider), subject).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return credentialM.ToDomain(), nil
}

// ListByUserID retrieves every credential of a user.
func (repo *credentialRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Credential, error) {
	var credentialModels []*model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&credentialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	credentials := make([]*entity.Credential, 0, len(credentialModels))
	for _, credentialM := range credentialModels {
		credentials = append(credentials, credentialM.ToDomain())
	}

	return credentials, nil
}

// RevokeTokens moves the revocation watermark of every credential of a user.
func (repo *credentialRepository) RevokeTokens(ctx context.Context, userID string, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Update("tokens_valid_after", at.UTC()).Error; err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	return nil
}
