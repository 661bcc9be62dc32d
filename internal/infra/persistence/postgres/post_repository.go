package postgres

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) posts(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.PostModel{}).Order("created_at DESC").Order("id DESC")
}

// FindByID retrieves a post by its id.
func (repo *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return postM.ToDomain(), nil
}

// ListByAuthor retrieves posts whose display name equals author.
func (repo *postRepository) ListByAuthor(ctx context.Context, author string) ([]*entity.Post, error) {
	return repo.find(repo.posts(ctx).Where("author = ?", author), "failed to list posts by author")
}

// ListByAuthorID retrieves posts created by a user.
func (repo *postRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Post, error) {
	return repo.find(repo.posts(ctx).Where("author_id = ?", authorID), "failed to list posts by author id")
}

// ListByCategory retrieves posts of one category.
func (repo *postRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error) {
	return repo.find(repo.posts(ctx).Where("category = ?", string(category)), "failed to list posts by category")
}

// ListRecent retrieves the newest posts.
func (repo *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	return repo.find(repo.posts(ctx).Limit(limit), "failed to list recent posts")
}

func (repo *postRepository) find(query *gorm.DB, message string) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, message)
	}

	return model.PostsToDomain(postModels), nil
}

// Create inserts a post under a new id.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) (string, error) {
	postM := model.FromPostDomain(post)
	postM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return "", errors.Wrap(err, "failed to create post")
	}

	return postM.ID, nil
}

// Update writes the patched fields of a post.
func (repo *postRepository) Update(ctx context.Context, id string, patch entity.PostPatch, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(model.PatchColumns(patch, updatedAt))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post.
func (repo *postRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// CountByCategory groups posts by category.
func (repo *postRepository) CountByCategory(ctx context.Context) (map[entity.Category]int, error) {
	var rows []model.CategoryCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count posts by category")
	}

	counts := make(map[entity.Category]int, len(rows))
	for _, row := range rows {
		counts[entity.Category(row.Category)] = row.Count
	}

	return counts, nil
}
