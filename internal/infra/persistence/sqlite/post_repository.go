package sqlite

import (
	"context"
	"database/sql"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"
	"inkwell/internal/infra/telemetry"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const postsTable = "posts"

var postColumns = []string{
	"id", "title", "content", "author", "author_id", "category", "image_url", "created_at", "updated_at",
}

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db      *sqlx.DB
	metrics *telemetry.StoreMetrics
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *sqlx.DB, metrics *telemetry.StoreMetrics) repository.PostRepository {
	return &postRepository{db: db, metrics: metrics}
}

func selectPosts() sq.SelectBuilder {
	return sq.Select(postColumns...).From(postsTable).OrderBy("created_at DESC", "id DESC")
}

// FindByID retrieves a post by its id.
func (repo *postRepository) FindByID(ctx context.Context, id string) (post *entity.Post, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.find_by_id")
	defer func() { done(err) }()

	query, args, err := sq.Select(postColumns...).From(postsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var row model.PostModel
	if err := repo.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return row.ToDomain(), nil
}

// ListByAuthor retrieves posts whose display name equals author.
func (repo *postRepository) ListByAuthor(ctx context.Context, author string) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_author", selectPosts().Where(sq.Eq{"author": author}))
}

// ListByAuthorID retrieves posts created by a user.
func (repo *postRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_author_id", selectPosts().Where(sq.Eq{"author_id": authorID}))
}

// ListByCategory retrieves posts of one category.
func (repo *postRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_category", selectPosts().Where(sq.Eq{"category": string(category)}))
}

// ListRecent retrieves the newest posts.
func (repo *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_recent", selectPosts().Limit(uint64(max(limit, 0))))
}

func (repo *postRepository) list(ctx context.Context, operation string, builder sq.SelectBuilder) (posts []*entity.Post, err error) {
	ctx, done := repo.metrics.Observe(ctx, operation)
	defer func() { done(err) }()

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var rows []*model.PostModel
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return model.PostsToDomain(rows), nil
}

// Create inserts a post under a new id.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) (id string, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.create")
	defer func() { done(err) }()

	row := model.FromPostDomain(post)
	row.ID = uuid.NewString()

	query, args, err := sq.Insert(postsTable).
		Columns(postColumns...).
		Values(row.ID, row.Title, row.Content, row.Author, row.AuthorID, row.Category, row.ImageURL, row.CreatedAt, row.UpdatedAt).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "failed to build insert")
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return "", errors.Wrap(err, "failed to create post")
	}

	return row.ID, nil
}

// Update writes the patched fields of a post.
func (repo *postRepository) Update(ctx context.Context, id string, patch entity.PostPatch, updatedAt time.Time) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.update")
	defer func() { done(err) }()

	query, args, err := sq.Update(postsTable).SetMap(model.PatchColumns(patch, updatedAt)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build update")
	}

	return repo.execOne(ctx, query, args, "failed to update post")
}

// Delete removes a post.
func (repo *postRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.delete")
	defer func() { done(err) }()

	query, args, err := sq.Delete(postsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build delete")
	}

	return repo.execOne(ctx, query, args, "failed to delete post")
}

func (repo *postRepository) execOne(ctx context.Context, query string, args []any, message string) error {
	result, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, message)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, message)
	}
	if affected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// CountByCategory groups posts by category.
func (repo *postRepository) CountByCategory(ctx context.Context) (counts map[entity.Category]int, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.count_by_category")
	defer func() { done(err) }()

	query, args, err := sq.Select("category", "COUNT(*) AS count").From(postsTable).GroupBy("category").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var rows []model.CategoryCountRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to count posts by category")
	}

	counts = make(map[entity.Category]int, len(rows))
	for _, row := range rows {
		counts[entity.Category(row.Category)] = row.Count
	}

	return counts, nil
}
