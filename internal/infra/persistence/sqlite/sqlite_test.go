package sqlite

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/telemetry"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func testMetrics() *telemetry.StoreMetrics {
	return telemetry.NewStoreMetrics("sqlite", tracenoop.NewTracerProvider().Tracer("test"), metricnoop.NewMeterProvider().Meter("test"))
}

func TestOpen_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, migrate(context.Background(), db))
}

func TestPostRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t), testMetrics())
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	id, err := repo.Create(ctx, &entity.Post{
		Title: "Hello", Content: "World", Author: "Ada Lovelace", AuthorID: "u1",
		Category: entity.CategoryTech, CreatedAt: created,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	post, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "Ada Lovelace", post.Author)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, entity.CategoryTech, post.Category)
	assert.True(t, created.Equal(post.CreatedAt))
	assert.Nil(t, post.UpdatedAt)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func seedPosts(t *testing.T, repo repository.PostRepository) []string {
	t.Helper()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	seeds := []*entity.Post{
		{Title: "a", Content: "c", Author: "Ada", AuthorID: "u1", Category: entity.CategoryTech, CreatedAt: base},
		{Title: "b", Content: "c", Author: "Ada", AuthorID: "u1", Category: entity.CategoryHealth, CreatedAt: base.Add(time.Hour)},
		{Title: "c", Content: "c", Author: "Grace", AuthorID: "u2", Category: entity.CategoryTech, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "d", Content: "c", Author: "Grace", AuthorID: "u2", Category: entity.CategoryTech, CreatedAt: base.Add(3 * time.Hour)},
	}

	ids := make([]string, 0, len(seeds))
	for _, post := range seeds {
		id, err := repo.Create(context.Background(), post)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

func titles(posts []*entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, post := range posts {
		out = append(out, post.Title)
	}

	return out
}

func TestPostRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t), testMetrics())
	seedPosts(t, repo)

	byCategory, err := repo.ListByCategory(ctx, entity.CategoryTech)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "a"}, titles(byCategory))
	for _, post := range byCategory {
		assert.Equal(t, entity.CategoryTech, post.Category)
	}

	byAuthor, err := repo.ListByAuthor(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, titles(byAuthor))

	byAuthorID, err := repo.ListByAuthorID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, titles(byAuthorID))

	recent, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, titles(recent))

	none, err := repo.ListByCategory(ctx, entity.CategoryEducation)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t), testMetrics())
	ids := seedPosts(t, repo)

	title := "renamed"
	image := "https://img.test/x.png"
	updatedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Update(ctx, ids[0], entity.PostPatch{Title: &title, ImageURL: &image}, updatedAt))

	post, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "renamed", post.Title)
	assert.Equal(t, "c", post.Content)
	assert.Equal(t, image, post.ImageURL)
	assert.Equal(t, entity.CategoryTech, post.Category)
	require.NotNil(t, post.UpdatedAt)
	assert.True(t, updatedAt.Equal(*post.UpdatedAt))

	assert.ErrorIs(t, repo.Update(ctx, "missing", entity.PostPatch{Title: &title}, updatedAt), repository.ErrPostNotFound)

	require.NoError(t, repo.Delete(ctx, ids[0]))
	assert.ErrorIs(t, repo.Delete(ctx, ids[0]), repository.ErrPostNotFound)

	_, err = repo.FindByID(ctx, ids[0])
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_CountByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t), testMetrics())
	seedPosts(t, repo)

	counts, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entity.Category]int{entity.CategoryTech: 3, entity.CategoryHealth: 1}, counts)
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(setupTestDB(t), testMetrics())
	profile := &entity.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@inkwell.test",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	_, err := repo.FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	require.NoError(t, repo.Create(ctx, profile))
	assert.ErrorIs(t, repo.Create(ctx, profile), repository.ErrDuplicate)

	profile.FirstName = "Augusta"
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
	assert.Equal(t, "Augusta Lovelace", got.DisplayName())

	assert.ErrorIs(t, repo.Update(ctx, &entity.Profile{UserID: "ghost", FirstName: "x"}), repository.ErrProfileNotFound)
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(setupTestDB(t), testMetrics())
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	password := &entity.Credential{UserID: "u1", Provider: entity.ProviderTypePassword, Subject: "ada@inkwell.test", PasswordHash: "h", CreatedAt: created}
	google := &entity.Credential{UserID: "u1", Provider: entity.ProviderTypeGoogle, Subject: "g-1", CreatedAt: created.Add(time.Minute)}

	require.NoError(t, repo.Create(ctx, password))
	require.NoError(t, repo.Create(ctx, google))
	assert.ErrorIs(t, repo.Create(ctx, password), repository.ErrDuplicate)

	found, err := repo.FindBySubject(ctx, entity.ProviderTypePassword, "ada@inkwell.test")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)
	assert.Equal(t, "h", found.PasswordHash)

	_, err = repo.FindBySubject(ctx, entity.ProviderTypeGoogle, "ada@inkwell.test")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	revokedAt := created.Add(time.Hour)
	require.NoError(t, repo.RevokeTokens(ctx, "u1", revokedAt))

	all, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, credential := range all {
		assert.True(t, revokedAt.Equal(credential.TokensValidAfter))
	}

	none, err := repo.ListByUserID(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}
