package impl

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	mockRepo "inkwell/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_CategoryCounts_ZeroFilled(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	svc := NewAnalyticsService(postRepo, newDiscardLogger())
	ctx := context.Background()

	postRepo.EXPECT().CountByCategory(ctx).Return(map[entity.Category]int{
		entity.CategoryTech:   4,
		entity.CategoryHealth: 1,
	}, nil)

	counts, err := svc.CategoryCounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entity.CategoryCount{
		{Category: entity.CategoryTech, Count: 4},
		{Category: entity.CategoryLifestyle, Count: 0},
		{Category: entity.CategoryHealth, Count: 1},
		{Category: entity.CategoryEducation, Count: 0},
		{Category: entity.CategoryEntertainment, Count: 0},
	}, counts)
}

func TestAnalyticsService_CategoryCounts_BackendError(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	svc := NewAnalyticsService(postRepo, newDiscardLogger())
	ctx := context.Background()

	postRepo.EXPECT().CountByCategory(ctx).Return(nil, errors.New("unavailable"))

	_, err := svc.CategoryCounts(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestAnalyticsService_AuthorStats(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	svc := NewAnalyticsService(postRepo, newDiscardLogger())
	ctx := context.Background()
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	postRepo.EXPECT().ListByAuthorID(ctx, "u1").Return([]*entity.Post{
		{ID: "p2", Title: "Newer", Category: entity.CategoryTech, CreatedAt: newer},
		{ID: "p1", Title: "Older", Category: entity.CategoryTech, CreatedAt: older},
	}, nil)

	stats, err := svc.AuthorStats(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, "Newer", stats.LastPostTitle)
	require.NotNil(t, stats.LastPostedAt)
	assert.True(t, stats.LastPostedAt.Equal(newer))
	require.Len(t, stats.ByCategory, len(entity.AllCategories()))
	assert.Equal(t, 2, stats.ByCategory[0].Count)
}

func TestAnalyticsService_AuthorStats_NoPosts(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	svc := NewAnalyticsService(postRepo, newDiscardLogger())
	ctx := context.Background()

	postRepo.EXPECT().ListByAuthorID(ctx, "u1").Return([]*entity.Post{}, nil)

	stats, err := svc.AuthorStats(ctx, "u1")

	require.NoError(t, err)
	assert.Zero(t, stats.TotalPosts)
	assert.Nil(t, stats.LastPostedAt)
	assert.Empty(t, stats.LastPostTitle)
}
