package impl

import (
	"context"
	"log/slog"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(postRepo repository.PostRepository, logger *slog.Logger) usecase.AnalyticsUsecase {
	return &analyticsService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CategoryCounts returns one entry per category in display order, zero-filled.
func (srv *analyticsService) CategoryCounts(ctx context.Context) ([]entity.CategoryCount, error) {
	counts, err := srv.postRepo.CountByCategory(ctx)
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewBackendError(err, "count posts by category"))
	}

	return fillCategories(counts), nil
}

// AuthorStats summarizes the posts a user created.
func (srv *analyticsService) AuthorStats(ctx context.Context, userID string) (*entity.AuthorStats, error) {
	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	posts, err := srv.postRepo.ListByAuthorID(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewBackendError(err, "list own posts"))
	}

	counts := make(map[entity.Category]int, len(entity.AllCategories()))
	stats := &entity.AuthorStats{TotalPosts: len(posts)}
	for _, post := range posts {
		counts[post.Category]++
		if stats.LastPostedAt == nil || post.CreatedAt.After(*stats.LastPostedAt) {
			createdAt := post.CreatedAt
			stats.LastPostedAt = &createdAt
			stats.LastPostTitle = post.Title
		}
	}
	stats.ByCategory = fillCategories(counts)

	deliverycontext.Logger(ctx, srv.logger).Debug("Computed author stats",
		slog.String("user_id", userID),
		slog.Int("total_posts", stats.TotalPosts),
	)

	return stats, nil
}

func fillCategories(counts map[entity.Category]int) []entity.CategoryCount {
	categories := entity.AllCategories()
	result := make([]entity.CategoryCount, 0, len(categories))
	for _, c := range categories {
		result = append(result, entity.CategoryCount{Category: c, Count: counts[c]})
	}

	return result
}
