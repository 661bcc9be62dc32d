package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// AnalyticsUsecase computes the dashboard charts and profile cards.
type AnalyticsUsecase interface {
	// CategoryCounts reports every category, including those without posts.
	CategoryCounts(ctx context.Context) ([]entity.CategoryCount, error)
	AuthorStats(ctx context.Context, userID string) (*entity.AuthorStats, error)
}
