package repository

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// PostRepository is the store-facing half of the post facade.
// List methods return posts newest first and an empty slice when nothing matches.
type PostRepository interface {
	// FindByID returns ErrPostNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (*entity.Post, error)

	// ListByAuthor filters on the denormalized display name.
	ListByAuthor(ctx context.Context, author string) ([]*entity.Post, error)

	// ListByAuthorID filters on the creator's user id.
	ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Post, error)

	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error)

	// ListRecent returns at most limit posts.
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)

	// Create stores the post and returns the id assigned by the store.
	Create(ctx context.Context, post *entity.Post) (string, error)

	// Update overwrites the patched fields. Returns ErrPostNotFound when the id does not exist.
	Update(ctx context.Context, id string, patch entity.PostPatch, updatedAt time.Time) error

	// Delete removes the post. Returns ErrPostNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error

	// CountByCategory counts posts per category. Categories without posts may be absent.
	CountByCategory(ctx context.Context) (map[entity.Category]int, error)
}
