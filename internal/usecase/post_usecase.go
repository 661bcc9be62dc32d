// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"
)

// PostUsecase is the post repository facade: filtered reads plus owner-checked writes.
type PostUsecase interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, author string) ([]*entity.Post, error)
	ListMine(ctx context.Context, identity *entity.Identity) ([]*entity.Post, error)

	Get(ctx context.Context, id string) (*entity.Post, error)
	Render(ctx context.Context, id string) (*RenderedPost, error)

	Create(ctx context.Context, identity *entity.Identity, draft *entity.PostDraft) (*entity.Post, error)
	Update(ctx context.Context, identity *entity.Identity, id string, patch entity.PostPatch) (*entity.Post, error)
	Remove(ctx context.Context, identity *entity.Identity, id string) error

	UploadImage(ctx context.Context, identity *entity.Identity, upload *service.ImageUpload) (string, error)
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)
	ShareCode(ctx context.Context, id string) ([]byte, error)
}

// RenderedPost is a post with its content converted to HTML.
type RenderedPost struct {
	*entity.Post
	HTML string `json:"html"`
}
