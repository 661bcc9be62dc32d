// Package dashboard holds the terminal client's screen state: the signed-in
// user's post dashboard and the read-only category browser.
package dashboard

import (
	"context"
	"time"

	"inkwell/internal/client"
	"inkwell/internal/dashboard/crud"
	"inkwell/internal/domain/entity"
)

// PostAPI is the slice of the API client the dashboard needs.
type PostAPI interface {
	ListMine(ctx context.Context) ([]*entity.Post, error)
	CreatePost(ctx context.Context, draft entity.PostDraft) (*entity.Post, error)
	UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// Posts is the owner's dashboard: every post they wrote, with view, edit and
// delete on the selected one.
type Posts struct {
	*crud.Controller[*entity.Post, entity.PostPatch]

	api PostAPI
}

// NewPosts creates a dashboard over api. maxAge bounds how stale the held
// list may get before Load re-fetches; zero disables that.
func NewPosts(api PostAPI, maxAge time.Duration) *Posts {
	backend := crud.Backend[*entity.Post, entity.PostPatch]{
		ID:       postID,
		Snapshot: snapshotPost,
		Apply:    applyPatch,
		List:     api.ListMine,
		Update: func(ctx context.Context, id string, patch entity.PostPatch) error {
			_, err := api.UpdatePost(ctx, id, patch)

			return err
		},
		Delete: api.DeletePost,
		Gone: func(err error) bool {
			return client.KindOf(err) == client.KindNotFound
		},
	}

	return &Posts{
		Controller: crud.New(backend, crud.Options{Capabilities: crud.All, MaxAge: maxAge}),
		api:        api,
	}
}

// Create publishes a new post and adds it to the top of the list.
func (p *Posts) Create(ctx context.Context, draft entity.PostDraft) (*entity.Post, error) {
	return p.Add(ctx, func(ctx context.Context) (*entity.Post, error) {
		return p.api.CreatePost(ctx, draft)
	})
}

// SetTitle edits the draft title.
func (p *Posts) SetTitle(title string) error {
	return p.EditDraft(func(patch *entity.PostPatch) { patch.Title = &title })
}

// SetContent edits the draft content.
func (p *Posts) SetContent(content string) error {
	return p.EditDraft(func(patch *entity.PostPatch) { patch.Content = &content })
}

// SetImageURL edits the draft image.
func (p *Posts) SetImageURL(imageURL string) error {
	return p.EditDraft(func(patch *entity.PostPatch) { patch.ImageURL = &imageURL })
}

// Breakdown counts the held posts per category, every category included.
func (p *Posts) Breakdown() []entity.CategoryCount {
	counts := make(map[entity.Category]int)
	for _, post := range p.Items() {
		counts[post.Category]++
	}

	categories := entity.AllCategories()
	out := make([]entity.CategoryCount, 0, len(categories))
	for _, category := range categories {
		out = append(out, entity.CategoryCount{Category: category, Count: counts[category]})
	}

	return out
}

func postID(post *entity.Post) string {
	return post.ID
}

func snapshotPost(post *entity.Post) entity.PostPatch {
	title, content, imageURL := post.Title, post.Content, post.ImageURL

	return entity.PostPatch{Title: &title, Content: &content, ImageURL: &imageURL}
}

// applyPatch returns a patched copy; held pointers are never mutated in place.
func applyPatch(post *entity.Post, patch entity.PostPatch) *entity.Post {
	patched := *post
	patch.Apply(&patched)

	return &patched
}
