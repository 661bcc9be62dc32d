package dashboard

import (
	"context"
	"strconv"
	"sync"

	"inkwell/internal/client"
	"inkwell/internal/dashboard/crud"
	"inkwell/internal/domain/entity"

	"github.com/pkg/errors"
)

// ExcerptRunes is the length of a summary card's excerpt.
const ExcerptRunes = 50

// BrowserStatus is where the browser is in loading a category.
type BrowserStatus int

const (
	Empty BrowserStatus = iota
	Loading
	Loaded
	Failed
)

func (s BrowserStatus) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return "Empty"
	}
}

// Card is the summary shown for each post in a category.
type Card struct {
	ID       string
	Title    string
	Author   string
	Category entity.Category
	Excerpt  string
}

// CategoryAPI lists one category's posts.
type CategoryAPI interface {
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error)
}

// Browser shows one category at a time, read-only.
type Browser struct {
	api CategoryAPI

	mu       sync.RWMutex
	status   BrowserStatus
	category entity.Category
	list     *crud.Controller[*entity.Post, entity.PostPatch]
	errText  string
}

func NewBrowser(api CategoryAPI) *Browser {
	return &Browser{api: api}
}

// Open loads category. Unknown labels fail before any remote call.
func (b *Browser) Open(ctx context.Context, category entity.Category) error {
	if !category.IsValid() {
		err := errors.Errorf("unknown category %s", strconv.Quote(string(category)))
		b.fail(category, nil, err)

		return err
	}

	list := crud.New(crud.Backend[*entity.Post, entity.PostPatch]{
		ID: postID,
		List: func(ctx context.Context) ([]*entity.Post, error) {
			return b.api.ListByCategory(ctx, category)
		},
	}, crud.Options{Capabilities: crud.Read})

	b.mu.Lock()
	b.status = Loading
	b.category = category
	b.list = list
	b.errText = ""
	b.mu.Unlock()

	if err := list.Load(ctx, string(category)); err != nil {
		b.fail(category, list, err)

		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.list == list {
		b.status = Loaded
	}

	return nil
}

func (b *Browser) fail(category entity.Category, list *crud.Controller[*entity.Post, entity.PostPatch], err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.status = Failed
	b.category = category
	b.list = list
	b.errText = err.Error()
}

// Status returns the load status and, when Failed, the error text.
func (b *Browser) Status() (BrowserStatus, string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.status, b.errText
}

// Category returns the category last opened.
func (b *Browser) Category() entity.Category {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.category
}

// Cards returns the summaries of the loaded posts, newest first.
func (b *Browser) Cards() []Card {
	b.mu.RLock()
	list, status := b.list, b.status
	b.mu.RUnlock()

	if list == nil || status != Loaded {
		return nil
	}

	posts := list.Items()
	cards := make([]Card, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, Card{
			ID:       post.ID,
			Title:    post.Title,
			Author:   post.Author,
			Category: post.Category,
			Excerpt:  post.Excerpt(ExcerptRunes),
		})
	}

	return cards
}

// Detail returns the full post with id from the loaded set.
func (b *Browser) Detail(id string) (*entity.Post, error) {
	b.mu.RLock()
	list := b.list
	b.mu.RUnlock()

	if list == nil {
		return nil, errors.WithStack(crud.ErrNotHeld)
	}

	post, ok := list.Find(id)
	if !ok {
		return nil, errors.WithStack(crud.ErrNotHeld)
	}
	copied := *post

	return &copied, nil
}

var _ CategoryAPI = (*client.Client)(nil)
var _ PostAPI = (*client.Client)(nil)
