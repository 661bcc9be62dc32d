package firestore

import (
	"testing"
	"time"

	"inkwell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPostDocument_RoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("BST", 6*3600))
	post := &entity.Post{
		ID:        "ignored",
		Title:     "Hello",
		Content:   "Body",
		Author:    "Ada Lovelace",
		AuthorID:  "uid-1",
		Category:  entity.CategoryTech,
		ImageURL:  "https://img/1.png",
		CreatedAt: created,
	}

	got := fromPost(post).toPost("doc-1")

	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.AuthorID, got.AuthorID)
	assert.Equal(t, entity.CategoryTech, got.Category)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.Nil(t, got.UpdatedAt)
}

func TestPostUpdates(t *testing.T) {
	title := "New title"
	image := ""
	at := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	updates := postUpdates(entity.PostPatch{Title: &title, ImageURL: &image}, at)

	paths := make(map[string]any, len(updates))
	for _, u := range updates {
		paths[u.Path] = u.Value
	}
	assert.Equal(t, map[string]any{
		"updatedAt": at,
		"title":     "New title",
		"imageUrl":  "",
	}, paths)
}

func TestCredentialID(t *testing.T) {
	assert.Equal(t, "password_YUBiLmNv", credentialID(entity.ProviderTypePassword, "a@b.co"))
	assert.NotEqual(t,
		credentialID(entity.ProviderTypeGoogle, "x/y"),
		credentialID(entity.ProviderTypeGoogle, "x_y"),
	)
	assert.NotContains(t, credentialID(entity.ProviderTypeGoogle, "a/b/c"), "/")
}
