package firestore

import (
	"context"
	"os"
	"slices"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the emulator named by FIRESTORE_EMULATOR_HOST.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	client, err := firestore.NewClient(context.Background(), "inkwell-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestPostRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewPostRepository(client, nil)
	ctx := context.Background()
	author := "Emulator " + uuid.NewString()

	before, err := repo.CountByCategory(ctx)
	require.NoError(t, err)

	id, err := repo.Create(ctx, &entity.Post{
		Title:     "First",
		Content:   "Body",
		Author:    author,
		AuthorID:  "uid-e",
		Category:  entity.CategoryHealth,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	after, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, before[entity.CategoryHealth]+1, after[entity.CategoryHealth])
	assert.Equal(t, before[entity.CategoryTech], after[entity.CategoryTech])

	health, err := repo.ListByCategory(ctx, entity.CategoryHealth)
	require.NoError(t, err)
	assert.True(t, slices.ContainsFunc(health, func(p *entity.Post) bool { return p.ID == id }))
	for _, p := range health {
		assert.Equal(t, entity.CategoryHealth, p.Category)
	}

	title := "Renamed"
	require.NoError(t, repo.Update(ctx, id, entity.PostPatch{Title: &title}, time.Now()))

	post, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", post.Title)
	assert.NotNil(t, post.UpdatedAt)

	posts, err := repo.ListByAuthor(ctx, author)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrPostNotFound)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestProfileAndCredentialRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	profiles := NewProfileRepository(client, nil)
	credentials := NewCredentialRepository(client, nil)
	uid := uuid.NewString()

	profile := &entity.Profile{UserID: uid, FirstName: "Ada", LastName: "L", Email: "ada@example.com", CreatedAt: time.Now()}
	require.NoError(t, profiles.Create(ctx, profile))
	assert.ErrorIs(t, profiles.Create(ctx, profile), repository.ErrDuplicate)

	credential := &entity.Credential{UserID: uid, Provider: entity.ProviderTypePassword, Subject: uid + "@example.com", CreatedAt: time.Now()}
	require.NoError(t, credentials.Create(ctx, credential))
	assert.ErrorIs(t, credentials.Create(ctx, credential), repository.ErrDuplicate)

	at := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, credentials.RevokeTokens(ctx, uid, at))

	found, err := credentials.FindBySubject(ctx, entity.ProviderTypePassword, credential.Subject)
	require.NoError(t, err)
	assert.True(t, at.Equal(found.TokensValidAfter))
}
