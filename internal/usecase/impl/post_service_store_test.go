package impl

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/infra/persistence/sqlite"
	mockSvc "inkwell/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// TestPostService_SQLiteLifecycle runs the facade end to end on an in-memory store.
func TestPostService_SQLiteLifecycle(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	postRepo := sqlite.NewPostRepository(db, nil)
	profileRepo := sqlite.NewProfileRepository(db, nil)
	require.NoError(t, profileRepo.Create(ctx, &entity.Profile{
		UserID: "uid-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@inkwell.test", CreatedAt: time.Now().UTC(),
	}))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc, err := NewPostService(PostServiceParams{
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
		PostRepo:    postRepo,
		ProfileRepo: profileRepo,
		Publisher:   publisher,
		QRCode:      mockSvc.NewMockQRCodeService(t),
		Markdown:    mockSvc.NewMockMarkdownRenderer(t),
		Tracer:      tracenoop.NewTracerProvider().Tracer("test"),
		Meter:       metricnoop.NewMeterProvider().Meter("test"),
	})
	require.NoError(t, err)
	svc.(*postService).now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	owner := newIdentity("uid-1")

	created, err := svc.Create(ctx, owner, &entity.PostDraft{
		Title: "Hello", Content: "First words", Category: entity.CategoryTech,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Ada Lovelace", created.Author)

	byCategory, err := svc.ListByCategory(ctx, string(entity.CategoryTech))
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, created.ID, byCategory[0].ID)

	other, err := svc.ListByCategory(ctx, string(entity.CategoryHealth))
	require.NoError(t, err)
	assert.Empty(t, other)

	byAuthor, err := svc.ListByAuthor(ctx, "Ada Lovelace")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)

	_, err = svc.Update(ctx, owner, created.ID, entity.PostPatch{Title: strPtr("Hello again")})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", stored.Title)
	assert.Equal(t, "First words", stored.Content)
	assert.Equal(t, created.Author, stored.Author)
	assert.Equal(t, created.Category, stored.Category)
	assert.True(t, created.CreatedAt.Equal(stored.CreatedAt))

	_, err = svc.Update(ctx, newIdentity("uid-2"), created.ID, entity.PostPatch{Title: strPtr("Hijack")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, svc.Remove(ctx, owner, created.ID))
	assert.ErrorIs(t, svc.Remove(ctx, owner, created.ID), domainerrors.ErrPostNotFound)

	_, err = svc.Create(ctx, owner, &entity.PostDraft{Title: "  ", Content: "No title", Category: entity.CategoryTech})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	remaining, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
