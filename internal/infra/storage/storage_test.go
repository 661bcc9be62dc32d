package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"inkwell/config"
	"inkwell/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) *BlobStore {
	t.Helper()
	urls, err := newPublicURLs("http://localhost:8080/images/")
	require.NoError(t, err)

	store := newBlobStore(memblob.OpenBucket(nil), urls)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	imageURL, err := store.Put(ctx, "posts/uid-1/a.png", &service.ImageUpload{
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/posts/uid-1/a.png", imageURL)

	key, ok := store.KeyFromURL(imageURL)
	require.True(t, ok)
	assert.Equal(t, "posts/uid-1/a.png", key)

	body, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, "data", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))
	assert.ErrorIs(t, store.Delete(ctx, key), service.ErrImageNotFound)

	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrImageNotFound)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestBlobStore_PutAbortsOnReadFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	_, err := store.Put(ctx, "posts/uid-1/broken.png", &service.ImageUpload{
		ContentType: "image/png",
		Size:        4,
		Body:        io.MultiReader(strings.NewReader("da"), failingReader{}),
	})
	require.Error(t, err)

	_, _, err = store.Open(ctx, "posts/uid-1/broken.png")
	assert.ErrorIs(t, err, service.ErrImageNotFound)
}

func TestPublicURLs_Key(t *testing.T) {
	urls, err := newPublicURLs("https://cdn.example.com/images")
	require.NoError(t, err)

	tests := []struct {
		name   string
		rawURL string
		want   string
		wantOK bool
	}{
		{name: "own url", rawURL: "https://cdn.example.com/images/posts/u/x.jpg", want: "posts/u/x.jpg", wantOK: true},
		{name: "query stripped", rawURL: "https://cdn.example.com/images/posts/u/x.jpg?v=2", want: "posts/u/x.jpg", wantOK: true},
		{name: "external url", rawURL: "https://elsewhere.com/images/x.jpg"},
		{name: "data uri", rawURL: "data:image/png;base64,AAAA"},
		{name: "traversal", rawURL: "https://cdn.example.com/images/../secret"},
		{name: "bare base", rawURL: "https://cdn.example.com/images/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := urls.Key(tt.rawURL)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPublicURLs_RequiresBase(t *testing.T) {
	_, err := newPublicURLs("  ")
	assert.Error(t, err)
}

func TestMapMinioError(t *testing.T) {
	notFound := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
	assert.ErrorIs(t, mapMinioError(notFound, "get"), service.ErrImageNotFound)

	denied := minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}
	err := mapMinioError(denied, "get")
	assert.NotErrorIs(t, err, service.ErrImageNotFound)
	assert.Contains(t, err.Error(), "get")

	assert.NotErrorIs(t, mapMinioError(errors.New("dial tcp"), "get"), service.ErrImageNotFound)
}

func TestNewImageStore(t *testing.T) {
	newParams := func(storage *config.StorageConfig) Params {
		return Params{
			Lifecycle: fxtest.NewLifecycle(t),
			Ctx:       context.Background(),
			Config:    &config.Config{Storage: storage},
			Logger:    slog.Default(),
		}
	}

	store, err := NewImageStore(newParams(nil))
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = NewImageStore(newParams(&config.StorageConfig{
		Provider:      config.StorageProviderBlob,
		BucketURL:     "mem://",
		PublicBaseURL: "http://localhost/images",
	}))
	require.NoError(t, err)
	assert.IsType(t, &BlobStore{}, store)

	_, err = NewImageStore(newParams(&config.StorageConfig{Provider: config.StorageProviderMinio}))
	assert.Error(t, err)

	_, err = NewImageStore(newParams(&config.StorageConfig{Provider: "ftp"}))
	assert.Error(t, err)
}
