// Package storage keeps uploaded post images in object storage.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"inkwell/config"
	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured provider. It returns nil when storage is
// not configured, which disables uploads.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Image storage not configured, uploads disabled")

		return nil, nil
	}

	switch cfg.Provider {
	case config.StorageProviderBlob:
		store, err := NewBlobStore(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Info("Using blob image storage", slog.String("bucket_url", cfg.BucketURL))

		return store, nil

	case config.StorageProviderMinio:
		store, err := NewMinioStore(cfg.Minio, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using MinIO image storage",
			slog.String("endpoint", cfg.Minio.Endpoint),
			slog.String("bucket", cfg.Minio.Bucket),
		)

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// publicURLs maps object keys to the URLs handed to clients and back.
type publicURLs struct {
	base string
}

func newPublicURLs(base string) (publicURLs, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return publicURLs{}, errors.New("storage.publicBaseUrl is required")
	}
	if _, err := url.Parse(base); err != nil {
		return publicURLs{}, errors.Wrap(err, "invalid storage.publicBaseUrl")
	}

	return publicURLs{base: base}, nil
}

func (p publicURLs) URL(key string) string {
	return p.base + "/" + strings.TrimLeft(key, "/")
}

func (p publicURLs) Key(rawURL string) (string, bool) {
	key, ok := strings.CutPrefix(rawURL, p.base+"/")
	if !ok || key == "" || strings.Contains(key, "..") {
		return "", false
	}
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}

	return key, key != ""
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
