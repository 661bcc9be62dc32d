package storage

import (
	"context"
	"io"
	"net/http"

	"inkwell/config"
	"inkwell/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const defaultContentType = "application/octet-stream"

// MinioStore implements service.ImageStore on an S3 compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	urls   publicURLs
}

// NewMinioStore connects with static credentials.
func NewMinioStore(cfg config.MinioConfig, publicBaseURL string) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("storage.minio endpoint and bucket are required")
	}
	urls, err := newPublicURLs(publicBaseURL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, urls: urls}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, upload *service.ImageUpload) (string, error) {
	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, upload.Body, upload.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to put object")
	}

	return s.urls.URL(key), nil
}

func (s *MinioStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", mapMinioError(err, "failed to get object")
	}

	// GetObject is lazy; Stat surfaces a missing key.
	info, err := object.Stat()
	if err != nil {
		_ = object.Close()

		return nil, "", mapMinioError(err, "failed to stat object")
	}

	return object, info.ContentType, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return mapMinioError(err, "failed to remove object")
	}

	return nil
}

func (s *MinioStore) KeyFromURL(rawURL string) (string, bool) {
	return s.urls.Key(rawURL)
}

func mapMinioError(err error, message string) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return service.ErrImageNotFound
	}

	return errors.Wrap(err, message)
}
