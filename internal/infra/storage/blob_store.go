package storage

import (
	"context"
	"io"

	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStore implements service.ImageStore on a gocloud bucket.
type BlobStore struct {
	bucket *blob.Bucket
	urls   publicURLs
}

// NewBlobStore opens bucketURL, e.g. gs://bucket or file:///var/lib/inkwell/images.
func NewBlobStore(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStore, error) {
	urls, err := newPublicURLs(publicBaseURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return newBlobStore(bucket, urls), nil
}

func newBlobStore(bucket *blob.Bucket, urls publicURLs) *BlobStore {
	return &BlobStore{bucket: bucket, urls: urls}
}

func (s *BlobStore) Put(ctx context.Context, key string, upload *service.ImageUpload) (string, error) {
	// Cancelling the writer's context before Close aborts the upload.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  upload.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open object writer")
	}

	if _, err := io.Copy(writer, upload.Body); err != nil {
		cancel()
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit object")
	}

	return s.urls.URL(key), nil
}

func (s *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open object")
	}

	return reader, reader.ContentType(), nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrImageNotFound
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}

func (s *BlobStore) KeyFromURL(rawURL string) (string, bool) {
	return s.urls.Key(rawURL)
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
