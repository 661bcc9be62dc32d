package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned when the object key does not exist.
var ErrImageNotFound = errors.New("image not found")

// ImageUpload is a single image received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore keeps post images in object storage.
type ImageStore interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key string, upload *ImageUpload) (string, error)

	// Open streams an object back. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a public URL produced by Put back to its key.
	KeyFromURL(url string) (string, bool)
}
