package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Upload stores a file and returns the file path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file.
	Delete(ctx context.Context, path string) error

	// GetURL generates a public URL for a stored file.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks whether a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
