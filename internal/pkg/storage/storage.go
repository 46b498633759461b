package storage

import (
	"context"
	"io"
)

// FileStorage persists uploaded images (worker photos, color swatches).
// Reads go through the static /uploads file server, so the interface only
// covers the write side.
type FileStorage interface {
	// Upload stores the file and returns its storage path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for a stored path.
	GetURL(ctx context.Context, path string) (string, error)
}
