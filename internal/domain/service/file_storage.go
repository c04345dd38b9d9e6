package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded images (payment proofs, watering photos, plant
// pictures) and returns a public URL for each.
type FileStorage interface {
	// Upload writes the content under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, content io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
