package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for durable binary uploads.
// This abstracts the backing bucket (local disk, GCS, S3) from the use cases.
type FileStorage interface {
	// Upload stores the content under the given key with the declared
	// content type and returns a durable URL for later retrieval.
	Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error)
}
