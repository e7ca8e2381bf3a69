// Package storage provides the blob bucket implementation for durable file uploads.
package storage

import (
	"context"
	"io"
	"strings"

	"medifind/config"
	"medifind/internal/domain/lifecycle"
	"medifind/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local buckets for development
	_ "gocloud.dev/blob/gcsblob"  // GCS buckets for production
)

// blobStorage is a concrete implementation of the FileStorage interface
// backed by a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and returns it as a
// service.FileStorage. The bucket is closed when the context given to
// the returned cleanup function is done.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (service.FileStorage, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open blob bucket")
	}

	store := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}

	return store, bucket.Close, nil
}

// Upload stores the content under the given key and returns a durable URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Close discards the partial write on error.
		_ = writer.Close()

		return "", errors.Wrap(err, "write object")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "commit object")
	}

	return s.publicBaseURL + "/" + key, nil
}
