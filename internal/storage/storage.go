package storage

import (
	"context"
	"io"
)

// ObjectStorage abstracts the bucket operations the upload pipeline needs.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket, key string) error
}
