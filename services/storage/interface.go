// Package storage adapts blob backends behind a narrow interface addressed
// by (store, bucket, name). The image service keeps the bucket directory in
// sync with what actually lands here; this package only moves bytes.
package storage

import (
	"context"
	"io"
	"path"
)

// BlobStore defines the operations the image layer needs from a blob backend.
type BlobStore interface {
	Upload(ctx context.Context, store, bucket, name, contentType string, r io.Reader) error
	Download(ctx context.Context, store, bucket, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, store, bucket, name string) error
	ContentType(ctx context.Context, store, bucket, name string) (string, error)
}

// objectPath flattens a (store, bucket, name) address into the backend's
// object key.
func objectPath(store, bucket, name string) string {
	return path.Join(store, bucket, name)
}
