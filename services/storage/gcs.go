package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBlobStore implements BlobStore on a Google Cloud Storage bucket (the
// bucket backing the project's Firebase storage). The logical (store,
// bucket, name) address becomes the object path inside that one GCS bucket.
type GCSBlobStore struct {
	client     *storage.Client
	bucketName string
}

// NewGCSBlobStore creates a BlobStore backed by the named GCS bucket.
func NewGCSBlobStore(ctx context.Context, credentialsFile, bucketName string) (*GCSBlobStore, error) {
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBlobStore{client: client, bucketName: bucketName}, nil
}

func (s *GCSBlobStore) object(store, bucket, name string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucketName).Object(objectPath(store, bucket, name))
}

func (s *GCSBlobStore) Upload(ctx context.Context, store, bucket, name, contentType string, r io.Reader) error {
	w := s.object(store, bucket, name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("gcs: failed to write %s/%s/%s: %w", store, bucket, name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs: failed to finish upload of %s/%s/%s: %w", store, bucket, name, err)
	}
	return nil
}

func (s *GCSBlobStore) Download(ctx context.Context, store, bucket, name string) (io.ReadCloser, error) {
	r, err := s.object(store, bucket, name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs: failed to open %s/%s/%s: %w", store, bucket, name, err)
	}
	return r, nil
}

func (s *GCSBlobStore) Delete(ctx context.Context, store, bucket, name string) error {
	if err := s.object(store, bucket, name).Delete(ctx); err != nil {
		return fmt.Errorf("gcs: failed to delete %s/%s/%s: %w", store, bucket, name, err)
	}
	return nil
}

func (s *GCSBlobStore) ContentType(ctx context.Context, store, bucket, name string) (string, error) {
	attrs, err := s.object(store, bucket, name).Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("gcs: failed to read attributes of %s/%s/%s: %w", store, bucket, name, err)
	}
	return attrs.ContentType, nil
}
