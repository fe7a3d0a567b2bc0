package image

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	imagebucketRepo "towline/database/repository/imagebucket"
	"towline/database/repository/outcome"
	"towline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucketRepo struct {
	buckets map[models.ImageBucketKey]*models.ImageBucket
}

var _ imagebucketRepo.Repository = (*fakeBucketRepo)(nil)

func newFakeBucketRepo() *fakeBucketRepo {
	return &fakeBucketRepo{buckets: make(map[models.ImageBucketKey]*models.ImageBucket)}
}

func (f *fakeBucketRepo) Get(_ context.Context, key models.ImageBucketKey) (*models.ImageBucket, outcome.Outcome, error) {
	b, ok := f.buckets[key]
	if !ok {
		return nil, outcome.NotFoundNone, nil
	}
	copied := *b
	copied.ImageNames = append([]string(nil), b.ImageNames...)
	return &copied, outcome.OkNone, nil
}

func (f *fakeBucketRepo) Create(_ context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error) {
	created := *bucket
	created.Bucket = imagebucketRepo.NewBucketID()
	if created.ImageNames == nil {
		created.ImageNames = []string{}
	}
	f.buckets[created.Key()] = &created
	return &created, outcome.OkCreated, nil
}

func (f *fakeBucketRepo) Update(_ context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error) {
	if _, ok := f.buckets[bucket.Key()]; !ok {
		return nil, outcome.NotFoundNone, nil
	}
	copied := *bucket
	f.buckets[bucket.Key()] = &copied
	return bucket, outcome.OkUpdated, nil
}

type fakeBlobStore struct {
	blobs        map[string][]byte
	contentTypes map[string]string
	failUpload   bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte), contentTypes: make(map[string]string)}
}

func blobKey(store, bucket, name string) string {
	return store + "/" + bucket + "/" + name
}

func (f *fakeBlobStore) Upload(_ context.Context, store, bucket, name, contentType string, r io.Reader) error {
	if f.failUpload {
		return fmt.Errorf("upload refused")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[blobKey(store, bucket, name)] = data
	f.contentTypes[blobKey(store, bucket, name)] = contentType
	return nil
}

func (f *fakeBlobStore) Download(_ context.Context, store, bucket, name string) (io.ReadCloser, error) {
	data, ok := f.blobs[blobKey(store, bucket, name)]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", blobKey(store, bucket, name))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, store, bucket, name string) error {
	delete(f.blobs, blobKey(store, bucket, name))
	return nil
}

func (f *fakeBlobStore) ContentType(_ context.Context, store, bucket, name string) (string, error) {
	ct, ok := f.contentTypes[blobKey(store, bucket, name)]
	if !ok {
		return "", fmt.Errorf("blob %s not found", blobKey(store, bucket, name))
	}
	return ct, nil
}

func TestUploadImageRecordsDirectoryEntry(t *testing.T) {
	buckets := newFakeBucketRepo()
	blobs := newFakeBlobStore()
	svc := NewService(buckets, blobs, nil)
	ctx := context.Background()

	bucket, out, err := svc.CreateBucket(ctx, "assignment-images")
	require.NoError(t, err)
	require.Equal(t, outcome.OkCreated, out)

	out, err = svc.UploadImage(ctx, bucket.Key(), "bow.jpg", "image/jpeg", bytes.NewReader([]byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.Equal(t, outcome.OkUpdated, out)

	got, _, err := svc.GetBucket(ctx, bucket.Key())
	require.NoError(t, err)
	assert.Equal(t, []string{"bow.jpg"}, got.ImageNames)

	rc, contentType, err := svc.DownloadImage(ctx, bucket.Key(), "bow.jpg")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", contentType)
}

func TestUploadImageUnknownBucket(t *testing.T) {
	svc := NewService(newFakeBucketRepo(), newFakeBlobStore(), nil)

	out, err := svc.UploadImage(context.Background(), models.ImageBucketKey{Store: "x", Bucket: "ghost"}, "a.jpg", "image/jpeg", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFoundNone, out)
}

func TestUploadImageBlobFailureLeavesDirectoryUntouched(t *testing.T) {
	buckets := newFakeBucketRepo()
	blobs := newFakeBlobStore()
	blobs.failUpload = true
	svc := NewService(buckets, blobs, nil)
	ctx := context.Background()

	bucket, _, err := svc.CreateBucket(ctx, "assignment-images")
	require.NoError(t, err)

	out, err := svc.UploadImage(ctx, bucket.Key(), "bow.jpg", "image/jpeg", bytes.NewReader([]byte("x")))
	require.Error(t, err)
	assert.Equal(t, outcome.OkNone, out)

	got, _, err := svc.GetBucket(ctx, bucket.Key())
	require.NoError(t, err)
	assert.Empty(t, got.ImageNames)
}

func TestDeleteImageRemovesDirectoryEntry(t *testing.T) {
	buckets := newFakeBucketRepo()
	blobs := newFakeBlobStore()
	svc := NewService(buckets, blobs, nil)
	ctx := context.Background()

	bucket, _, err := svc.CreateBucket(ctx, "assignment-images")
	require.NoError(t, err)

	require.NoError(t, errFrom(svc.UploadImage(ctx, bucket.Key(), "bow.jpg", "image/jpeg", bytes.NewReader([]byte("a")))))
	require.NoError(t, errFrom(svc.UploadImage(ctx, bucket.Key(), "stern.jpg", "image/jpeg", bytes.NewReader([]byte("b")))))

	out, err := svc.DeleteImage(ctx, bucket.Key(), "bow.jpg")
	require.NoError(t, err)
	assert.Equal(t, outcome.OkUpdated, out)

	got, _, err := svc.GetBucket(ctx, bucket.Key())
	require.NoError(t, err)
	assert.Equal(t, []string{"stern.jpg"}, got.ImageNames)
}

func errFrom(_ outcome.Outcome, err error) error { return err }
