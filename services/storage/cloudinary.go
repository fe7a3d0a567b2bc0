package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryBlobStore implements BlobStore on Cloudinary. Objects are
// addressed by public ID store/bucket/name.
type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryBlobStore creates a BlobStore backed by the given Cloudinary client.
func NewCloudinaryBlobStore(cld *cloudinary.Cloudinary) *CloudinaryBlobStore {
	return &CloudinaryBlobStore{cld: cld}
}

func (s *CloudinaryBlobStore) Upload(ctx context.Context, store, bucket, name, contentType string, r io.Reader) error {
	params := uploader.UploadParams{
		PublicID: objectPath(store, bucket, name),
	}
	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return fmt.Errorf("cloudinary: failed to upload %s/%s/%s: %w", store, bucket, name, err)
	}
	if result.PublicID == "" {
		return fmt.Errorf("cloudinary: no public ID returned for %s/%s/%s", store, bucket, name)
	}
	return nil
}

func (s *CloudinaryBlobStore) Download(ctx context.Context, store, bucket, name string) (io.ReadCloser, error) {
	asset, err := s.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: objectPath(store, bucket, name)})
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to resolve %s/%s/%s: %w", store, bucket, name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.SecureURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to download %s/%s/%s: %w", store, bucket, name, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cloudinary: unexpected status %d downloading %s/%s/%s", resp.StatusCode, store, bucket, name)
	}
	return resp.Body, nil
}

func (s *CloudinaryBlobStore) Delete(ctx context.Context, store, bucket, name string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectPath(store, bucket, name)})
	if err != nil {
		return fmt.Errorf("cloudinary: failed to delete %s/%s/%s: %w", store, bucket, name, err)
	}
	return nil
}

func (s *CloudinaryBlobStore) ContentType(ctx context.Context, store, bucket, name string) (string, error) {
	asset, err := s.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: objectPath(store, bucket, name)})
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to resolve %s/%s/%s: %w", store, bucket, name, err)
	}
	if ct := mime.TypeByExtension("." + asset.Format); ct != "" {
		return ct, nil
	}
	return "application/octet-stream", nil
}
