// Package image keeps the image bucket directory consistent with blob
// storage. Semantics are best-effort: a crash between the blob write and the
// directory update can orphan a blob or dangle a reference, and no
// compensation is attempted.
package image

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	imagebucketRepo "towline/database/repository/imagebucket"
	"towline/database/repository/outcome"
	"towline/models"
	"towline/services/storage"
	"towline/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const bucketCacheTTL = 5 * time.Minute

// Service mediates between the bucket directory and blob storage.
type Service struct {
	Buckets imagebucketRepo.Repository
	Blobs   storage.BlobStore
	Cache   *redis.Client
}

// NewService creates an image Service. Cache may be nil, in which case every
// lookup goes to the directory.
func NewService(buckets imagebucketRepo.Repository, blobs storage.BlobStore, cache *redis.Client) *Service {
	return &Service{Buckets: buckets, Blobs: blobs, Cache: cache}
}

// CreateBucket provisions a fresh bucket in the given store.
func (s *Service) CreateBucket(ctx context.Context, store string) (*models.ImageBucket, outcome.Outcome, error) {
	return s.Buckets.Create(ctx, &models.ImageBucket{Store: store})
}

// GetBucket returns the directory record for key, consulting the cache first.
func (s *Service) GetBucket(ctx context.Context, key models.ImageBucketKey) (*models.ImageBucket, outcome.Outcome, error) {
	if cached := s.cachedBucket(ctx, key); cached != nil {
		return cached, outcome.OkNone, nil
	}

	bucket, out, err := s.Buckets.Get(ctx, key)
	if err != nil || out != outcome.OkNone {
		return nil, out, err
	}
	s.cacheBucket(ctx, bucket)
	return bucket, outcome.OkNone, nil
}

// UploadImage stores the bytes and then records name in the directory.
func (s *Service) UploadImage(ctx context.Context, key models.ImageBucketKey, name, contentType string, r io.Reader) (outcome.Outcome, error) {
	bucket, out, err := s.Buckets.Get(ctx, key)
	if err != nil || out != outcome.OkNone {
		return out, err
	}

	if err := s.Blobs.Upload(ctx, key.Store, key.Bucket, name, contentType, r); err != nil {
		return outcome.OkNone, err
	}

	bucket.ImageNames = append(bucket.ImageNames, name)
	if _, out, err := s.Buckets.Update(ctx, bucket); err != nil || out != outcome.OkUpdated {
		// The blob landed but the directory write failed: an orphaned blob,
		// accepted rather than compensated.
		return out, err
	}
	s.invalidate(ctx, key)
	return outcome.OkUpdated, nil
}

// DownloadImage streams an image and reports its content type.
func (s *Service) DownloadImage(ctx context.Context, key models.ImageBucketKey, name string) (io.ReadCloser, string, error) {
	contentType, err := s.Blobs.ContentType(ctx, key.Store, key.Bucket, name)
	if err != nil {
		return nil, "", err
	}
	rc, err := s.Blobs.Download(ctx, key.Store, key.Bucket, name)
	if err != nil {
		return nil, "", err
	}
	return rc, contentType, nil
}

// DeleteImage removes the blob and then its directory entry.
func (s *Service) DeleteImage(ctx context.Context, key models.ImageBucketKey, name string) (outcome.Outcome, error) {
	bucket, out, err := s.Buckets.Get(ctx, key)
	if err != nil || out != outcome.OkNone {
		return out, err
	}

	if err := s.Blobs.Delete(ctx, key.Store, key.Bucket, name); err != nil {
		return outcome.OkNone, err
	}

	bucket.ImageNames = removeName(bucket.ImageNames, name)
	if _, out, err := s.Buckets.Update(ctx, bucket); err != nil || out != outcome.OkUpdated {
		return out, err
	}
	s.invalidate(ctx, key)
	return outcome.OkUpdated, nil
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func cacheKey(key models.ImageBucketKey) string {
	return fmt.Sprintf("imagebucket:%s:%s", key.Store, key.Bucket)
}

func (s *Service) cachedBucket(ctx context.Context, key models.ImageBucketKey) *models.ImageBucket {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("image bucket cache read failed", zap.Error(err))
		}
		return nil
	}
	var bucket models.ImageBucket
	if err := json.Unmarshal([]byte(raw), &bucket); err != nil {
		return nil
	}
	return &bucket
}

func (s *Service) cacheBucket(ctx context.Context, bucket *models.ImageBucket) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(bucket)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(bucket.Key()), raw, bucketCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("image bucket cache write failed", zap.Error(err))
	}
}

func (s *Service) invalidate(ctx context.Context, key models.ImageBucketKey) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey(key)).Err(); err != nil {
		utils.GetLogger().Warn("image bucket cache invalidation failed", zap.Error(err))
	}
}
