// Package imagebucketRepo implements the image bucket directory: the mapping
// from a logical (store, bucket) key to the list of image names stored there.
package imagebucketRepo

import (
	"context"

	"towline/database/repository/outcome"
	"towline/models"
)

// Repository defines directory operations over image bucket records.
type Repository interface {
	// Get retrieves the bucket record addressed by key. No side effects.
	Get(ctx context.Context, key models.ImageBucketKey) (*models.ImageBucket, outcome.Outcome, error)
	// Create assigns a fresh random bucket identifier (the caller supplies
	// Store), persists the record and returns it.
	Create(ctx context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error)
	// Update replaces the record matched by (store, bucket). The replace is
	// unconditional: concurrent updates race and the loser's change is lost.
	Update(ctx context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error)
}
