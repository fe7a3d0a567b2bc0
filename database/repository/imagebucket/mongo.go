package imagebucketRepo

import (
	"context"
	"errors"
	"fmt"

	"towline/database/repository/outcome"
	"towline/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoImageBucketRepo implements Repository using MongoDB.
type MongoImageBucketRepo struct {
	coll *mongo.Collection
}

// NewMongoImageBucketRepo creates a Repository backed by the "image-buckets"
// collection of db.
func NewMongoImageBucketRepo(db *mongo.Database) Repository {
	return &MongoImageBucketRepo{coll: db.Collection("image-buckets")}
}

// NewBucketID generates a fresh random bucket identifier.
func NewBucketID() string {
	return uuid.NewString()
}

func (r *MongoImageBucketRepo) Get(ctx context.Context, key models.ImageBucketKey) (*models.ImageBucket, outcome.Outcome, error) {
	filter := bson.M{"store": key.Store, "bucket": key.Bucket}
	var bucket models.ImageBucket
	if err := r.coll.FindOne(ctx, filter).Decode(&bucket); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch image bucket %s/%s: %w", key.Store, key.Bucket, err)
	}
	return &bucket, outcome.OkNone, nil
}

func (r *MongoImageBucketRepo) Create(ctx context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error) {
	if bucket == nil {
		outcome.PanicNilArg("bucket")
	}

	created := *bucket
	created.Bucket = NewBucketID()
	if created.ImageNames == nil {
		created.ImageNames = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create image bucket in store %s: %w", created.Store, err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoImageBucketRepo) Update(ctx context.Context, bucket *models.ImageBucket) (*models.ImageBucket, outcome.Outcome, error) {
	if bucket == nil {
		outcome.PanicNilArg("bucket")
	}

	filter := bson.M{"store": bucket.Store, "bucket": bucket.Bucket}
	res, err := r.coll.ReplaceOne(ctx, filter, bucket)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update image bucket %s/%s: %w", bucket.Store, bucket.Bucket, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return bucket, outcome.OkUpdated, nil
}
