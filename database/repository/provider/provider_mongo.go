package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"towline/database/repository/outcome"
	"towline/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements Repository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a Repository backed by the "providers" collection of db.
func NewMongoProviderRepo(db *mongo.Database) Repository {
	return &MongoProviderRepo{coll: db.Collection("providers")}
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, outcome.Outcome, error) {
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, outcome.OkNone, nil
}

func (r *MongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, outcome.Outcome, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, outcome.OkNone, nil
}

func (r *MongoProviderRepo) Create(ctx context.Context, provider *models.Provider) (*models.Provider, outcome.Outcome, error) {
	if provider == nil {
		outcome.PanicNilArg("provider")
	}

	created := *provider
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create provider: %w", err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoProviderRepo) Update(ctx context.Context, provider *models.Provider) (*models.Provider, outcome.Outcome, error) {
	if provider == nil {
		outcome.PanicNilArg("provider")
	}

	updated := *provider
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": updated.ID}, updated)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update provider with id %s: %w", updated.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return &updated, outcome.OkUpdated, nil
}

func (r *MongoProviderRepo) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check provider existence for id %s: %w", id, err)
	}
	return count > 0, nil
}
