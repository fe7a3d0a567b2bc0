package boattowRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"towline/database/repository/outcome"
	providerRepo "towline/database/repository/provider"
	"towline/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBoatTowRepo implements Repository using MongoDB.
type MongoBoatTowRepo struct {
	coll      *mongo.Collection
	providers providerRepo.Repository
}

// NewMongoBoatTowRepo creates a Repository backed by the "boattows"
// collection of db. The provider repository is consulted for parent
// existence checks.
func NewMongoBoatTowRepo(db *mongo.Database, providers providerRepo.Repository) Repository {
	return &MongoBoatTowRepo{coll: db.Collection("boattows"), providers: providers}
}

func (r *MongoBoatTowRepo) checkProvider(ctx context.Context, providerID string) (outcome.Outcome, error) {
	exists, err := r.providers.Exists(ctx, providerID)
	if err != nil {
		return outcome.OkNone, err
	}
	if !exists {
		return outcome.ValidationErrorNone, &outcome.ValidationCause{
			Cause: "provider does not exist",
			Data:  providerID,
		}
	}
	return outcome.OkNone, nil
}

func (r *MongoBoatTowRepo) GetByID(ctx context.Context, providerID, id string) (*models.BoatTow, outcome.Outcome, error) {
	var tow models.BoatTow
	filter := bson.M{"id": id, "providerId": providerID}
	if err := r.coll.FindOne(ctx, filter).Decode(&tow); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch boat tow with id %s: %w", id, err)
	}
	return &tow, outcome.OkNone, nil
}

func (r *MongoBoatTowRepo) GetAll(ctx context.Context, providerID string) ([]models.BoatTow, outcome.Outcome, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to retrieve boat tows for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var tows []models.BoatTow
	if err := cursor.All(ctx, &tows); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to decode boat tows: %w", err)
	}
	return tows, outcome.OkNone, nil
}

func (r *MongoBoatTowRepo) Create(ctx context.Context, providerID string, tow *models.BoatTow) (*models.BoatTow, outcome.Outcome, error) {
	if tow == nil {
		outcome.PanicNilArg("tow")
	}

	if out, err := r.checkProvider(ctx, providerID); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	created := *tow
	created.ID = uuid.NewString()
	created.ProviderID = providerID
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create boat tow for provider %s: %w", providerID, err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoBoatTowRepo) Update(ctx context.Context, providerID string, tow *models.BoatTow) (*models.BoatTow, outcome.Outcome, error) {
	if tow == nil {
		outcome.PanicNilArg("tow")
	}

	if out, err := r.checkProvider(ctx, providerID); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	updated := *tow
	updated.ProviderID = providerID
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": updated.ID}, updated)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update boat tow with id %s: %w", updated.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return &updated, outcome.OkUpdated, nil
}
