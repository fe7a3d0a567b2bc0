package clientRepo

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

// MongoClientRepo implements Repository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a Repository backed by the "clients" collection of db.
func NewMongoClientRepo(db *mongo.Database) Repository {
	return &MongoClientRepo{coll: db.Collection("clients")}
}

func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, outcome.Outcome, error) {
	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, outcome.OkNone, nil
}

func (r *MongoClientRepo) GetAll(ctx context.Context) ([]models.Client, outcome.Outcome, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, outcome.OkNone, nil
}

func (r *MongoClientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, outcome.Outcome, error) {
	if client == nil {
		outcome.PanicNilArg("client")
	}

	created := *client
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create client: %w", err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoClientRepo) Update(ctx context.Context, client *models.Client) (*models.Client, outcome.Outcome, error) {
	if client == nil {
		outcome.PanicNilArg("client")
	}

	updated := *client
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": updated.ID}, updated)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update client with id %s: %w", updated.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return &updated, outcome.OkUpdated, nil
}
