package assignmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	clientRepo "towline/database/repository/client"
	"towline/database/repository/outcome"
	providerRepo "towline/database/repository/provider"
	workerRepo "towline/database/repository/worker"
	"towline/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAssignmentRepo implements Repository using MongoDB.
type MongoAssignmentRepo struct {
	coll      *mongo.Collection
	clients   clientRepo.Repository
	providers providerRepo.Repository
	workers   workerRepo.Repository

	clientColl *mongo.Collection
	workerColl *mongo.Collection
}

// NewMongoAssignmentRepo creates a Repository backed by the "assignments"
// collection of db. The related repositories serve referential validation;
// the raw client/worker collections serve search population.
func NewMongoAssignmentRepo(db *mongo.Database, clients clientRepo.Repository, providers providerRepo.Repository, workers workerRepo.Repository) Repository {
	return &MongoAssignmentRepo{
		coll:       db.Collection("assignments"),
		clients:    clients,
		providers:  providers,
		workers:    workers,
		clientColl: db.Collection("clients"),
		workerColl: db.Collection("workers"),
	}
}

func (r *MongoAssignmentRepo) GetByID(ctx context.Context, id string) (*models.Assignment, outcome.Outcome, error) {
	var a models.Assignment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch assignment with id %s: %w", id, err)
	}
	return &a, outcome.OkNone, nil
}

// validateReferences checks Client, Provider and (when set) Worker in that
// order. The first missing reference short-circuits the rest.
func (r *MongoAssignmentRepo) validateReferences(ctx context.Context, a *models.Assignment) (outcome.Outcome, error) {
	client, out, err := r.clients.GetByID(ctx, a.ClientID)
	if err != nil {
		return outcome.OkNone, err
	}
	if out == outcome.NotFoundNone || client == nil {
		return outcome.ValidationErrorNone, &outcome.ValidationCause{
			Cause: "client does not exist",
			Data:  a.ClientID,
		}
	}

	exists, err := r.providers.Exists(ctx, a.ProviderID)
	if err != nil {
		return outcome.OkNone, err
	}
	if !exists {
		return outcome.ValidationErrorNone, &outcome.ValidationCause{
			Cause: "provider does not exist",
			Data:  a.ProviderID,
		}
	}

	if a.WorkerID != "" {
		worker, out, err := r.workers.GetByID(ctx, a.ProviderID, a.WorkerID)
		if err != nil {
			return outcome.OkNone, err
		}
		if out == outcome.NotFoundNone || worker == nil {
			return outcome.ValidationErrorNone, &outcome.ValidationCause{
				Cause: "worker does not exist",
				Data:  a.WorkerID,
			}
		}
	}

	return outcome.OkNone, nil
}

func (r *MongoAssignmentRepo) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error) {
	if a == nil {
		outcome.PanicNilArg("assignment")
	}

	if out, err := r.validateReferences(ctx, a); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	created := *a
	created.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreationDateTime = now
	created.UpdateDateTime = now
	if created.Status == "" {
		created.Status = models.AssignmentCreated
	}
	if created.ImageNames == nil {
		created.ImageNames = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create assignment: %w", err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoAssignmentRepo) Update(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error) {
	if a == nil {
		outcome.PanicNilArg("assignment")
	}

	if out, err := r.validateReferences(ctx, a); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	updated := *a
	updated.UpdateDateTime = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": updated.ID}, updated)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update assignment with id %s: %w", updated.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return &updated, outcome.OkUpdated, nil
}
