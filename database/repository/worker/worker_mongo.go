package workerRepo

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

// MongoWorkerRepo implements Repository using MongoDB.
type MongoWorkerRepo struct {
	coll      *mongo.Collection
	providers providerRepo.Repository
}

// NewMongoWorkerRepo creates a Repository backed by the "workers" collection
// of db. The provider repository is consulted for parent existence checks.
func NewMongoWorkerRepo(db *mongo.Database, providers providerRepo.Repository) Repository {
	return &MongoWorkerRepo{coll: db.Collection("workers"), providers: providers}
}

func (r *MongoWorkerRepo) checkProvider(ctx context.Context, providerID string) (outcome.Outcome, error) {
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

func (r *MongoWorkerRepo) GetByID(ctx context.Context, providerID, id string) (*models.Worker, outcome.Outcome, error) {
	var worker models.Worker
	filter := bson.M{"id": id, "providerId": providerID}
	if err := r.coll.FindOne(ctx, filter).Decode(&worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, outcome.NotFoundNone, nil
		}
		return nil, outcome.OkNone, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &worker, outcome.OkNone, nil
}

func (r *MongoWorkerRepo) GetAll(ctx context.Context, providerID string) ([]models.Worker, outcome.Outcome, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to retrieve workers for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, outcome.OkNone, nil
}

func (r *MongoWorkerRepo) Create(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error) {
	if worker == nil {
		outcome.PanicNilArg("worker")
	}

	if out, err := r.checkProvider(ctx, providerID); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	created := *worker
	created.ID = uuid.NewString()
	created.ProviderID = providerID
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to create worker for provider %s: %w", providerID, err)
	}
	return &created, outcome.OkCreated, nil
}

func (r *MongoWorkerRepo) Update(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error) {
	if worker == nil {
		outcome.PanicNilArg("worker")
	}

	if out, err := r.checkProvider(ctx, providerID); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	updated := *worker
	updated.ProviderID = providerID
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": updated.ID}, updated)
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to update worker with id %s: %w", updated.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return &updated, outcome.OkUpdated, nil
}

func (r *MongoWorkerRepo) PatchAllButImageBucket(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error) {
	if worker == nil {
		outcome.PanicNilArg("worker")
	}

	if out, err := r.checkProvider(ctx, providerID); out != outcome.OkNone || err != nil {
		return nil, out, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": worker.ID, "providerId": providerID}, allButImageBucketPatch(worker, now))
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to patch worker with id %s: %w", worker.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, outcome.NotFoundNone, nil
	}
	return r.patched(ctx, providerID, worker.ID)
}

func (r *MongoWorkerRepo) PatchLocation(ctx context.Context, providerID, id string, location models.GeoPoint) (outcome.Outcome, error) {
	return r.patchField(ctx, providerID, id, FieldLocation, &models.Worker{Location: location})
}

func (r *MongoWorkerRepo) PatchStatus(ctx context.Context, providerID, id string, status models.WorkerStatus) (outcome.Outcome, error) {
	return r.patchField(ctx, providerID, id, FieldStatus, &models.Worker{Status: status})
}

func (r *MongoWorkerRepo) PatchDeviceToken(ctx context.Context, providerID, id string, token string) (outcome.Outcome, error) {
	return r.patchField(ctx, providerID, id, FieldDeviceToken, &models.Worker{DeviceToken: token})
}

func (r *MongoWorkerRepo) patchField(ctx context.Context, providerID, id string, f Field, w *models.Worker) (outcome.Outcome, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "providerId": providerID}, patchFor(f, w, now))
	if err != nil {
		return outcome.OkNone, fmt.Errorf("failed to patch worker with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return outcome.NotFoundNone, nil
	}
	return outcome.OkUpdated, nil
}

// patched re-reads a worker after a partial update so callers get the
// persisted document back.
func (r *MongoWorkerRepo) patched(ctx context.Context, providerID, id string) (*models.Worker, outcome.Outcome, error) {
	w, out, err := r.GetByID(ctx, providerID, id)
	if err != nil || out != outcome.OkNone {
		return nil, out, err
	}
	return w, outcome.OkUpdated, nil
}
