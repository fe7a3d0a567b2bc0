// Package workerRepo wraps the "workers" collection. Workers follow the
// child-of-provider protocol: mutations verify the parent provider exists
// before touching the worker document.
package workerRepo

import (
	"context"

	"towline/database/repository/outcome"
	"towline/models"
)

// Repository defines worker data access.
type Repository interface {
	GetByID(ctx context.Context, providerID, id string) (*models.Worker, outcome.Outcome, error)
	GetAll(ctx context.Context, providerID string) ([]models.Worker, outcome.Outcome, error)
	// Create verifies the provider exists, assigns a fresh ID, stamps
	// ProviderID and inserts. A missing provider yields ValidationErrorNone
	// with a cause naming the provider.
	Create(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error)
	// Update verifies the provider exists, then replaces the document matched
	// by the worker's own ID. The match predicate is not scoped to the
	// provider; only the preceding existence check ties the two.
	Update(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error)
	// PatchAllButImageBucket replaces every mutable field except the image
	// bucket key, which survives the patch untouched.
	PatchAllButImageBucket(ctx context.Context, providerID string, worker *models.Worker) (*models.Worker, outcome.Outcome, error)
	// PatchLocation updates only the last-known location.
	PatchLocation(ctx context.Context, providerID, id string, location models.GeoPoint) (outcome.Outcome, error)
	// PatchStatus updates only the availability status.
	PatchStatus(ctx context.Context, providerID, id string, status models.WorkerStatus) (outcome.Outcome, error)
	// PatchDeviceToken updates only the push registration token.
	PatchDeviceToken(ctx context.Context, providerID, id string, token string) (outcome.Outcome, error)
}
