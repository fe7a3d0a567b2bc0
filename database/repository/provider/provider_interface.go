// Package providerRepo wraps the "providers" collection.
package providerRepo

import (
	"context"

	"towline/database/repository/outcome"
	"towline/models"
)

// Repository defines provider data access.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, outcome.Outcome, error)
	GetAll(ctx context.Context) ([]models.Provider, outcome.Outcome, error)
	// Create inserts a new provider record. The identity is assigned
	// externally; Create keeps whatever ID the caller stamped.
	Create(ctx context.Context, provider *models.Provider) (*models.Provider, outcome.Outcome, error)
	// Update replaces the record matched by ID. The replace is unconditional;
	// concurrent updates are last-writer-wins.
	Update(ctx context.Context, provider *models.Provider) (*models.Provider, outcome.Outcome, error)
	// Exists reports whether a provider with the given ID is present. Used by
	// child-of-provider repositories for referential checks.
	Exists(ctx context.Context, id string) (bool, error)
}
