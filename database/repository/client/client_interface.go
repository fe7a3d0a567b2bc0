// Package clientRepo wraps the "clients" collection.
package clientRepo

import (
	"context"

	"towline/database/repository/outcome"
	"towline/models"
)

// Repository defines client data access. Client IDs are assigned by the
// external identity provider before Create is called.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Client, outcome.Outcome, error)
	GetAll(ctx context.Context) ([]models.Client, outcome.Outcome, error)
	Create(ctx context.Context, client *models.Client) (*models.Client, outcome.Outcome, error)
	Update(ctx context.Context, client *models.Client) (*models.Client, outcome.Outcome, error)
}
