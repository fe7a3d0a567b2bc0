// Package boattowRepo wraps the "boattows" collection. BoatTows follow the
// same child-of-provider protocol as workers.
package boattowRepo

import (
	"context"

	"towline/database/repository/outcome"
	"towline/models"
)

// Repository defines boat tow data access.
type Repository interface {
	GetByID(ctx context.Context, providerID, id string) (*models.BoatTow, outcome.Outcome, error)
	GetAll(ctx context.Context, providerID string) ([]models.BoatTow, outcome.Outcome, error)
	Create(ctx context.Context, providerID string, tow *models.BoatTow) (*models.BoatTow, outcome.Outcome, error)
	Update(ctx context.Context, providerID string, tow *models.BoatTow) (*models.BoatTow, outcome.Outcome, error)
}
