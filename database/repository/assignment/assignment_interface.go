// Package assignmentRepo wraps the "assignments" collection: the service
// requests linking a client, a provider and optionally a worker. Creates and
// updates validate those references against their collections; image appends
// run under optimistic concurrency keyed on the update timestamp.
package assignmentRepo

import (
	"context"
	"time"

	"towline/database/repository/outcome"
	"towline/models"
)

// SearchCriteria filters assignment searches. Zero-value bounds and an empty
// status set mean "no restriction". Populate flags join related documents
// into each result.
type SearchCriteria struct {
	// CreatedAfter keeps assignments whose creation time is strictly later.
	CreatedAfter *time.Time
	// CreatedBefore keeps assignments whose creation time is strictly earlier.
	CreatedBefore *time.Time
	// Statuses keeps assignments whose status is in the set.
	Statuses []models.AssignmentStatus
	// IncludeClient joins the referenced Client into each result.
	IncludeClient bool
	// IncludeWorker joins the referenced Worker into each result, where one
	// is assigned.
	IncludeWorker bool
}

// SearchResult is one assignment with its optionally populated relations.
type SearchResult struct {
	Assignment models.Assignment `json:"assignment"`
	Client     *models.Client    `json:"client,omitempty"`
	Worker     *models.Worker    `json:"worker,omitempty"`
}

// Repository defines assignment data access.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Assignment, outcome.Outcome, error)
	// Create validates the Client, Provider and (when set) Worker references
	// in that order, short-circuiting on the first miss, then inserts the
	// assignment with a fresh ID and creation/update stamps.
	Create(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error)
	// Update runs the same validation, then replaces the document matched by
	// ID. The replace is unconditional: concurrent updates are
	// last-writer-wins, unlike the image-append path.
	Update(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error)
	// AppendImage appends an image name to the assignment's list under
	// optimistic concurrency, retrying on conflict up to a bounded number of
	// attempts with backoff.
	AppendImage(ctx context.Context, id, imageName string) (*models.Assignment, outcome.Outcome, error)
	// Search returns all assignments matching the criteria, joined with
	// related documents where requested. No pagination.
	Search(ctx context.Context, criteria SearchCriteria) ([]SearchResult, outcome.Outcome, error)
}
