// Package assignment coordinates the assignment repository with blob storage
// and the push-notification queue. Repository semantics (reference checks,
// optimistic image appends) live in the repo; this layer adds the side
// effects around them.
package assignment

import (
	"context"
	"io"

	assignmentRepo "towline/database/repository/assignment"
	clientRepo "towline/database/repository/client"
	"towline/database/repository/outcome"
	"towline/models"
	"towline/services/storage"
	"towline/services/tasks"
	"towline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// assignmentStore is the blob namespace incident photos are written under.
// Each assignment gets its own bucket keyed by assignment ID.
const assignmentStore = "assignments"

// enqueuer is the slice of *asynq.Client the service needs.
type enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Service orchestrates assignment operations.
type Service struct {
	Assignments assignmentRepo.Repository
	Clients     clientRepo.Repository
	Blobs       storage.BlobStore
	Queue       enqueuer
}

func NewService(assignments assignmentRepo.Repository, clients clientRepo.Repository, blobs storage.BlobStore, queue *asynq.Client) *Service {
	return &Service{Assignments: assignments, Clients: clients, Blobs: blobs, Queue: queue}
}

// GetByID returns the assignment, or NotFound when no document matches.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Assignment, outcome.Outcome, error) {
	return s.Assignments.GetByID(ctx, id)
}

// Create persists the assignment and, when a worker is already attached,
// enqueues a push notification for dispatch in the background. Enqueue
// failures are logged and swallowed: the assignment stands either way.
func (s *Service) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error) {
	created, out, err := s.Assignments.Create(ctx, a)
	if err != nil || out != outcome.OkCreated {
		return created, out, err
	}

	if created.WorkerID != "" {
		s.enqueueNotify(ctx, created)
	}
	return created, out, nil
}

// Update validates references and replaces the assignment document.
func (s *Service) Update(ctx context.Context, a *models.Assignment) (*models.Assignment, outcome.Outcome, error) {
	return s.Assignments.Update(ctx, a)
}

// AppendImage stores the image bytes under the assignment's blob bucket and
// then records the name on the assignment. If the record step loses every
// optimistic retry the blob is left behind, orphaned but harmless.
func (s *Service) AppendImage(ctx context.Context, id, imageName, contentType string, r io.Reader) (*models.Assignment, outcome.Outcome, error) {
	if err := s.Blobs.Upload(ctx, assignmentStore, id, imageName, contentType, r); err != nil {
		return nil, outcome.OkNone, err
	}
	return s.Assignments.AppendImage(ctx, id, imageName)
}

// DownloadImage streams an incident photo with its content type.
func (s *Service) DownloadImage(ctx context.Context, id, imageName string) (io.ReadCloser, string, error) {
	contentType, err := s.Blobs.ContentType(ctx, assignmentStore, id, imageName)
	if err != nil {
		return nil, "", err
	}
	rc, err := s.Blobs.Download(ctx, assignmentStore, id, imageName)
	if err != nil {
		return nil, "", err
	}
	return rc, contentType, nil
}

// Search delegates to the repository.
func (s *Service) Search(ctx context.Context, criteria assignmentRepo.SearchCriteria) ([]assignmentRepo.SearchResult, outcome.Outcome, error) {
	return s.Assignments.Search(ctx, criteria)
}

func (s *Service) enqueueNotify(ctx context.Context, a *models.Assignment) {
	logger := utils.GetLogger()

	payload := models.AssignmentNotifyPayload{
		AssignmentID: a.ID,
		ProviderID:   a.ProviderID,
		WorkerID:     a.WorkerID,
	}
	// The client was just validated, so a miss here only costs the name in
	// the push body.
	if client, out, err := s.Clients.GetByID(ctx, a.ClientID); err == nil && out == outcome.OkNone {
		payload.ClientName = client.FirstName + " " + client.LastName
	}

	task, opts, err := tasks.NewAssignmentNotifyTask(payload)
	if err != nil {
		logger.Error("failed to build assignment notify task",
			zap.String("assignmentId", a.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue assignment notify task",
			zap.String("assignmentId", a.ID), zap.Error(err))
		return
	}
	logger.Info("assignment notify task enqueued",
		zap.String("assignmentId", a.ID),
		zap.String("workerId", a.WorkerID))
}
