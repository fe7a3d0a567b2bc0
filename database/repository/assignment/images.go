package assignmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"towline/database/repository/outcome"
	"towline/models"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	appendImageMaxRetries = 8
	appendImageBaseDelay  = 10 * time.Millisecond
)

// ErrAppendContention is returned when an image append loses the optimistic
// race more times than the retry budget allows.
var ErrAppendContention = errors.New("assignment image append: retries exhausted under contention")

// AppendImage appends imageName to the assignment's image list. Each attempt
// re-reads the document and replaces it conditionally on the UpdateDateTime
// just read, so a concurrent writer forces a retry rather than a lost
// update. Retries are bounded with exponential backoff; exhaustion is
// reported as ErrAppendContention.
func (r *MongoAssignmentRepo) AppendImage(ctx context.Context, id, imageName string) (*models.Assignment, outcome.Outcome, error) {
	if imageName == "" {
		outcome.PanicNilArg("imageName")
	}

	delay := appendImageBaseDelay
	for attempt := 0; attempt < appendImageMaxRetries; attempt++ {
		current, out, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, outcome.OkNone, err
		}
		if out == outcome.NotFoundNone {
			return nil, outcome.NotFoundNone, nil
		}

		updated := *current
		updated.ImageNames = append(append([]string(nil), current.ImageNames...), imageName)
		updated.UpdateDateTime = time.Now().UTC().Truncate(time.Millisecond)
		if !updated.UpdateDateTime.After(current.UpdateDateTime) {
			// Keep the version stamp strictly increasing even within one
			// millisecond, or a concurrent reader could still match the old stamp.
			updated.UpdateDateTime = current.UpdateDateTime.Add(time.Millisecond)
		}

		filter := bson.M{"id": id, "updateDateTime": current.UpdateDateTime}
		res, err := r.coll.ReplaceOne(ctx, filter, updated)
		if err != nil {
			return nil, outcome.OkNone, fmt.Errorf("failed to append image to assignment %s: %w", id, err)
		}
		if res.MatchedCount == 1 {
			return &updated, outcome.OkUpdated, nil
		}

		// Another writer got in between the read and the replace.
		select {
		case <-ctx.Done():
			return nil, outcome.OkNone, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, outcome.OkNone, ErrAppendContention
}
