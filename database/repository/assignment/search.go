package assignmentRepo

import (
	"context"
	"fmt"

	"towline/database/repository/outcome"
	"towline/models"

	"go.mongodb.org/mongo-driver/bson"
)

// buildSearchFilter translates criteria into a Mongo filter document. Both
// time bounds are strict, and an empty status set imposes no restriction.
func buildSearchFilter(criteria SearchCriteria) bson.M {
	filter := bson.M{}

	if criteria.CreatedAfter != nil || criteria.CreatedBefore != nil {
		created := bson.M{}
		if criteria.CreatedAfter != nil {
			created["$gt"] = *criteria.CreatedAfter
		}
		if criteria.CreatedBefore != nil {
			created["$lt"] = *criteria.CreatedBefore
		}
		filter["creationDateTime"] = created
	}

	if len(criteria.Statuses) > 0 {
		filter["status"] = bson.M{"$in": criteria.Statuses}
	}

	return filter
}

// populate joins clients and workers into the assignments by foreign-key
// equality. Relations missing from the lookup maps are left nil rather than
// failing the search.
func populate(assignments []models.Assignment, clients map[string]models.Client, workers map[string]models.Worker, includeClient, includeWorker bool) []SearchResult {
	results := make([]SearchResult, 0, len(assignments))
	for _, a := range assignments {
		res := SearchResult{Assignment: a}
		if includeClient {
			if c, ok := clients[a.ClientID]; ok {
				res.Client = &c
			}
		}
		if includeWorker && a.WorkerID != "" {
			if w, ok := workers[a.WorkerID]; ok {
				res.Worker = &w
			}
		}
		results = append(results, res)
	}
	return results
}

func (r *MongoAssignmentRepo) Search(ctx context.Context, criteria SearchCriteria) ([]SearchResult, outcome.Outcome, error) {
	cursor, err := r.coll.Find(ctx, buildSearchFilter(criteria))
	if err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to search assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, outcome.OkNone, fmt.Errorf("failed to decode assignments: %w", err)
	}

	clients := map[string]models.Client{}
	if criteria.IncludeClient {
		ids := referencedClientIDs(assignments)
		if clients, err = r.lookupClients(ctx, ids); err != nil {
			return nil, outcome.OkNone, err
		}
	}

	workers := map[string]models.Worker{}
	if criteria.IncludeWorker {
		ids := referencedWorkerIDs(assignments)
		if workers, err = r.lookupWorkers(ctx, ids); err != nil {
			return nil, outcome.OkNone, err
		}
	}

	return populate(assignments, clients, workers, criteria.IncludeClient, criteria.IncludeWorker), outcome.OkNone, nil
}

func referencedClientIDs(assignments []models.Assignment) []string {
	return distinct(assignments, func(a models.Assignment) string { return a.ClientID })
}

func referencedWorkerIDs(assignments []models.Assignment) []string {
	return distinct(assignments, func(a models.Assignment) string { return a.WorkerID })
}

func distinct(assignments []models.Assignment, key func(models.Assignment) string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range assignments {
		id := key(a)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func (r *MongoAssignmentRepo) lookupClients(ctx context.Context, ids []string) (map[string]models.Client, error) {
	clients := make(map[string]models.Client, len(ids))
	if len(ids) == 0 {
		return clients, nil
	}
	cursor, err := r.clientColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients for search: %w", err)
	}
	defer cursor.Close(ctx)

	var found []models.Client
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode clients for search: %w", err)
	}
	for _, c := range found {
		clients[c.ID] = c
	}
	return clients, nil
}

func (r *MongoAssignmentRepo) lookupWorkers(ctx context.Context, ids []string) (map[string]models.Worker, error) {
	workers := make(map[string]models.Worker, len(ids))
	if len(ids) == 0 {
		return workers, nil
	}
	cursor, err := r.workerColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers for search: %w", err)
	}
	defer cursor.Close(ctx)

	var found []models.Worker
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode workers for search: %w", err)
	}
	for _, w := range found {
		workers[w.ID] = w
	}
	return workers, nil
}
