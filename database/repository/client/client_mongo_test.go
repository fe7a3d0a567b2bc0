package clientRepo

import (
	"context"
	"os"
	"testing"
	"time"

	"towline/database/repository/outcome"
	"towline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newRepo(t *testing.T) Repository {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("failed to create client: %v, skipping integration test", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo not reachable: %v, skipping integration test", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	db := client.Database("test_towline")
	db.Collection("clients").Drop(context.Background())

	return NewMongoClientRepo(db)
}

func TestClientCreateKeepsExternalID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, out, err := repo.Create(ctx, &models.Client{
		ID:        "uid-from-auth",
		FirstName: "Skip",
		LastName:  "Barlow",
		Email:     "skip@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, outcome.OkCreated, out)
	assert.Equal(t, "uid-from-auth", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, out, err := repo.GetByID(ctx, "uid-from-auth")
	require.NoError(t, err)
	assert.Equal(t, outcome.OkNone, out)
	assert.Equal(t, "Skip", got.FirstName)
}

func TestClientGetByIDMissing(t *testing.T) {
	repo := newRepo(t)

	got, out, err := repo.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, outcome.NotFoundNone, out)
}

func TestClientUpdate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, _, err := repo.Create(ctx, &models.Client{ID: "c-1", FirstName: "Skip", BoatName: "Second Wind"})
	require.NoError(t, err)

	updated, out, err := repo.Update(ctx, &models.Client{ID: "c-1", FirstName: "Skipper", BoatName: "Second Wind"})
	require.NoError(t, err)
	assert.Equal(t, outcome.OkUpdated, out)
	assert.Equal(t, "Skipper", updated.FirstName)

	_, out, err = repo.Update(ctx, &models.Client{ID: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFoundNone, out)
}

func TestClientGetAll(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, id := range []string{"c-1", "c-2", "c-3"} {
		_, _, err := repo.Create(ctx, &models.Client{ID: id, FirstName: "N-" + id})
		require.NoError(t, err)
	}

	all, out, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, outcome.OkNone, out)
	assert.Len(t, all, 3)
}
