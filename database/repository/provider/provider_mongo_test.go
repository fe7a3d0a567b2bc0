package providerRepo

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
	db.Collection("providers").Drop(context.Background())

	return NewMongoProviderRepo(db)
}

func TestProviderRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, out, err := repo.Create(ctx, &models.Provider{
		ID:          "p-1",
		CompanyName: "Skerry Tow AB",
		Location:    models.GeoPoint{Latitude: 59.32, Longitude: 18.07},
	})
	require.NoError(t, err)
	require.Equal(t, outcome.OkCreated, out)

	got, out, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, outcome.OkNone, out)
	assert.Equal(t, "Skerry Tow AB", got.CompanyName)
	assert.InDelta(t, 59.32, got.Location.Latitude, 1e-9)
}

func TestProviderExists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, _, err := repo.Create(ctx, &models.Provider{ID: "p-1", CompanyName: "Skerry Tow AB"})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProviderUpdateMissing(t *testing.T) {
	repo := newRepo(t)

	_, out, err := repo.Update(context.Background(), &models.Provider{ID: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFoundNone, out)
}
