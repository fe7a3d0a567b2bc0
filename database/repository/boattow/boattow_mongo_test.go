package boattowRepo

import (
	"context"
	"os"
	"testing"
	"time"

	"towline/database/repository/outcome"
	providerRepo "towline/database/repository/provider"
	"towline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newRepos(t *testing.T) (Repository, providerRepo.Repository) {
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
	db.Collection("boattows").Drop(context.Background())
	db.Collection("providers").Drop(context.Background())

	providers := providerRepo.NewMongoProviderRepo(db)
	return NewMongoBoatTowRepo(db, providers), providers
}

func TestBoatTowCreateMissingProvider(t *testing.T) {
	tows, _ := newRepos(t)

	created, out, err := tows.Create(context.Background(), "ghost", &models.BoatTow{Name: "Stormfågel"})
	assert.Nil(t, created)
	assert.Equal(t, outcome.ValidationErrorNone, out)
	var cause *outcome.ValidationCause
	require.ErrorAs(t, err, &cause)
	assert.Equal(t, "provider does not exist", cause.Cause)
}

func TestBoatTowCreateUpdateRoundTrip(t *testing.T) {
	tows, providers := newRepos(t)
	ctx := context.Background()

	p, _, err := providers.Create(ctx, &models.Provider{ID: "p-1", CompanyName: "Skerry Tow AB"})
	require.NoError(t, err)

	created, out, err := tows.Create(ctx, p.ID, &models.BoatTow{Name: "Stormfågel", TowingCapacity: 12.5})
	require.NoError(t, err)
	require.Equal(t, outcome.OkCreated, out)
	assert.NotEmpty(t, created.ID)

	created.TowingCapacity = 14
	updated, out, err := tows.Update(ctx, p.ID, created)
	require.NoError(t, err)
	assert.Equal(t, outcome.OkUpdated, out)
	assert.Equal(t, float64(14), updated.TowingCapacity)

	all, _, err := tows.GetAll(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBoatTowUpdateMissingTow(t *testing.T) {
	tows, providers := newRepos(t)
	ctx := context.Background()

	p, _, err := providers.Create(ctx, &models.Provider{ID: "p-1", CompanyName: "Skerry Tow AB"})
	require.NoError(t, err)

	_, out, err := tows.Update(ctx, p.ID, &models.BoatTow{ID: "ghost", Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFoundNone, out)
}
