package workerRepo

import (
	"testing"
	"time"

	"towline/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

var patchNow = time.Date(2017, 5, 13, 15, 0, 0, 0, time.UTC)

func TestLocationPatch(t *testing.T) {
	loc := models.GeoPoint{Latitude: 59.33, Longitude: 18.06}
	doc := locationPatch(loc, patchNow)

	set, ok := doc["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, loc, set["location"])
	assert.Equal(t, patchNow, set["updatedAt"])
	assert.Len(t, set, 2)
}

func TestStatusPatch(t *testing.T) {
	doc := statusPatch(models.WorkerBusy, patchNow)

	set := doc["$set"].(bson.M)
	assert.Equal(t, models.WorkerBusy, set["status"])
	assert.Len(t, set, 2)
}

func TestDeviceTokenPatch(t *testing.T) {
	doc := deviceTokenPatch("fcm-token-1", patchNow)

	set := doc["$set"].(bson.M)
	assert.Equal(t, "fcm-token-1", set["deviceToken"])
	assert.Len(t, set, 2)
}

func TestPatchForDispatch(t *testing.T) {
	w := &models.Worker{
		Location:    models.GeoPoint{Latitude: 1, Longitude: 2},
		Status:      models.WorkerAvailable,
		DeviceToken: "tok",
	}

	tests := []struct {
		name  string
		field Field
		key   string
	}{
		{"location", FieldLocation, "location"},
		{"status", FieldStatus, "status"},
		{"device token", FieldDeviceToken, "deviceToken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := patchFor(tt.field, w, patchNow)
			set := doc["$set"].(bson.M)
			_, present := set[tt.key]
			assert.True(t, present)
		})
	}

	assert.Panics(t, func() { patchFor(Field(99), w, patchNow) })
}

func TestAllButImageBucketPatchLeavesBucketAlone(t *testing.T) {
	w := &models.Worker{
		ID:          "w-1",
		ProviderID:  "p-1",
		FirstName:   "Asta",
		LastName:    "Berg",
		Email:       "asta@example.com",
		Status:      models.WorkerAvailable,
		Location:    models.GeoPoint{Latitude: 59.33, Longitude: 18.06},
		ImageBucket: models.ImageBucketKey{Store: "worker-images", Bucket: "b-1"},
		DeviceToken: "tok",
	}

	set := allButImageBucketPatch(w, patchNow)["$set"].(bson.M)

	_, hasBucket := set["imageBucket"]
	assert.False(t, hasBucket, "image bucket key must survive the patch")
	_, hasID := set["id"]
	assert.False(t, hasID)
	_, hasProvider := set["providerId"]
	assert.False(t, hasProvider)
	_, hasCreated := set["createdAt"]
	assert.False(t, hasCreated)

	assert.Equal(t, "Asta", set["firstName"])
	assert.Equal(t, models.WorkerAvailable, set["status"])
}
