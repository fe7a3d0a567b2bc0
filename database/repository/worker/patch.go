package workerRepo

import (
	"time"

	"towline/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Field tags the worker fields that support single-field patches. Each tag
// maps to a statically-typed update builder below; no runtime field-name
// introspection is involved.
type Field int

const (
	FieldLocation Field = iota
	FieldStatus
	FieldDeviceToken
)

// patchFor selects the update builder for a single-field patch. The worker
// value carries the field being patched; everything else is ignored.
func patchFor(f Field, w *models.Worker, now time.Time) bson.M {
	switch f {
	case FieldLocation:
		return locationPatch(w.Location, now)
	case FieldStatus:
		return statusPatch(w.Status, now)
	case FieldDeviceToken:
		return deviceTokenPatch(w.DeviceToken, now)
	}
	panic("unknown worker patch field")
}

// locationPatch builds the update document for a location-only patch.
func locationPatch(location models.GeoPoint, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"location":  location,
		"updatedAt": now,
	}}
}

// statusPatch builds the update document for a status-only patch.
func statusPatch(status models.WorkerStatus, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": now,
	}}
}

// deviceTokenPatch builds the update document for a device-token-only patch.
func deviceTokenPatch(token string, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"deviceToken": token,
		"updatedAt":   now,
	}}
}

// allButImageBucketPatch replaces every mutable worker field except the
// image bucket key. ID, ProviderID and CreatedAt are also left alone.
func allButImageBucketPatch(w *models.Worker, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"firstName":   w.FirstName,
		"lastName":    w.LastName,
		"email":       w.Email,
		"phoneNumber": w.PhoneNumber,
		"status":      w.Status,
		"location":    w.Location,
		"deviceToken": w.DeviceToken,
		"updatedAt":   now,
	}}
}
