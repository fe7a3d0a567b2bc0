package models

import "time"

// WorkerStatus is the availability state of a field technician.
type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "Available"
	WorkerBusy      WorkerStatus = "Busy"
	WorkerOffline   WorkerStatus = "Offline"
)

// IsValidWorkerStatus reports whether s is one of the known worker statuses.
func IsValidWorkerStatus(s WorkerStatus) bool {
	switch s {
	case WorkerAvailable, WorkerBusy, WorkerOffline:
		return true
	}
	return false
}

// Worker is a field technician employed by a Provider. Location and Status
// are mutated frequently and independently of the rest of the record.
// DeviceToken is the FCM registration token used for assignment pushes.
type Worker struct {
	ID          string         `bson:"id" json:"id"`
	ProviderID  string         `bson:"providerId" json:"providerId"`
	FirstName   string         `bson:"firstName" json:"firstName"`
	LastName    string         `bson:"lastName" json:"lastName"`
	Email       string         `bson:"email" json:"email"`
	PhoneNumber string         `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Status      WorkerStatus   `bson:"status" json:"status"`
	Location    GeoPoint       `bson:"location" json:"location"`
	ImageBucket ImageBucketKey `bson:"imageBucket" json:"imageBucket"`
	DeviceToken string         `bson:"deviceToken" json:"deviceToken,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
