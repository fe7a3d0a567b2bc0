package models

import "time"

// BoatTow is a tow vessel or truck in a Provider's fleet. Parent reference
// follows the same protocol as Worker: ProviderID by value, no ownership.
type BoatTow struct {
	ID                 string         `bson:"id" json:"id"`
	ProviderID         string         `bson:"providerId" json:"providerId"`
	Name               string         `bson:"name" json:"name"`
	Model              string         `bson:"model" json:"model,omitempty"`
	RegistrationNumber string         `bson:"registrationNumber" json:"registrationNumber,omitempty"`
	TowingCapacity     float64        `bson:"towingCapacity" json:"towingCapacity,omitempty"`
	ImageBucket        ImageBucketKey `bson:"imageBucket" json:"imageBucket"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}
