package models

import "time"

// Provider is a towing company. It owns Workers and BoatTows, referenced by
// ID (no cascade on delete). ImageBucket points at the provider's
// profile-picture bucket in the image directory.
type Provider struct {
	ID          string         `bson:"id" json:"id"`
	CompanyName string         `bson:"companyName" json:"companyName"`
	Email       string         `bson:"email" json:"email"`
	PhoneNumber string         `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address     string         `bson:"address" json:"address,omitempty"`
	Location    GeoPoint       `bson:"location" json:"location"`
	ImageBucket ImageBucketKey `bson:"imageBucket" json:"imageBucket"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
