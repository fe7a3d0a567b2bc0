package models

import "time"

// Client is a boat owner requesting tow/rescue services. The ID is assigned
// by the external identity provider at signup and never changes afterwards.
type Client struct {
	ID                 string    `bson:"id" json:"id"`
	FirstName          string    `bson:"firstName" json:"firstName"`
	LastName           string    `bson:"lastName" json:"lastName"`
	Email              string    `bson:"email" json:"email"`
	PhoneNumber        string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	BoatName           string    `bson:"boatName" json:"boatName,omitempty"`
	BoatModel          string    `bson:"boatModel" json:"boatModel,omitempty"`
	RegistrationNumber string    `bson:"registrationNumber" json:"registrationNumber,omitempty"`
	Avatar             *ImageRef `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}
