package models

import "time"

// AssignmentStatus tracks an assignment through its lifecycle. The
// repository persists whatever status it is given; transition legality is
// the business layer's concern.
type AssignmentStatus string

const (
	AssignmentCreated    AssignmentStatus = "Created"
	AssignmentAssigned   AssignmentStatus = "Assigned"
	AssignmentInProgress AssignmentStatus = "InProgress"
	AssignmentCompleted  AssignmentStatus = "Completed"
	AssignmentCancelled  AssignmentStatus = "Cancelled"
)

// Assignment is one service request: a Client asking a Provider (and
// optionally a specific Worker) for a tow or rescue. ImageNames lists the
// incident photos attached so far, in append order. UpdateDateTime is the
// version stamp used for optimistic concurrency on the image-append path.
type Assignment struct {
	ID               string           `bson:"id" json:"id"`
	ClientID         string           `bson:"clientId" json:"clientId"`
	ProviderID       string           `bson:"providerId" json:"providerId"`
	WorkerID         string           `bson:"workerId,omitempty" json:"workerId,omitempty"`
	Status           AssignmentStatus `bson:"status" json:"status"`
	Location         GeoPoint         `bson:"location" json:"location"`
	Comments         string           `bson:"comments" json:"comments,omitempty"`
	ImageNames       []string         `bson:"imageNames" json:"imageNames"`
	ETA              *time.Time       `bson:"eta,omitempty" json:"eta,omitempty"`
	CreationDateTime time.Time        `bson:"creationDateTime" json:"creationDateTime"`
	UpdateDateTime   time.Time        `bson:"updateDateTime" json:"updateDateTime"`
}
