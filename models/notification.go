package models

// AssignmentNotifyPayload is the task payload enqueued when an assignment is
// created with a worker already attached. The background worker resolves the
// worker's device token and sends the push.
type AssignmentNotifyPayload struct {
	AssignmentID string `json:"assignmentId"`
	ProviderID   string `json:"providerId"`
	WorkerID     string `json:"workerId"`
	ClientName   string `json:"clientName,omitempty"`
}
