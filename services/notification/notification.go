package notification

import (
	"context"
	"fmt"

	"towline/models"
	"towline/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// SendResult reports what happened to a push attempt.
type SendResult int

const (
	// Sent means the push was accepted by FCM.
	Sent SendResult = iota
	// NotSent means the worker had no device token to push to.
	NotSent
	// Failed means FCM rejected the message. Pushes are best-effort, so
	// callers treat this as informational.
	Failed
)

func (r SendResult) String() string {
	switch r {
	case Sent:
		return "Sent"
	case NotSent:
		return "NotSent"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("SendResult(%d)", int(r))
	}
}

// Dispatcher defines methods for sending FCM pushes.
type Dispatcher interface {
	NotifyAssignmentCreated(ctx context.Context, worker *models.Worker, payload models.AssignmentNotifyPayload) SendResult
}

// messageSender is the slice of *messaging.Client the dispatcher needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMDispatcher is the production implementation.
type FCMDispatcher struct {
	client messageSender
}

func NewFCMDispatcher(client *messaging.Client) *FCMDispatcher {
	return &FCMDispatcher{client: client}
}

// NotifyAssignmentCreated pushes a new-assignment alert to the worker's
// device. Delivery failures are logged and swallowed: a lost push never
// fails the assignment that triggered it.
func (d *FCMDispatcher) NotifyAssignmentCreated(ctx context.Context, worker *models.Worker, payload models.AssignmentNotifyPayload) SendResult {
	logger := utils.GetLogger()

	token := worker.DeviceToken
	if token == "" {
		logger.Info("worker has no device token, skipping push",
			zap.String("workerId", worker.ID),
			zap.String("assignmentId", payload.AssignmentID))
		return NotSent
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "New tow assignment",
			Body:  fmt.Sprintf("%s needs assistance. Open the app for details.", payload.ClientName),
		},
		Data: map[string]string{
			"type":         "assignment_created",
			"assignmentId": payload.AssignmentID,
			"providerId":   payload.ProviderID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "dispatch",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := d.client.Send(ctx, msg); err != nil {
		logger.Error("failed to send assignment push",
			zap.String("workerId", worker.ID),
			zap.String("assignmentId", payload.AssignmentID),
			zap.Error(err))
		return Failed
	}
	return Sent
}
