package notification

import (
	"context"
	"fmt"
	"testing"

	"towline/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)
	return "projects/test/messages/1", nil
}

func testPayload() models.AssignmentNotifyPayload {
	return models.AssignmentNotifyPayload{
		AssignmentID: "a-1",
		ProviderID:   "p-1",
		WorkerID:     "w-1",
		ClientName:   "Skip Barlow",
	}
}

func TestNotifyAssignmentCreated(t *testing.T) {
	sender := &fakeSender{}
	d := &FCMDispatcher{client: sender}
	worker := &models.Worker{ID: "w-1", DeviceToken: "tok-123"}

	result := d.NotifyAssignmentCreated(context.Background(), worker, testPayload())

	assert.Equal(t, Sent, result)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "tok-123", msg.Token)
	assert.Equal(t, "a-1", msg.Data["assignmentId"])
	assert.Equal(t, "assignment_created", msg.Data["type"])
	assert.Contains(t, msg.Notification.Body, "Skip Barlow")
}

func TestNotifyAssignmentCreatedNoToken(t *testing.T) {
	sender := &fakeSender{}
	d := &FCMDispatcher{client: sender}
	worker := &models.Worker{ID: "w-1"}

	result := d.NotifyAssignmentCreated(context.Background(), worker, testPayload())

	assert.Equal(t, NotSent, result)
	assert.Empty(t, sender.sent)
}

func TestNotifyAssignmentCreatedSendFailure(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("unregistered token")}
	d := &FCMDispatcher{client: sender}
	worker := &models.Worker{ID: "w-1", DeviceToken: "tok-123"}

	result := d.NotifyAssignmentCreated(context.Background(), worker, testPayload())

	assert.Equal(t, Failed, result)
}

func TestSendResultString(t *testing.T) {
	assert.Equal(t, "Sent", Sent.String())
	assert.Equal(t, "NotSent", NotSent.String())
	assert.Equal(t, "Failed", Failed.String())
}
