package tasks

import (
	"encoding/json"

	"towline/models"

	"github.com/hibiken/asynq"
)

const TypeAssignmentNotify = "assignment:notify"

func NewAssignmentNotifyTask(payload models.AssignmentNotifyPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAssignmentNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
