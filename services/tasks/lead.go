package tasks

import (
	"encoding/json"

	"framelight/models"

	"github.com/hibiken/asynq"
)

const TypeLeadCaptured = "lead:captured"

// NewLeadCapturedTask wraps a lead notification into a queue task.
func NewLeadCapturedTask(payload models.LeadNotification) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLeadCaptured, b), nil
}
