package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"tradenet/models"
)

const TypeNotifyDispatch = "notify:dispatch"

// NewDispatchTask wraps an event for the background queue. MaxRetry(0) keeps
// the documented at-most-once, no-retry contract.
func NewDispatchTask(event models.Event) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotifyDispatch, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}
