package notification

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tradenet/config"
	"tradenet/models"
	"tradenet/services/tasks"
	"tradenet/utils"
)

// AsynqDispatcher hands events to the background notify queue. Enqueue never
// blocks the request path on delivery and swallows its own failures: a
// notification that cannot even be queued is simply lost, by contract.
type AsynqDispatcher struct {
	client *asynq.Client
}

// NewAsynqDispatcher creates the queue client from config.
func NewAsynqDispatcher(cfg config.Config) *AsynqDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisNotifyQueueDB,
	})
	return &AsynqDispatcher{client: client}
}

// Enqueue submits the event to the queue. Failures are logged, never
// returned.
func (d *AsynqDispatcher) Enqueue(event models.Event) {
	task, opts, err := tasks.NewDispatchTask(event)
	if err != nil {
		utils.GetLogger().Warn("notify: failed to build dispatch task", zap.Error(err))
		return
	}
	if _, err := d.client.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("notify: failed to enqueue dispatch task",
			zap.String("counterparty", event.Counterparty), zap.Error(err))
	}
}

// Close releases the queue client.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}
