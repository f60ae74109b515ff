package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"tradenet/config"
	"tradenet/models"
	"tradenet/services/notification"
	"tradenet/services/tasks"
)

// InitNotifyWorker runs the async notification worker in background.
func InitNotifyWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotifyDispatch, handleDispatchTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleDispatchTask delivers one event and logs the tri-state outcome. It
// always returns nil: delivery is at-most-once and a failed attempt is never
// requeued.
func handleDispatchTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event models.Event
		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return nil
		}

		result := notifSvc.Deliver(ctx, event)
		if result.OK {
			log.Printf("[NotifyWorker] delivered %s to %s via %s", event.Type, event.Counterparty, result.Via)
		} else {
			log.Printf("[NotifyWorker] not delivered %s to %s: %s", event.Type, event.Counterparty, result.Reason)
		}
		return nil
	}
}
