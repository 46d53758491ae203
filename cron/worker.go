package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"framelight/config"
	"framelight/models"
	"framelight/services/notify"
	"framelight/services/tasks"

	"github.com/hibiken/asynq"
)

// InitLeadNotifyWorker runs the async worker that delivers lead notification
// emails in the background.
func InitLeadNotifyWorker(mailer *notify.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLeadCaptured, handleLeadCapturedTask(mailer))

	// Start async worker with retry logic.
	go func() {
		log.Println("[LeadNotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LeadNotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LeadNotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleLeadCapturedTask(mailer *notify.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.LeadNotification
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[LeadNotifyWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[LeadNotifyWorker] lead %s for session %s, notifying studio", p.Event, p.SessionID)

		if err := mailer.SendLeadCaptured(p); err != nil {
			log.Printf("[LeadNotifyWorker] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
