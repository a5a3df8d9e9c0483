// File: cron/worker.go
package cron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"agendly/config"
	webhookRepo "agendly/database/repository/webhook"
	"agendly/models"
	"agendly/services/audit"
	"agendly/services/reminder"
	"agendly/services/webhook"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// deliveryTimeout bounds one webhook POST; asynq owns the retry schedule.
const deliveryTimeout = 15 * time.Second

// InitWorker runs the async worker in background. It owns the two task
// types: webhook fan-out and appointment reminders.
func InitWorker(endpoints webhookRepo.WebhookRepository, recorder audit.Recorder) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(webhook.TypeWebhookDeliver, handleWebhookDeliver(endpoints))
	mux.HandleFunc(reminder.TypeReminderSend, handleReminderSend(recorder))

	go monitorRedisConnection()

	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleWebhookDeliver POSTs the signed payload to every active endpoint
// subscribed to the event. Any endpoint failure fails the task so asynq
// retries the whole fan-out; receivers are expected to dedupe on event
// identity.
func handleWebhookDeliver(endpoints webhookRepo.WebhookRepository) asynq.HandlerFunc {
	client := &http.Client{Timeout: deliveryTimeout}
	return func(ctx context.Context, task *asynq.Task) error {
		var p webhook.DeliveryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WebhookDeliver] Invalid payload: %v", err)
			return fmt.Errorf("invalid payload: %w", err)
		}

		targets, err := endpoints.ListActiveForEvent(ctx, p.Event)
		if err != nil {
			return fmt.Errorf("failed to list webhook endpoints: %w", err)
		}
		if len(targets) == 0 {
			return nil
		}

		body := task.Payload()
		var firstErr error
		for _, ep := range targets {
			if err := deliverOne(ctx, client, &ep, body); err != nil {
				log.Printf("[WebhookDeliver] Delivery to %s failed: %v", ep.URL, err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	}
}

func deliverOne(ctx context.Context, client *http.Client, ep *models.WebhookEndpoint, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.SignatureHeader, webhook.Sign(ep.Secret, body))

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// handleReminderSend records the reminder as fired. Actual push or SMS
// delivery is out of scope; integrators consume the audit trail or the
// appointment.created webhook instead.
func handleReminderSend(recorder audit.Recorder) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminder.Payload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderSend] Invalid payload: %v", err)
			return fmt.Errorf("invalid payload: %w", err)
		}

		log.Printf("[ReminderSend] Reminder due for appointment %s (%s %s, %s)",
			p.AppointmentID, p.Date, p.StartTime, p.ClientName)

		recorder.Record(ctx, "", models.ActorSystem, "reminder.fire",
			"appointments", p.AppointmentID, map[string]string{
				"date":       p.Date,
				"start_time": p.StartTime,
			})
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[Worker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
