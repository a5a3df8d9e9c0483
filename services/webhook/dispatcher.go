// File: services/webhook/dispatcher.go
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agendly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeWebhookDeliver is the asynq task type for webhook fan-out.
const TypeWebhookDeliver = "webhook:deliver"

// DeliveryPayload is the task body: the event name plus the JSON document
// POSTed to each subscribed endpoint.
type DeliveryPayload struct {
	Event      string          `json:"event"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// Dispatcher enqueues platform events for asynchronous delivery to the
// registered webhook endpoints. Dispatch never blocks the calling request on
// receiver latency; the worker owns retries.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, data interface{}) error
}

// AsynqDispatcher enqueues deliveries on the shared Redis-backed queue.
type AsynqDispatcher struct {
	Client *asynq.Client
}

// NewAsynqDispatcher wraps an asynq client.
func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, event string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook data: %w", err)
	}
	payload, err := json.Marshal(DeliveryPayload{
		Event:      event,
		OccurredAt: time.Now(),
		Data:       raw,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	task := asynq.NewTask(TypeWebhookDeliver, payload)
	if _, err := d.Client.EnqueueContext(ctx, task,
		asynq.MaxRetry(8),
		asynq.Timeout(30*time.Second),
	); err != nil {
		return fmt.Errorf("failed to enqueue webhook delivery: %w", err)
	}

	utils.GetLogger().Debug("webhook event enqueued", zap.String("event", event))
	return nil
}

// NopDispatcher drops events; used when the queue is not configured.
type NopDispatcher struct{}

func (NopDispatcher) Dispatch(ctx context.Context, event string, data interface{}) error {
	return nil
}
