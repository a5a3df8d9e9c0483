package models

import "time"

// Webhook event names dispatched by the platform.
const (
	EventAppointmentCreated  = "appointment.created"
	EventAppointmentCanceled = "appointment.canceled"
	EventProfessionalCreated = "professional.created"
)

// WebhookEndpoint is an admin-registered receiver for platform events.
// Deliveries are signed with the endpoint secret (HMAC-SHA256 over the body).
type WebhookEndpoint struct {
	ID        string    `bson:"id" json:"id"`
	URL       string    `bson:"url" json:"url"`
	Secret    string    `bson:"secret" json:"-"`
	Events    []string  `bson:"events" json:"events"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Subscribed reports whether the endpoint wants the given event. An empty
// event list means all events.
func (w *WebhookEndpoint) Subscribed(event string) bool {
	if len(w.Events) == 0 {
		return true
	}
	for _, e := range w.Events {
		if e == event {
			return true
		}
	}
	return false
}
