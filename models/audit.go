package models

import "time"

// Actor kinds recorded in audit entries.
const (
	ActorProfessional = "professional"
	ActorAdmin        = "admin"
	ActorPublic       = "public"
	ActorSystem       = "system"
)

// AuditLog is an append-only record of a state-changing action, queryable
// from the admin back-office.
type AuditLog struct {
	ID         string            `bson:"id" json:"id"`
	ActorID    string            `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	ActorType  string            `bson:"actor_type" json:"actor_type"`
	Action     string            `bson:"action" json:"action"`     // e.g. "appointment.create"
	Resource   string            `bson:"resource" json:"resource"` // collection name
	ResourceID string            `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	Metadata   map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`
}
