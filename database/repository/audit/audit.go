// File: database/repository/audit/audit.go
package auditRepo

import (
	"context"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Filter narrows an audit query. Zero values mean "any".
type Filter struct {
	ActorID   string
	ActorType string
	Resource  string
	Action    string
	From      time.Time
	To        time.Time
	Limit     int64
}

type AuditRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	Query(ctx context.Context, f Filter) ([]models.AuditLog, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo constructs a new MongoDB AuditRepository.
func NewMongoAuditRepo() AuditRepository {
	return &mongoAuditRepo{coll: database.DB().Collection("audit_logs")}
}

func (r *mongoAuditRepo) Insert(ctx context.Context, entry *models.AuditLog) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

func (r *mongoAuditRepo) Query(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{}
	if f.ActorID != "" {
		filter["actor_id"] = f.ActorID
	}
	if f.ActorType != "" {
		filter["actor_type"] = f.ActorType
	}
	if f.Resource != "" {
		filter["resource"] = f.Resource
	}
	if f.Action != "" {
		filter["action"] = f.Action
	}
	created := bson.M{}
	if !f.From.IsZero() {
		created["$gte"] = f.From
	}
	if !f.To.IsZero() {
		created["$lte"] = f.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
