// File: database/repository/webhook/webhook.go
package webhookRepo

import (
	"context"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

type WebhookRepository interface {
	Create(ctx context.Context, w *models.WebhookEndpoint) error
	GetByID(ctx context.Context, id string) (*models.WebhookEndpoint, error)
	List(ctx context.Context) ([]models.WebhookEndpoint, error)
	// ListActiveForEvent returns active endpoints subscribed to the event.
	ListActiveForEvent(ctx context.Context, event string) ([]models.WebhookEndpoint, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoWebhookRepo struct {
	coll *mongo.Collection
}

// NewMongoWebhookRepo constructs a new MongoDB WebhookRepository.
func NewMongoWebhookRepo() WebhookRepository {
	return &mongoWebhookRepo{coll: database.DB().Collection("webhook_endpoints")}
}

func (r *mongoWebhookRepo) Create(ctx context.Context, w *models.WebhookEndpoint) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, w)
	return err
}

func (r *mongoWebhookRepo) GetByID(ctx context.Context, id string) (*models.WebhookEndpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var w models.WebhookEndpoint
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *mongoWebhookRepo) List(ctx context.Context) ([]models.WebhookEndpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var endpoints []models.WebhookEndpoint
	if err := cursor.All(ctx, &endpoints); err != nil {
		return nil, err
	}
	return endpoints, nil
}

func (r *mongoWebhookRepo) ListActiveForEvent(ctx context.Context, event string) ([]models.WebhookEndpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{
		"active": true,
		"$or": bson.A{
			bson.M{"events": event},
			bson.M{"events": bson.M{"$size": 0}},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var endpoints []models.WebhookEndpoint
	if err := cursor.All(ctx, &endpoints); err != nil {
		return nil, err
	}
	return endpoints, nil
}

func (r *mongoWebhookRepo) Update(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoWebhookRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
