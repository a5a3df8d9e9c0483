// File: database/repository/plan/plan.go
package planRepo

import (
	"context"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

type PlanRepository interface {
	Create(ctx context.Context, p *models.SubscriptionPlan) error
	GetByID(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	List(ctx context.Context, activeOnly bool) ([]models.SubscriptionPlan, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo constructs a new MongoDB PlanRepository.
func NewMongoPlanRepo() PlanRepository {
	return &mongoPlanRepo{coll: database.DB().Collection("subscription_plans")}
}

func (r *mongoPlanRepo) Create(ctx context.Context, p *models.SubscriptionPlan) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var p models.SubscriptionPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPlanRepo) List(ctx context.Context, activeOnly bool) ([]models.SubscriptionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.SubscriptionPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoPlanRepo) Update(ctx context.Context, id string, fields bson.M) error {
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

func (r *mongoPlanRepo) Delete(ctx context.Context, id string) error {
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
