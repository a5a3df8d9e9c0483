// File: database/repository/insurance/insurance.go
package insuranceRepo

import (
	"context"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

type InsurancePlanRepository interface {
	Create(ctx context.Context, p *models.InsurancePlan) error
	GetByID(ctx context.Context, professionalID, id string) (*models.InsurancePlan, error)
	ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.InsurancePlan, error)
	Update(ctx context.Context, professionalID, id string, p *models.InsurancePlan) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoInsurancePlanRepo struct {
	coll *mongo.Collection
}

// NewMongoInsurancePlanRepo constructs a new MongoDB InsurancePlanRepository.
func NewMongoInsurancePlanRepo() InsurancePlanRepository {
	return &mongoInsurancePlanRepo{coll: database.DB().Collection("insurance_plans")}
}

func (r *mongoInsurancePlanRepo) Create(ctx context.Context, p *models.InsurancePlan) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoInsurancePlanRepo) GetByID(ctx context.Context, professionalID, id string) (*models.InsurancePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var p models.InsurancePlan
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoInsurancePlanRepo) ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.InsurancePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{"professional_id": professionalID}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.InsurancePlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoInsurancePlanRepo) Update(ctx context.Context, professionalID, id string, p *models.InsurancePlan) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{"name": p.Name, "active": p.Active}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "professional_id": professionalID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInsurancePlanRepo) Delete(ctx context.Context, professionalID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "professional_id": professionalID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
