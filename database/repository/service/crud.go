package serviceRepo

import (
	"context"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

func (r *mongoServiceRepo) Create(ctx context.Context, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, professionalID, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var s models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoServiceRepo) ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error) {
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

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, professionalID, id string, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"name":             s.Name,
		"description":      s.Description,
		"duration_minutes": s.DurationMinutes,
		"price":            s.Price,
		"active":           s.Active,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "professional_id": professionalID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, professionalID, id string) error {
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
