// File: database/repository/client/client.go
package clientRepo

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

type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, professionalID, id string) (*models.Client, error)
	// FindByPhone resolves a returning client so repeat bookings reuse the
	// existing record instead of duplicating it.
	FindByPhone(ctx context.Context, professionalID, phone string) (*models.Client, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Client, error)
	Update(ctx context.Context, professionalID, id string, c *models.Client) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{coll: database.DB().Collection("clients")}
}

func (r *mongoClientRepo) Create(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *mongoClientRepo) GetByID(ctx context.Context, professionalID, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var c models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id, "professional_id": professionalID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) FindByPhone(ctx context.Context, professionalID, phone string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var c models.Client
	err := r.coll.FindOne(ctx, bson.M{"professional_id": professionalID, "phone": phone}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professional_id": professionalID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, professionalID, id string, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
		"notes": c.Notes,
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

func (r *mongoClientRepo) Delete(ctx context.Context, professionalID, id string) error {
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
