// File: database/repository/professional/crud.go
package professionalRepo

import (
	"context"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

func (r *mongoProfessionalRepo) Create(ctx context.Context, p *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoProfessionalRepo) getOne(ctx context.Context, filter bson.M) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var p models.Professional
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return r.getOne(ctx, bson.M{"id": id})
}

func (r *mongoProfessionalRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *mongoProfessionalRepo) GetBySlug(ctx context.Context, slug string) (*models.Professional, error) {
	return r.getOne(ctx, bson.M{"slug": slug})
}

func (r *mongoProfessionalRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error) {
	return r.getOne(ctx, bson.M{"token_hash": tokenHash})
}

func (r *mongoProfessionalRepo) Update(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.Update(ctx, id, bson.M{"token_hash": tokenHash})
}

func (r *mongoProfessionalRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoProfessionalRepo) GetAll(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}
