// File: database/repository/professional/interface.go
package professionalRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, p *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	GetBySlug(ctx context.Context, slug string) (*models.Professional, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error)
	Update(ctx context.Context, id string, fields bson.M) error
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Professional, error)
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs the Mongo-backed repository and ensures
// its indexes exist.
func NewMongoProfessionalRepo() ProfessionalRepository {
	r := &mongoProfessionalRepo{coll: database.DB().Collection("professionals")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
