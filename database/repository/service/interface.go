package serviceRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, professionalID, id string) (*models.Service, error)
	ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error)
	Update(ctx context.Context, professionalID, id string, s *models.Service) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.DB().Collection("services")}
}
