// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	Create(ctx context.Context, t *models.TimeSlotTemplate) error
	GetByID(ctx context.Context, professionalID, id string) (*models.TimeSlotTemplate, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.TimeSlotTemplate, error)
	// ListForWeekday returns the templates the availability engine expands for
	// one calendar date: scoped to the weekday and, when teamMemberID is
	// non-empty, to that team member's calendar.
	ListForWeekday(ctx context.Context, professionalID, teamMemberID string, dayOfWeek int) ([]models.TimeSlotTemplate, error)
	Update(ctx context.Context, professionalID, id string, t *models.TimeSlotTemplate) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo constructs a new MongoDB TemplateRepository.
func NewMongoTemplateRepo() TemplateRepository {
	return &mongoTemplateRepo{coll: database.DB().Collection("timeslot_templates")}
}
