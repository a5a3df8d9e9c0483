package teamRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, m *models.TeamMember) error
	GetByID(ctx context.Context, professionalID, id string) (*models.TeamMember, error)
	ListByProfessional(ctx context.Context, professionalID string, activeOnly bool) ([]models.TeamMember, error)
	CountByProfessional(ctx context.Context, professionalID string) (int64, error)
	Update(ctx context.Context, professionalID, id string, m *models.TeamMember) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoTeamMemberRepo struct {
	coll *mongo.Collection
}

// NewMongoTeamMemberRepo constructs a new MongoDB TeamMemberRepository.
func NewMongoTeamMemberRepo() TeamMemberRepository {
	return &mongoTeamMemberRepo{coll: database.DB().Collection("team_members")}
}
