// File: services/catalog/interface.go
package catalog

import (
	"context"
	"errors"

	clientRepo "agendly/database/repository/client"
	insuranceRepo "agendly/database/repository/insurance"
	planRepo "agendly/database/repository/plan"
	professionalRepo "agendly/database/repository/professional"
	serviceRepo "agendly/database/repository/service"
	teamRepo "agendly/database/repository/teammember"
	"agendly/models"
	"agendly/services/audit"
)

var (
	ErrNotFound = errors.New("catalog record not found")
	// ErrTeamLimitReached is returned when the subscription plan's team size
	// would be exceeded.
	ErrTeamLimitReached = errors.New("team member limit for the current plan reached")
)

// CatalogService manages everything a professional configures on their
// dashboard besides the calendar itself: team members, offered services,
// accepted insurance plans, and the client book.
type CatalogService interface {
	CreateTeamMember(ctx context.Context, professionalID string, input TeamMemberInput) (*models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, professionalID, id string, input TeamMemberInput) (*models.TeamMember, error)
	ListTeamMembers(ctx context.Context, professionalID string, activeOnly bool) ([]models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, professionalID, id string) error

	CreateService(ctx context.Context, professionalID string, input ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, professionalID, id string, input ServiceInput) (*models.Service, error)
	ListServices(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error)
	DeleteService(ctx context.Context, professionalID, id string) error

	CreateInsurancePlan(ctx context.Context, professionalID string, input InsurancePlanInput) (*models.InsurancePlan, error)
	UpdateInsurancePlan(ctx context.Context, professionalID, id string, input InsurancePlanInput) (*models.InsurancePlan, error)
	ListInsurancePlans(ctx context.Context, professionalID string, activeOnly bool) ([]models.InsurancePlan, error)
	DeleteInsurancePlan(ctx context.Context, professionalID, id string) error

	CreateClient(ctx context.Context, professionalID string, input ClientInput) (*models.Client, error)
	UpdateClient(ctx context.Context, professionalID, id string, input ClientInput) (*models.Client, error)
	ListClients(ctx context.Context, professionalID string) ([]models.Client, error)
	DeleteClient(ctx context.Context, professionalID, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Professionals professionalRepo.ProfessionalRepository
	TeamMembers   teamRepo.TeamMemberRepository
	Services      serviceRepo.ServiceRepository
	Insurance     insuranceRepo.InsurancePlanRepository
	Clients       clientRepo.ClientRepository
	Plans         planRepo.PlanRepository
	Audit         audit.Recorder
}
