// File: services/catalog/services.go
package catalog

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
)

// ServiceInput is the create/update payload for a bookable service.
type ServiceInput struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Price           float64 `json:"price" validate:"omitempty,min=0"`
	Active          *bool   `json:"active"`
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, professionalID string, input ServiceInput) (*models.Service, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	svc := &models.Service{
		ID:              uuid.New().String(),
		ProfessionalID:  professionalID,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Active:          true,
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}
	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "service.create",
		"services", svc.ID, nil)
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, professionalID, id string, input ServiceInput) (*models.Service, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	svc, err := s.Services.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	svc.Name = input.Name
	svc.Description = input.Description
	svc.DurationMinutes = input.DurationMinutes
	svc.Price = input.Price
	if input.Active != nil {
		svc.Active = *input.Active
	}
	if err := s.Services.Update(ctx, professionalID, id, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "service.update",
		"services", id, nil)
	return svc, nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error) {
	services, err := s.Services.ListByProfessional(ctx, professionalID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, professionalID, id string) error {
	if err := s.Services.Delete(ctx, professionalID, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "service.delete",
		"services", id, nil)
	return nil
}
