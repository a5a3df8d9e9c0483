// File: services/catalog/insurance.go
package catalog

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
)

// InsurancePlanInput is the create/update payload for an accepted payer.
type InsurancePlanInput struct {
	Name   string `json:"name" validate:"required,min=2"`
	Active *bool  `json:"active"`
}

func (s *DefaultCatalogService) CreateInsurancePlan(ctx context.Context, professionalID string, input InsurancePlanInput) (*models.InsurancePlan, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	plan := &models.InsurancePlan{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		Name:           input.Name,
		Active:         true,
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}
	if err := s.Insurance.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create insurance plan: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "insurance_plan.create",
		"insurance_plans", plan.ID, nil)
	return plan, nil
}

func (s *DefaultCatalogService) UpdateInsurancePlan(ctx context.Context, professionalID, id string, input InsurancePlanInput) (*models.InsurancePlan, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	plan, err := s.Insurance.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch insurance plan: %w", err)
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	plan.Name = input.Name
	if input.Active != nil {
		plan.Active = *input.Active
	}
	if err := s.Insurance.Update(ctx, professionalID, id, plan); err != nil {
		return nil, fmt.Errorf("failed to update insurance plan: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "insurance_plan.update",
		"insurance_plans", id, nil)
	return plan, nil
}

func (s *DefaultCatalogService) ListInsurancePlans(ctx context.Context, professionalID string, activeOnly bool) ([]models.InsurancePlan, error) {
	plans, err := s.Insurance.ListByProfessional(ctx, professionalID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance plans: %w", err)
	}
	return plans, nil
}

func (s *DefaultCatalogService) DeleteInsurancePlan(ctx context.Context, professionalID, id string) error {
	if err := s.Insurance.Delete(ctx, professionalID, id); err != nil {
		return fmt.Errorf("failed to delete insurance plan: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "insurance_plan.delete",
		"insurance_plans", id, nil)
	return nil
}
