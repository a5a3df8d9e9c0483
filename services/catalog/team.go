// File: services/catalog/team.go
package catalog

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamMemberInput is the create/update payload for a team member.
type TeamMemberInput struct {
	Name   string `json:"name" validate:"required,min=2"`
	Role   string `json:"role"`
	Email  string `json:"email" validate:"omitempty,email"`
	Active *bool  `json:"active"`
}

// teamLimit resolves the subscription plan's team size. Zero means the plan
// does not cap the team.
func (s *DefaultCatalogService) teamLimit(ctx context.Context, professionalID string) (int, error) {
	professional, err := s.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch professional: %w", err)
	}
	if professional == nil || professional.Subscription.PlanID == "" {
		return 0, nil
	}
	plan, err := s.Plans.GetByID(ctx, professional.Subscription.PlanID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch subscription plan: %w", err)
	}
	if plan == nil {
		return 0, nil
	}
	return plan.MaxTeamMembers, nil
}

func (s *DefaultCatalogService) CreateTeamMember(ctx context.Context, professionalID string, input TeamMemberInput) (*models.TeamMember, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	limit, err := s.teamLimit(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		count, err := s.TeamMembers.CountByProfessional(ctx, professionalID)
		if err != nil {
			return nil, fmt.Errorf("failed to count team members: %w", err)
		}
		if count >= int64(limit) {
			return nil, ErrTeamLimitReached
		}
	}

	member := &models.TeamMember{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		Name:           input.Name,
		Role:           input.Role,
		Email:          input.Email,
		Active:         true,
	}
	if input.Active != nil {
		member.Active = *input.Active
	}
	if err := s.TeamMembers.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "team_member.create",
		"team_members", member.ID, nil)
	utils.GetLogger().Debug("team member created",
		zap.String("professionalID", professionalID), zap.String("teamMemberID", member.ID))
	return member, nil
}

func (s *DefaultCatalogService) UpdateTeamMember(ctx context.Context, professionalID, id string, input TeamMemberInput) (*models.TeamMember, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	member, err := s.TeamMembers.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team member: %w", err)
	}
	if member == nil {
		return nil, ErrNotFound
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Email = input.Email
	if input.Active != nil {
		member.Active = *input.Active
	}
	if err := s.TeamMembers.Update(ctx, professionalID, id, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "team_member.update",
		"team_members", id, nil)
	return member, nil
}

func (s *DefaultCatalogService) ListTeamMembers(ctx context.Context, professionalID string, activeOnly bool) ([]models.TeamMember, error) {
	members, err := s.TeamMembers.ListByProfessional(ctx, professionalID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func (s *DefaultCatalogService) DeleteTeamMember(ctx context.Context, professionalID, id string) error {
	if err := s.TeamMembers.Delete(ctx, professionalID, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "team_member.delete",
		"team_members", id, nil)
	return nil
}
