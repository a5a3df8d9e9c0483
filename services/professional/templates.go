// File: services/professional/templates.go
package professional

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/services/availability"
	"agendly/utils"

	"github.com/google/uuid"
)

// TemplateInput is the create/update payload for a weekly timeslot template.
// Shape and ordering are validated here so the availability engine only ever
// sees well-formed templates.
type TemplateInput struct {
	TeamMemberID        string `json:"team_member_id"`
	DayOfWeek           int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime           string `json:"start_time" validate:"required,hhmm"`
	EndTime             string `json:"end_time" validate:"required,hhmm"`
	AppointmentDuration int    `json:"appointment_duration_minutes" validate:"omitempty,min=5,max=480"`
	LunchBreakStart     string `json:"lunch_break_start" validate:"omitempty,hhmm"`
	LunchBreakEnd       string `json:"lunch_break_end" validate:"omitempty,hhmm"`
}

// validateTemplate layers the cross-field rules on top of the tag checks:
// the window must be ordered, and the lunch break (when present) must be
// ordered and fall inside the window.
func validateTemplate(input TemplateInput) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}

	start := availability.TimeToMinutes(input.StartTime)
	end := availability.TimeToMinutes(input.EndTime)
	if start >= end {
		return fmt.Errorf("start_time %s must be before end_time %s", input.StartTime, input.EndTime)
	}

	if (input.LunchBreakStart == "") != (input.LunchBreakEnd == "") {
		return fmt.Errorf("lunch break requires both start and end")
	}
	if input.LunchBreakStart != "" {
		ls := availability.TimeToMinutes(input.LunchBreakStart)
		le := availability.TimeToMinutes(input.LunchBreakEnd)
		if ls >= le {
			return fmt.Errorf("lunch_break_start %s must be before lunch_break_end %s", input.LunchBreakStart, input.LunchBreakEnd)
		}
		if ls < start || le > end {
			return fmt.Errorf("lunch break %s-%s must fall inside the window %s-%s",
				input.LunchBreakStart, input.LunchBreakEnd, input.StartTime, input.EndTime)
		}
	}
	return nil
}

func templateFromInput(professionalID, id string, input TemplateInput) *models.TimeSlotTemplate {
	return &models.TimeSlotTemplate{
		ID:                  id,
		ProfessionalID:      professionalID,
		TeamMemberID:        input.TeamMemberID,
		DayOfWeek:           input.DayOfWeek,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		AppointmentDuration: input.AppointmentDuration,
		LunchBreakStart:     input.LunchBreakStart,
		LunchBreakEnd:       input.LunchBreakEnd,
	}
}

func (s *DefaultProfessionalService) CreateTemplate(ctx context.Context, professionalID string, input TemplateInput) (*models.TimeSlotTemplate, error) {
	if err := validateTemplate(input); err != nil {
		return nil, err
	}
	t := templateFromInput(professionalID, uuid.New().String(), input)
	if err := s.Templates.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "template.create",
		"timeslot_templates", t.ID, nil)
	return t, nil
}

func (s *DefaultProfessionalService) UpdateTemplate(ctx context.Context, professionalID, templateID string, input TemplateInput) (*models.TimeSlotTemplate, error) {
	if err := validateTemplate(input); err != nil {
		return nil, err
	}
	existing, err := s.Templates.GetByID(ctx, professionalID, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("template %s not found", templateID)
	}
	t := templateFromInput(professionalID, templateID, input)
	if err := s.Templates.Update(ctx, professionalID, templateID, t); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "template.update",
		"timeslot_templates", templateID, nil)
	return t, nil
}

func (s *DefaultProfessionalService) ListTemplates(ctx context.Context, professionalID string) ([]models.TimeSlotTemplate, error) {
	templates, err := s.Templates.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *DefaultProfessionalService) DeleteTemplate(ctx context.Context, professionalID, templateID string) error {
	if err := s.Templates.Delete(ctx, professionalID, templateID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "template.delete",
		"timeslot_templates", templateID, nil)
	return nil
}
