// File: services/booking/session.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendly/models"
	"agendly/services/availability"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession opens a fresh wizard at the team-member step.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, professional *models.Professional) (*models.BookingSession, error) {
	now := time.Now()
	session := &models.BookingSession{
		SessionID:      uuid.New().String(),
		ProfessionalID: professional.ID,
		Step:           models.StepTeamMember,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Sessions.Set(ctx, session.SessionID, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	utils.GetLogger().Debug("booking session initiated",
		zap.String("sessionID", session.SessionID),
		zap.String("professionalID", professional.ID))
	return session, nil
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	var session models.BookingSession
	err := s.Sessions.Get(ctx, sessionID, &session)
	if errors.Is(err, utils.ErrCacheMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	return &session, nil
}

// AdvanceSession validates the event's payload, applies the transition table
// and persists the updated session. An out-of-order event is rejected with
// ErrInvalidTransition before any payload is touched.
func (s *DefaultBookingService) AdvanceSession(ctx context.Context, sessionID string, event Event, input SessionInput) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := Transition(session.Step, event)
	if err != nil {
		return nil, err
	}

	if err := s.applyEvent(ctx, session, event, input); err != nil {
		return nil, err
	}

	session.Step = next
	session.UpdatedAt = time.Now()
	if err := s.Sessions.Set(ctx, session.SessionID, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, nil
}

func (s *DefaultBookingService) applyEvent(ctx context.Context, session *models.BookingSession, event Event, input SessionInput) error {
	switch event {
	case EventSelectTeamMember:
		// An empty ID books the professional's own calendar.
		if input.TeamMemberID != "" {
			member, err := s.TeamMembers.GetByID(ctx, session.ProfessionalID, input.TeamMemberID)
			if err != nil {
				return fmt.Errorf("failed to resolve team member: %w", err)
			}
			if member == nil || !member.Active {
				return fmt.Errorf("%w: team member %s", ErrUnknownResource, input.TeamMemberID)
			}
		}
		session.TeamMemberID = input.TeamMemberID

	case EventSelectInsurance:
		// An empty ID means a private (out-of-pocket) appointment.
		if input.InsurancePlanID != "" {
			plan, err := s.Insurance.GetByID(ctx, session.ProfessionalID, input.InsurancePlanID)
			if err != nil {
				return fmt.Errorf("failed to resolve insurance plan: %w", err)
			}
			if plan == nil || !plan.Active {
				return fmt.Errorf("%w: insurance plan %s", ErrUnknownResource, input.InsurancePlanID)
			}
		}
		session.InsurancePlanID = input.InsurancePlanID

	case EventSelectService:
		svc, err := s.Services.GetByID(ctx, session.ProfessionalID, input.ServiceID)
		if err != nil {
			return fmt.Errorf("failed to resolve service: %w", err)
		}
		if svc == nil || !svc.Active {
			return fmt.Errorf("%w: service %s", ErrUnknownResource, input.ServiceID)
		}
		session.ServiceID = input.ServiceID

	case EventSelectDate:
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
		professional, err := s.Professionals.GetByID(ctx, session.ProfessionalID)
		if err != nil {
			return fmt.Errorf("failed to resolve professional: %w", err)
		}
		if professional == nil {
			return fmt.Errorf("%w: professional %s", ErrUnknownResource, session.ProfessionalID)
		}
		slots, err := s.Availability(ctx, professional, session.TeamMemberID, input.Date)
		if err != nil {
			return err
		}
		session.Date = input.Date
		session.Availability = slots

	case EventSelectTime:
		// Revalidate against the offered list; a stale button click on a
		// slot that was never offered is rejected here, a slot taken in the
		// meantime is caught again at confirm time by the unique index.
		var chosen *models.AvailableSlot
		for i := range session.Availability {
			if session.Availability[i].StartTime == input.StartTime {
				chosen = &session.Availability[i]
				break
			}
		}
		if chosen == nil {
			return fmt.Errorf("%w: %s on %s", ErrSlotNotOffered, input.StartTime, session.Date)
		}
		session.StartTime = chosen.StartTime
		session.EndTime = chosen.EndTime

	case EventSubmitClientInfo:
		if input.ClientName == "" || input.ClientPhone == "" {
			return fmt.Errorf("client name and phone are required")
		}
		session.ClientName = input.ClientName
		session.ClientPhone = input.ClientPhone
		session.ClientEmail = input.ClientEmail
	}

	return nil
}

// CancelSession drops the wizard; abandoning is also handled by the TTL.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Invalidate(ctx, sessionID)
}

// Availability computes the bookable slots for one calendar date on the
// professional's (or a team member's) calendar, in the professional's
// timezone.
func (s *DefaultBookingService) Availability(ctx context.Context, professional *models.Professional, teamMemberID, date string) ([]models.AvailableSlot, error) {
	tz := professional.Timezone
	if tz == "" {
		tz = s.DefaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	templates, err := s.Templates.ListForWeekday(ctx, professional.ID, teamMemberID, int(day.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, nil
	}

	booked, err := s.Appointments.ListByDate(ctx, professional.ID, teamMemberID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	return availability.GenerateNow(templates, booked, date, loc), nil
}
