// File: services/booking/confirm.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking writes the appointment for a completed wizard. The slot
// claim itself is the appointment insert: the partial unique index on
// (professional, team member, date, start) is the arbiter when two sessions
// race for the same slot, so the loser gets ErrSlotTaken no matter how stale
// its in-session availability was.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmed {
		return nil, fmt.Errorf("%w: session at step %q", ErrInvalidTransition, session.Step)
	}

	client, err := s.resolveClient(ctx, session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:              uuid.New().String(),
		ProfessionalID:  session.ProfessionalID,
		TeamMemberID:    session.TeamMemberID,
		ServiceID:       session.ServiceID,
		InsurancePlanID: session.InsurancePlanID,
		ClientID:        client.ID,
		ClientName:      client.Name,
		ClientPhone:     client.Phone,
		ClientEmail:     client.Email,
		Date:            session.Date,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		Status:          models.AppointmentScheduled,
		CreatedAt:       now,
	}

	if err := s.Appointments.Create(ctx, appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.Sessions.Invalidate(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to drop confirmed booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Audit.Record(ctx, client.ID, models.ActorPublic, "appointment.create",
		"appointments", appointment.ID, map[string]string{
			"professional_id": appointment.ProfessionalID,
			"date":            appointment.Date,
			"start_time":      appointment.StartTime,
		})

	if err := s.Webhooks.Dispatch(ctx, models.EventAppointmentCreated, appointment); err != nil {
		utils.GetLogger().Error("failed to dispatch appointment webhook",
			zap.String("appointmentID", appointment.ID), zap.Error(err))
	}
	s.scheduleReminder(ctx, appointment)

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", appointment.ID),
		zap.String("professionalID", appointment.ProfessionalID),
		zap.String("date", appointment.Date),
		zap.String("start", appointment.StartTime))
	return appointment, nil
}

// scheduleReminder queues the client reminder in the professional's
// timezone. Best-effort: a queue failure never unwinds the booking.
func (s *DefaultBookingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	professional, err := s.Professionals.GetByID(ctx, appt.ProfessionalID)
	if err != nil || professional == nil {
		utils.GetLogger().Warn("failed to resolve professional for reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	tz := professional.Timezone
	if tz == "" {
		tz = s.DefaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	if err := s.Reminders.Schedule(ctx, appt, loc); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// resolveClient reuses the client record matched by phone, creating one on a
// first booking. The stored name is refreshed so a typo fixed on a later
// visit sticks.
func (s *DefaultBookingService) resolveClient(ctx context.Context, session *models.BookingSession) (*models.Client, error) {
	existing, err := s.Clients.FindByPhone(ctx, session.ProfessionalID, session.ClientPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}
	if existing != nil {
		if existing.Name != session.ClientName || (session.ClientEmail != "" && existing.Email != session.ClientEmail) {
			existing.Name = session.ClientName
			if session.ClientEmail != "" {
				existing.Email = session.ClientEmail
			}
			if err := s.Clients.Update(ctx, existing.ProfessionalID, existing.ID, existing); err != nil {
				utils.GetLogger().Warn("failed to refresh client details",
					zap.String("clientID", existing.ID), zap.Error(err))
			}
		}
		return existing, nil
	}

	client := &models.Client{
		ID:             uuid.New().String(),
		ProfessionalID: session.ProfessionalID,
		Name:           session.ClientName,
		Email:          session.ClientEmail,
		Phone:          session.ClientPhone,
		CreatedAt:      time.Now(),
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
