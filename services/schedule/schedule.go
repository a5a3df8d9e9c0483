// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/services/audit"
	"agendly/services/webhook"
	"agendly/utils"

	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrInvalidStatusChange is returned for transitions outside
	// scheduled -> completed and scheduled -> canceled.
	ErrInvalidStatusChange = errors.New("invalid appointment status change")
)

// ScheduleService is the professional-facing view of the appointment book.
type ScheduleService interface {
	ListByDay(ctx context.Context, professionalID, teamMemberID, date string) ([]models.Appointment, error)
	ListByRange(ctx context.Context, professionalID, fromDate, toDate string) ([]models.Appointment, error)
	Cancel(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error)
	Complete(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Appointments appointmentRepo.AppointmentRepository
	Webhooks     webhook.Dispatcher
	Audit        audit.Recorder
}

func (s *DefaultScheduleService) ListByDay(ctx context.Context, professionalID, teamMemberID, date string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByDate(ctx, professionalID, teamMemberID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (s *DefaultScheduleService) ListByRange(ctx context.Context, professionalID, fromDate, toDate string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByRange(ctx, professionalID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// Cancel frees the slot. The partial index stops matching the appointment the
// moment its status flips, so the window is immediately rebookable.
func (s *DefaultScheduleService) Cancel(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, professionalID, appointmentID, models.AppointmentCanceled)
	if err != nil {
		return nil, err
	}
	if err := s.Webhooks.Dispatch(ctx, models.EventAppointmentCanceled, appt); err != nil {
		utils.GetLogger().Error("failed to dispatch cancel webhook",
			zap.String("appointmentID", appointmentID), zap.Error(err))
	}
	return appt, nil
}

func (s *DefaultScheduleService) Complete(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	return s.transition(ctx, professionalID, appointmentID, models.AppointmentCompleted)
}

func (s *DefaultScheduleService) transition(ctx context.Context, professionalID, appointmentID, status string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, professionalID, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	if appt.Status != models.AppointmentScheduled {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, appt.Status, status)
	}

	if err := s.Appointments.UpdateStatus(ctx, professionalID, appointmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = status

	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "appointment."+status,
		"appointments", appointmentID, nil)
	utils.GetLogger().Info("appointment status changed",
		zap.String("appointmentID", appointmentID), zap.String("status", status))
	return appt, nil
}
