// File: services/reminder/reminder.go
package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderSend is the asynq task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// DefaultLead is how far ahead of the appointment the reminder fires.
const DefaultLead = 24 * time.Hour

// Payload is the reminder task body.
type Payload struct {
	AppointmentID  string `json:"appointment_id"`
	ProfessionalID string `json:"professional_id"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
}

// Scheduler enqueues an appointment reminder for future processing.
type Scheduler interface {
	Schedule(ctx context.Context, appt *models.Appointment, loc *time.Location) error
}

// AsynqScheduler schedules reminders on the shared queue. Zero Lead means
// DefaultLead. Appointments closer than the lead get no reminder.
type AsynqScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func (s *AsynqScheduler) Schedule(ctx context.Context, appt *models.Appointment, loc *time.Location) error {
	lead := s.Lead
	if lead == 0 {
		lead = DefaultLead
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.StartTime, loc)
	if err != nil {
		return fmt.Errorf("unparseable appointment time %q %q: %w", appt.Date, appt.StartTime, err)
	}
	fireAt := startsAt.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(Payload{
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ClientName:     appt.ClientName,
		ClientPhone:    appt.ClientPhone,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Debug("reminder scheduled",
		zap.String("appointmentID", appt.ID), zap.Time("fireAt", fireAt))
	return nil
}

// NopScheduler drops reminders; used when the queue is not configured.
type NopScheduler struct{}

func (NopScheduler) Schedule(ctx context.Context, appt *models.Appointment, loc *time.Location) error {
	return nil
}
