package booking

import (
	"context"

	appointmentRepo "agendly/database/repository/appointment"
	clientRepo "agendly/database/repository/client"
	insuranceRepo "agendly/database/repository/insurance"
	serviceRepo "agendly/database/repository/service"
	teamRepo "agendly/database/repository/teammember"
	timeslotRepo "agendly/database/repository/timeslot"
	"agendly/models"
	"agendly/services/audit"
	"agendly/services/reminder"
	"agendly/services/webhook"
	"agendly/utils"
)

// SessionInput carries the payload of one wizard step. Only the fields the
// step's event consumes are read.
type SessionInput struct {
	TeamMemberID    string `json:"team_member_id"`
	InsurancePlanID string `json:"insurance_plan_id"`
	ServiceID       string `json:"service_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ClientEmail     string `json:"client_email"`
}

// BookingService drives the public booking wizard end to end.
type BookingService interface {
	// InitiateSession opens a wizard for a professional's booking page.
	InitiateSession(ctx context.Context, professional *models.Professional) (*models.BookingSession, error)
	// AdvanceSession applies one event to the session. Advancing past the
	// date step computes availability; the fresh slot list rides on the
	// returned session.
	AdvanceSession(ctx context.Context, sessionID string, event Event, input SessionInput) (*models.BookingSession, error)
	// ConfirmBooking writes the appointment for a session at StepConfirmed.
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
	// Availability computes bookable slots for a date outside any session
	// (the calendar month view calls this once per visible day).
	Availability(ctx context.Context, professional *models.Professional, teamMemberID, date string) ([]models.AvailableSlot, error)
}

// SessionStore persists wizard sessions between requests. *utils.Cache is
// the production store (Redis, 30-minute TTL).
type SessionStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, key string) error
}

var _ SessionStore = (*utils.Cache)(nil)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Sessions      SessionStore
	Professionals ProfessionalSource
	Templates     timeslotRepo.TemplateRepository
	Appointments  appointmentRepo.AppointmentRepository
	Clients       clientRepo.ClientRepository
	Services      serviceRepo.ServiceRepository
	Insurance     insuranceRepo.InsurancePlanRepository
	TeamMembers   teamRepo.TeamMemberRepository
	Webhooks      webhook.Dispatcher
	Reminders     reminder.Scheduler
	Audit         audit.Recorder
	DefaultTZ     string
}

// ProfessionalSource is the slice of the professional repository the booking
// flow needs; narrowed so tests can fake it cheaply.
type ProfessionalSource interface {
	GetByID(ctx context.Context, id string) (*models.Professional, error)
}
