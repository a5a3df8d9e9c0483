package models

import "time"

// BookingStep is the named state of the public booking wizard. Steps advance
// through an explicit transition table (services/booking) rather than a bare
// counter, so an out-of-order request is a typed error instead of undefined
// behavior.
type BookingStep string

const (
	StepTeamMember BookingStep = "team_member"
	StepInsurance  BookingStep = "insurance"
	StepService    BookingStep = "service"
	StepDate       BookingStep = "date"
	StepTime       BookingStep = "time"
	StepClientInfo BookingStep = "client_info"
	StepConfirmed  BookingStep = "confirmed"
)

// BookingSession holds the public booking wizard's progress between requests.
// Stored in Redis under a TTL; never written to Mongo.
type BookingSession struct {
	SessionID       string          `json:"session_id"`
	ProfessionalID  string          `json:"professional_id"`
	Step            BookingStep     `json:"step"`
	TeamMemberID    string          `json:"team_member_id,omitempty"`
	InsurancePlanID string          `json:"insurance_plan_id,omitempty"`
	ServiceID       string          `json:"service_id,omitempty"`
	Date            string          `json:"date,omitempty"` // "YYYY-MM-DD"
	StartTime       string          `json:"start_time,omitempty"`
	EndTime         string          `json:"end_time,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	ClientPhone     string          `json:"client_phone,omitempty"`
	ClientEmail     string          `json:"client_email,omitempty"`
	Availability    []AvailableSlot `json:"availability,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
