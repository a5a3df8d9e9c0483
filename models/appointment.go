package models

import "time"

// Appointment statuses. Only non-canceled appointments occupy their window.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCanceled  = "canceled"
)

// Appointment is a confirmed reservation of a slot on a professional's (or
// team member's) calendar.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	ProfessionalID  string    `bson:"professional_id" json:"professional_id"`
	TeamMemberID    string    `bson:"team_member_id,omitempty" json:"team_member_id,omitempty"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	InsurancePlanID string    `bson:"insurance_plan_id,omitempty" json:"insurance_plan_id,omitempty"`
	ClientID        string    `bson:"client_id,omitempty" json:"client_id,omitempty"`
	ClientName      string    `bson:"client_name" json:"client_name"`
	ClientPhone     string    `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientEmail     string    `bson:"client_email,omitempty" json:"client_email,omitempty"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime       string    `bson:"start_time" json:"start_time"`
	EndTime         string    `bson:"end_time" json:"end_time"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// Window returns the occupied interval as "HH:MM" bounds.
func (a *Appointment) Window() (start, end string) {
	return a.StartTime, a.EndTime
}
