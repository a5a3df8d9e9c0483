package models

// TimeSlotTemplate is a recurring weekly availability rule. Wall-clock times
// are "HH:MM" strings in the professional's timezone; the availability engine
// expands a day's templates into concrete bookable slots.
type TimeSlotTemplate struct {
	ID                   string `bson:"id" json:"id"`
	ProfessionalID       string `bson:"professional_id" json:"professional_id"`
	TeamMemberID         string `bson:"team_member_id,omitempty" json:"team_member_id,omitempty"`
	DayOfWeek            int    `bson:"day_of_week" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime            string `bson:"start_time" json:"start_time"`
	EndTime              string `bson:"end_time" json:"end_time"`
	AppointmentDuration  int    `bson:"appointment_duration_minutes,omitempty" json:"appointment_duration_minutes,omitempty"` // minutes, 60 when unset
	LunchBreakStart      string `bson:"lunch_break_start,omitempty" json:"lunch_break_start,omitempty"`
	LunchBreakEnd        string `bson:"lunch_break_end,omitempty" json:"lunch_break_end,omitempty"`
}

// AvailableSlot is a concrete, date-specific bookable window produced by the
// availability engine. Never persisted.
type AvailableSlot struct {
	Date         string `json:"date"` // "YYYY-MM-DD"
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TeamMemberID string `json:"team_member_id,omitempty"`
}
