package models

// Service is a bookable offering (e.g. "Initial consultation", "Follow-up").
type Service struct {
	ID              string  `bson:"id" json:"id"`
	ProfessionalID  string  `bson:"professional_id" json:"professional_id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64 `bson:"price,omitempty" json:"price,omitempty"`
	Active          bool    `bson:"active" json:"active"`
}

// InsurancePlan is a payer accepted by the professional. Clients pick one (or
// "private") during the public booking flow.
type InsurancePlan struct {
	ID             string `bson:"id" json:"id"`
	ProfessionalID string `bson:"professional_id" json:"professional_id"`
	Name           string `bson:"name" json:"name"`
	Active         bool   `bson:"active" json:"active"`
}
