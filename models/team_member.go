package models

// TeamMember is an additional bookable calendar under a professional's
// account (e.g. an associate or assistant). Templates and appointments may be
// scoped to a team member; when they are not, they belong to the
// professional's own calendar.
type TeamMember struct {
	ID             string `bson:"id" json:"id"`
	ProfessionalID string `bson:"professional_id" json:"professional_id"`
	Name           string `bson:"name" json:"name"`
	Role           string `bson:"role,omitempty" json:"role,omitempty"`
	Email          string `bson:"email,omitempty" json:"email,omitempty"`
	Active         bool   `bson:"active" json:"active"`
}
