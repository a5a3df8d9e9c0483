package models

import "time"

// Professional is the tenant of the platform: the person (or practice) whose
// calendar is being booked. Every other record hangs off a professional ID.
type Professional struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Slug         string       `bson:"slug" json:"slug"` // public booking page key, unique
	Email        string       `bson:"email" json:"email"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty    string       `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Bio          string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Timezone     string       `bson:"timezone" json:"timezone"` // IANA name, e.g. "America/Sao_Paulo"
	PasswordHash string       `bson:"password_hash" json:"-"`
	TokenHash    string       `bson:"token_hash,omitempty" json:"-"`
	Subscription Subscription `bson:"subscription,omitempty" json:"subscription,omitzero"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}

// Subscription ties a professional to one of the admin-managed plans.
type Subscription struct {
	PlanID           string `bson:"plan_id,omitempty" json:"plan_id,omitempty"`
	Status           string `bson:"status,omitempty" json:"status,omitempty"` // "trial", "active", "past_due", "canceled"
	StripeCustomerID string `bson:"stripe_customer_id,omitempty" json:"-"`
}

// PublicProfile is the subset of Professional exposed on the public booking page.
type PublicProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Specialty string `json:"specialty,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Timezone  string `json:"timezone"`
}

// Public strips credentials and billing details for the booking page.
func (p *Professional) Public() PublicProfile {
	return PublicProfile{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Specialty: p.Specialty,
		Bio:       p.Bio,
		Timezone:  p.Timezone,
	}
}
