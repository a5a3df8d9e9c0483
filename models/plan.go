package models

import "time"

// SubscriptionPlan is an admin-managed tier professionals subscribe to.
// When Stripe is configured the plan is mirrored as a product + recurring
// price; the Stripe IDs are recorded here after sync.
type SubscriptionPlan struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	PriceCents      int64     `bson:"price_cents" json:"price_cents"`
	Currency        string    `bson:"currency" json:"currency"` // ISO 4217, lowercase (stripe convention)
	MaxTeamMembers  int       `bson:"max_team_members" json:"max_team_members"`
	Features        []string  `bson:"features,omitempty" json:"features,omitempty"`
	StripeProductID string    `bson:"stripe_product_id,omitempty" json:"stripe_product_id,omitempty"`
	StripePriceID   string    `bson:"stripe_price_id,omitempty" json:"stripe_price_id,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
