package models

import "time"

// Client is a person who books appointments with a professional. Created on
// first booking or by the professional through the dashboard.
type Client struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professional_id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
