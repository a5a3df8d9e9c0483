// File: services/professional/interface.go
package professional

import (
	"context"
	"errors"

	professionalRepo "agendly/database/repository/professional"
	timeslotRepo "agendly/database/repository/timeslot"
	"agendly/models"
	"agendly/services/audit"
	"agendly/services/webhook"
	"agendly/utils"
)

// Typed errors handlers branch on.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrSlugTaken          = errors.New("booking page slug already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("professional not found")
)

// AuthResponse carries the ID and the bearer token handed out on signup and
// signin. Only the hash of the token is stored.
type AuthResponse struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AuthStore caches token-hash-to-ID lookups for the auth middleware. Keys are
// token hashes: revoking a token means invalidating its hash, never the
// account ID.
type AuthStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, key string) error
}

var _ AuthStore = (*utils.Cache)(nil)

// ProfessionalService owns the professional's account lifecycle and the
// weekly timeslot templates behind their calendar.
type ProfessionalService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, professionalID string) error
	GetProfile(ctx context.Context, professionalID string) (*models.Professional, error)
	UpdateProfile(ctx context.Context, professionalID string, input UpdateProfileInput) (*models.Professional, error)
	DeleteAccount(ctx context.Context, professionalID string) error

	CreateTemplate(ctx context.Context, professionalID string, input TemplateInput) (*models.TimeSlotTemplate, error)
	UpdateTemplate(ctx context.Context, professionalID, templateID string, input TemplateInput) (*models.TimeSlotTemplate, error)
	ListTemplates(ctx context.Context, professionalID string) ([]models.TimeSlotTemplate, error)
	DeleteTemplate(ctx context.Context, professionalID, templateID string) error
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo      professionalRepo.ProfessionalRepository
	Templates timeslotRepo.TemplateRepository
	AuthCache AuthStore
	Webhooks  webhook.Dispatcher
	Audit     audit.Recorder
	DefaultTZ string
}
