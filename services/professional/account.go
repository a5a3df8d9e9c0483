// File: services/professional/account.go
package professional

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateProfileInput is the whitelist of editable profile fields. Slug and
// email stay fixed after signup; credentials change through dedicated flows.
type UpdateProfileInput struct {
	Name      string `json:"name" validate:"omitempty,min=2"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Timezone  string `json:"timezone" validate:"omitempty,timezone_name"`
}

func (s *DefaultProfessionalService) GetProfile(ctx context.Context, professionalID string) (*models.Professional, error) {
	rec, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional: %w", err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *DefaultProfessionalService) UpdateProfile(ctx context.Context, professionalID string, input UpdateProfileInput) (*models.Professional, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	fields := bson.M{"updated_at": time.Now()}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if input.Specialty != "" {
		fields["specialty"] = input.Specialty
	}
	if input.Bio != "" {
		fields["bio"] = input.Bio
	}
	if input.Timezone != "" {
		fields["timezone"] = input.Timezone
	}

	if err := s.Repo.Update(ctx, professionalID, fields); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "professional.update",
		"professionals", professionalID, nil)
	return s.GetProfile(ctx, professionalID)
}

// DeleteAccount removes the professional record. Dependent records are kept
// for the retention window; the slug is freed immediately.
func (s *DefaultProfessionalService) DeleteAccount(ctx context.Context, professionalID string) error {
	rec, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	if err := s.Repo.Delete(ctx, professionalID); err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	if rec != nil {
		s.invalidateAuthCache(ctx, rec.TokenHash)
	}
	s.Audit.Record(ctx, professionalID, models.ActorProfessional, "professional.delete",
		"professionals", professionalID, nil)
	utils.GetLogger().Info("professional deleted", zap.String("professionalID", professionalID))
	return nil
}
