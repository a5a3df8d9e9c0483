// File: services/professional/signup.go
package professional

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued bearer tokens.
const tokenTTL = 30 * 24 * time.Hour

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Timezone  string `json:"timezone" validate:"omitempty,timezone_name"`
	Slug      string `json:"slug" validate:"omitempty,min=3,max=60"`
}

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter and one digit.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every run of non-alphanumeric
// characters to a single hyphen. Used for the public booking page URL.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Register creates a professional account, issues a token and stores its
// hash. The plaintext token leaves only in the response.
func (s *DefaultProfessionalService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := verifyPasswordComplexity(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		utils.GetLogger().Error("failed to check for existing professional", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("name does not produce a usable slug")
	}
	if taken, err := s.Repo.GetBySlug(ctx, slug); err != nil {
		utils.GetLogger().Error("failed to check slug", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	} else if taken != nil {
		return nil, ErrSlugTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tz := input.Timezone
	if tz == "" {
		tz = s.DefaultTZ
	}

	now := time.Now()
	professional := &models.Professional{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Slug:         slug,
		Email:        strings.ToLower(input.Email),
		Phone:        input.Phone,
		Specialty:    input.Specialty,
		Bio:          input.Bio,
		Timezone:     tz,
		PasswordHash: string(hash),
		Subscription: models.Subscription{Status: "trial"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(professional.ID, professional.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	professional.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, professional); err != nil {
		utils.GetLogger().Error("failed to create professional", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.Audit.Record(ctx, professional.ID, models.ActorProfessional, "professional.register",
		"professionals", professional.ID, nil)
	if err := s.Webhooks.Dispatch(ctx, models.EventProfessionalCreated, professional.Public()); err != nil {
		utils.GetLogger().Error("failed to dispatch signup webhook",
			zap.String("professionalID", professional.ID), zap.Error(err))
	}

	utils.GetLogger().Info("professional registered",
		zap.String("professionalID", professional.ID), zap.String("slug", slug))
	return &AuthResponse{
		ID:    professional.ID,
		Slug:  professional.Slug,
		Token: token,
		Name:  professional.Name,
		Email: professional.Email,
	}, nil
}
