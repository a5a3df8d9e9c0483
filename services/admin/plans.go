// File: services/admin/plans.go
package admin

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/product"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PlanInput is the create/update payload for a subscription tier.
type PlanInput struct {
	Name           string   `json:"name" validate:"required,min=2"`
	PriceCents     int64    `json:"price_cents" validate:"min=0"`
	Currency       string   `json:"currency" validate:"required,len=3,lowercase"`
	MaxTeamMembers int      `json:"max_team_members" validate:"min=0"`
	Features       []string `json:"features"`
	Active         *bool    `json:"active"`
}

func (s *DefaultAdminService) CreatePlan(ctx context.Context, input PlanInput) (*models.SubscriptionPlan, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	plan := &models.SubscriptionPlan{
		ID:             uuid.New().String(),
		Name:           input.Name,
		PriceCents:     input.PriceCents,
		Currency:       input.Currency,
		MaxTeamMembers: input.MaxTeamMembers,
		Features:       input.Features,
		Active:         true,
		CreatedAt:      time.Now(),
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if s.StripeEnabled {
		if err := s.syncPlanToStripe(plan); err != nil {
			return nil, err
		}
	}

	if err := s.Plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	s.Audit.Record(ctx, "", models.ActorAdmin, "plan.create", "subscription_plans", plan.ID, nil)
	utils.GetLogger().Info("subscription plan created",
		zap.String("planID", plan.ID), zap.String("name", plan.Name))
	return plan, nil
}

func (s *DefaultAdminService) UpdatePlan(ctx context.Context, id string, input PlanInput) (*models.SubscriptionPlan, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	plan, err := s.Plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	priceChanged := plan.PriceCents != input.PriceCents || plan.Currency != input.Currency

	plan.Name = input.Name
	plan.PriceCents = input.PriceCents
	plan.Currency = input.Currency
	plan.MaxTeamMembers = input.MaxTeamMembers
	plan.Features = input.Features
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if s.StripeEnabled {
		if plan.StripeProductID == "" {
			if err := s.syncPlanToStripe(plan); err != nil {
				return nil, err
			}
		} else {
			if _, err := product.Update(plan.StripeProductID, &stripe.ProductParams{
				Name: stripe.String(plan.Name),
			}); err != nil {
				return nil, fmt.Errorf("failed to update stripe product: %w", err)
			}
			// Stripe prices are immutable; a price change mints a new one.
			if priceChanged {
				newPrice, err := s.createStripePrice(plan)
				if err != nil {
					return nil, err
				}
				plan.StripePriceID = newPrice
			}
		}
	}

	fields := bson.M{
		"name":              plan.Name,
		"price_cents":       plan.PriceCents,
		"currency":          plan.Currency,
		"max_team_members":  plan.MaxTeamMembers,
		"features":          plan.Features,
		"active":            plan.Active,
		"stripe_product_id": plan.StripeProductID,
		"stripe_price_id":   plan.StripePriceID,
	}
	if err := s.Plans.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	s.Audit.Record(ctx, "", models.ActorAdmin, "plan.update", "subscription_plans", id, nil)
	return plan, nil
}

func (s *DefaultAdminService) ListPlans(ctx context.Context, activeOnly bool) ([]models.SubscriptionPlan, error) {
	plans, err := s.Plans.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// DeletePlan retires the plan locally and archives the Stripe product so no
// new checkouts can reference it. Existing subscriptions keep billing.
func (s *DefaultAdminService) DeletePlan(ctx context.Context, id string) error {
	plan, err := s.Plans.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return ErrNotFound
	}
	if s.StripeEnabled && plan.StripeProductID != "" {
		if _, err := product.Update(plan.StripeProductID, &stripe.ProductParams{
			Active: stripe.Bool(false),
		}); err != nil {
			utils.GetLogger().Error("failed to archive stripe product",
				zap.String("productID", plan.StripeProductID), zap.Error(err))
		}
	}
	if err := s.Plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	s.Audit.Record(ctx, "", models.ActorAdmin, "plan.delete", "subscription_plans", id, nil)
	return nil
}

func (s *DefaultAdminService) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	pros, err := s.Professionals.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return pros, nil
}

// syncPlanToStripe mirrors the plan as a product plus a monthly recurring
// price and records both IDs on the plan.
func (s *DefaultAdminService) syncPlanToStripe(plan *models.SubscriptionPlan) error {
	params := &stripe.ProductParams{Name: stripe.String(plan.Name)}
	params.AddMetadata("plan_id", plan.ID)
	prod, err := product.New(params)
	if err != nil {
		return fmt.Errorf("failed to create stripe product: %w", err)
	}
	plan.StripeProductID = prod.ID

	priceID, err := s.createStripePrice(plan)
	if err != nil {
		return err
	}
	plan.StripePriceID = priceID
	return nil
}

func (s *DefaultAdminService) createStripePrice(plan *models.SubscriptionPlan) (string, error) {
	p, err := price.New(&stripe.PriceParams{
		Product:    stripe.String(plan.StripeProductID),
		UnitAmount: stripe.Int64(plan.PriceCents),
		Currency:   stripe.String(plan.Currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stripe price: %w", err)
	}
	return p.ID, nil
}
