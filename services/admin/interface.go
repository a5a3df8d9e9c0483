// File: services/admin/interface.go
package admin

import (
	"context"
	"errors"

	auditRepo "agendly/database/repository/audit"
	planRepo "agendly/database/repository/plan"
	professionalRepo "agendly/database/repository/professional"
	webhookRepo "agendly/database/repository/webhook"
	"agendly/models"
	"agendly/services/audit"
	"agendly/services/webhook"

	"github.com/go-redis/redis/v8"
)

var ErrNotFound = errors.New("admin record not found")

// AdminService is the platform back-office: subscription plans, webhook
// endpoints, the audit trail, and the maintenance switch.
type AdminService interface {
	CreatePlan(ctx context.Context, input PlanInput) (*models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, input PlanInput) (*models.SubscriptionPlan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]models.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id string) error

	ListProfessionals(ctx context.Context) ([]models.Professional, error)

	CreateWebhookEndpoint(ctx context.Context, input WebhookEndpointInput) (*models.WebhookEndpoint, error)
	UpdateWebhookEndpoint(ctx context.Context, id string, input WebhookEndpointInput) (*models.WebhookEndpoint, error)
	ListWebhookEndpoints(ctx context.Context) ([]models.WebhookEndpoint, error)
	DeleteWebhookEndpoint(ctx context.Context, id string) error
	// TestWebhookEndpoint enqueues a synthetic event so operators can verify
	// receiver wiring end to end.
	TestWebhookEndpoint(ctx context.Context, id string) error

	QueryAuditLog(ctx context.Context, f auditRepo.Filter) ([]models.AuditLog, error)

	SetMaintenanceMode(ctx context.Context, on bool) error
	MaintenanceMode(ctx context.Context) (bool, error)
}

// DefaultAdminService is the production implementation. StripeEnabled gates
// plan sync so local setups run without a Stripe key.
type DefaultAdminService struct {
	Plans         planRepo.PlanRepository
	Professionals professionalRepo.ProfessionalRepository
	Endpoints     webhookRepo.WebhookRepository
	AuditLogs     auditRepo.AuditRepository
	Webhooks      webhook.Dispatcher
	Audit         audit.Recorder
	Redis         *redis.Client
	StripeEnabled bool
}
