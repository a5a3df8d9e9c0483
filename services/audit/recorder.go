// File: services/audit/recorder.go
package audit

import (
	"context"
	"time"

	auditRepo "agendly/database/repository/audit"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder appends audit entries. Recording is best-effort: a failed insert
// is logged and never fails the action being audited.
type Recorder interface {
	Record(ctx context.Context, actorID, actorType, action, resource, resourceID string, metadata map[string]string)
}

// DefaultRecorder writes entries straight to the audit repository.
type DefaultRecorder struct {
	Repo auditRepo.AuditRepository
}

func (r *DefaultRecorder) Record(ctx context.Context, actorID, actorType, action, resource, resourceID string, metadata map[string]string) {
	entry := &models.AuditLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		ActorType:  actorType,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	}
	if err := r.Repo.Insert(ctx, entry); err != nil {
		utils.GetLogger().Error("failed to record audit entry",
			zap.String("action", action), zap.Error(err))
	}
}
