// File: services/admin/maintenance.go
package admin

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SetMaintenanceMode flips the Redis flag the middleware gate checks. The
// flag carries no TTL: maintenance stays on until explicitly lifted.
func (s *DefaultAdminService) SetMaintenanceMode(ctx context.Context, on bool) error {
	if on {
		if err := s.Redis.Set(ctx, utils.MaintenanceModeKey, "1", 0).Err(); err != nil {
			return fmt.Errorf("failed to enable maintenance mode: %w", err)
		}
	} else {
		if err := s.Redis.Del(ctx, utils.MaintenanceModeKey).Err(); err != nil {
			return fmt.Errorf("failed to disable maintenance mode: %w", err)
		}
	}
	s.Audit.Record(ctx, "", models.ActorAdmin, fmt.Sprintf("maintenance.%v", on), "platform", "", nil)
	utils.GetLogger().Warn("maintenance mode changed", zap.Bool("on", on))
	return nil
}

func (s *DefaultAdminService) MaintenanceMode(ctx context.Context) (bool, error) {
	_, err := s.Redis.Get(ctx, utils.MaintenanceModeKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read maintenance flag: %w", err)
	}
	return true, nil
}
