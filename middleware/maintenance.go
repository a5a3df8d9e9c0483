// File: middleware/maintenance.go
package middleware

import (
	"net/http"

	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MaintenanceMiddleware returns 503 for all gated routes while the Redis
// maintenance flag is set. Admin routes and the health endpoint are mounted
// outside this middleware so operators can lift the flag and probes keep
// working. If Redis itself is unreachable, traffic passes: an outage of the
// flag store must not take the API down with it.
func MaintenanceMiddleware(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := client.Get(c.Request.Context(), utils.MaintenanceModeKey).Result()
		if err == redis.Nil {
			c.Next()
			return
		}
		if err != nil {
			zap.L().Warn("Maintenance flag check failed", zap.Error(err))
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "The platform is under maintenance. Please try again shortly.",
		})
	}
}
