// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	professionalRepo "agendly/database/repository/professional"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates professionals. The token must both verify
// and match the hash stored on the account, so a sign-out (or token rotation)
// cuts off old tokens even before they expire. The hash-to-ID mapping is
// cached to keep the Mongo lookup off the hot path.
func JWTAuthMiddleware(repo professionalRepo.ProfessionalRepository, authCache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()

		if authCache != nil {
			var cachedID string
			if err := authCache.Get(ctx, computedHash, &cachedID); err == nil && cachedID != "" {
				c.Set("professionalID", cachedID)
				c.Next()
				return
			}
		}

		professional, err := repo.GetByTokenHash(ctx, computedHash)
		if err != nil {
			utils.GetLogger().Error("Token hash lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}
		if professional == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or account not found"})
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, computedHash, professional.ID); err != nil {
				utils.GetLogger().Warn("Failed to cache auth lookup", zap.Error(err))
			}
		}

		c.Set("professionalID", professional.ID)
		c.Next()
	}
}
