// File: handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"

	"agendly/services/booking"
	"agendly/services/catalog"
	"agendly/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// professionalID retrieves the authenticated professional's ID set by the
// auth middleware. Writes a 401 and returns false when absent.
func professionalID(c *gin.Context) (string, bool) {
	v, exists := c.Get("professionalID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid professional ID in context"})
		return "", false
	}
	return id, true
}

// writeServiceError maps a service-layer error to an HTTP status. Unmatched
// errors become 500s with a generic body; the detail stays in the logs.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case isAny(err, booking.ErrSessionNotFound, catalog.ErrNotFound, schedule.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isAny(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isAny(err, booking.ErrSlotNotOffered, booking.ErrInvalidTransition, booking.ErrUnknownResource,
		catalog.ErrTeamLimitReached, schedule.ErrInvalidStatusChange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		if _, ok := err.(validator.ValidationErrors); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
