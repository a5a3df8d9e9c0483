// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"agendly/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the professional's appointment book.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// ListAppointmentsHandler lists by single date (?date=) or range (?from=&to=).
func (h *ScheduleHandler) ListAppointmentsHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	if date := c.Query("date"); date != "" {
		appts, err := h.Service.ListByDay(c.Request.Context(), id, c.Query("teamMemberId"), date)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either date or from/to query parameters are required"})
		return
	}
	appts, err := h.Service.ListByRange(c.Request.Context(), id, from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *ScheduleHandler) CancelAppointmentHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	appt, err := h.Service.Cancel(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *ScheduleHandler) CompleteAppointmentHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	appt, err := h.Service.Complete(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
