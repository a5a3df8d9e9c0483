// File: handlers/public.go
package handlers

import (
	"errors"
	"net/http"

	professionalRepo "agendly/database/repository/professional"
	"agendly/models"
	"agendly/services/booking"
	"agendly/services/catalog"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicHandler serves the booking page: everything under /api/public/:slug
// is unauthenticated and read-mostly, so slug resolution goes through a
// short-TTL cache.
type PublicHandler struct {
	Professionals professionalRepo.ProfessionalRepository
	SlugCache     *utils.Cache
	Booking       booking.BookingService
	Catalog       catalog.CatalogService
}

// resolveSlug loads the professional behind the page, via the cache.
func (h *PublicHandler) resolveSlug(c *gin.Context) (*models.Professional, bool) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	var cached models.Professional
	if h.SlugCache != nil {
		if err := h.SlugCache.Get(ctx, slug, &cached); err == nil {
			return &cached, true
		} else if !errors.Is(err, utils.ErrCacheMiss) {
			utils.GetLogger().Warn("slug cache read failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	professional, err := h.Professionals.GetBySlug(ctx, slug)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve booking page", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	if professional == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking page not found"})
		return nil, false
	}
	if h.SlugCache != nil {
		if err := h.SlugCache.Set(ctx, slug, professional); err != nil {
			utils.GetLogger().Warn("slug cache write failed", zap.String("slug", slug), zap.Error(err))
		}
	}
	return professional, true
}

func (h *PublicHandler) ProfileHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, professional.Public())
}

func (h *PublicHandler) TeamMembersHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	members, err := h.Catalog.ListTeamMembers(c.Request.Context(), professional.ID, true)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": members})
}

func (h *PublicHandler) ServicesHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	services, err := h.Catalog.ListServices(c.Request.Context(), professional.ID, true)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *PublicHandler) InsurancePlansHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	plans, err := h.Catalog.ListInsurancePlans(c.Request.Context(), professional.ID, true)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insurance_plans": plans})
}

// AvailabilityHandler returns the open slots for one date, outside any
// wizard session. Used by the calendar view.
func (h *PublicHandler) AvailabilityHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	slots, err := h.Booking.Availability(c.Request.Context(), professional, c.Query("teamMemberId"), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if slots == nil {
		slots = []models.AvailableSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

func (h *PublicHandler) StartSessionHandler(c *gin.Context) {
	professional, ok := h.resolveSlug(c)
	if !ok {
		return
	}
	session, err := h.Booking.InitiateSession(c.Request.Context(), professional)
	if err != nil {
		utils.GetLogger().Error("Failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *PublicHandler) AdvanceSessionHandler(c *gin.Context) {
	var req struct {
		Event string               `json:"event" binding:"required"`
		Input booking.SessionInput `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	session, err := h.Booking.AdvanceSession(c.Request.Context(), c.Param("sessionId"), booking.Event(req.Event), req.Input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *PublicHandler) ConfirmSessionHandler(c *gin.Context) {
	appointment, err := h.Booking.ConfirmBooking(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *PublicHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Booking.CancelSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.GetLogger().Error("Failed to cancel booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session canceled"})
}
