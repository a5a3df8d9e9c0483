// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	auditRepo "agendly/database/repository/audit"
	"agendly/services/admin"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the platform back-office. Access is gated by the admin
// token middleware; none of these endpoints carry a professional identity.
type AdminHandler struct {
	Service admin.AdminService
}

func (h *AdminHandler) CreatePlanHandler(c *gin.Context) {
	var req admin.PlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	plan, err := h.Service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to create plan", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *AdminHandler) UpdatePlanHandler(c *gin.Context) {
	var req admin.PlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	plan, err := h.Service.UpdatePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to update plan", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *AdminHandler) ListPlansHandler(c *gin.Context) {
	plans, err := h.Service.ListPlans(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *AdminHandler) DeletePlanHandler(c *gin.Context) {
	if err := h.Service.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

func (h *AdminHandler) ListProfessionalsHandler(c *gin.Context) {
	pros, err := h.Service.ListProfessionals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list professionals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": pros})
}

func (h *AdminHandler) CreateWebhookEndpointHandler(c *gin.Context) {
	var req admin.WebhookEndpointInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	endpoint, err := h.Service.CreateWebhookEndpoint(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The secret is returned once, at creation.
	c.JSON(http.StatusCreated, gin.H{"endpoint": endpoint, "secret": endpoint.Secret})
}

func (h *AdminHandler) UpdateWebhookEndpointHandler(c *gin.Context) {
	var req admin.WebhookEndpointInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	endpoint, err := h.Service.UpdateWebhookEndpoint(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

func (h *AdminHandler) ListWebhookEndpointsHandler(c *gin.Context) {
	endpoints, err := h.Service.ListWebhookEndpoints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list webhook endpoints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}

func (h *AdminHandler) DeleteWebhookEndpointHandler(c *gin.Context) {
	if err := h.Service.DeleteWebhookEndpoint(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete webhook endpoint"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "webhook endpoint deleted"})
}

func (h *AdminHandler) TestWebhookEndpointHandler(c *gin.Context) {
	if err := h.Service.TestWebhookEndpoint(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue test delivery"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "test delivery enqueued"})
}

// QueryAuditLogHandler filters by actor, actorType, resource, action and a
// from/to RFC 3339 window.
func (h *AdminHandler) QueryAuditLogHandler(c *gin.Context) {
	f := auditRepo.Filter{
		ActorID:   c.Query("actor"),
		ActorType: c.Query("actorType"),
		Resource:  c.Query("resource"),
		Action:    c.Query("action"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		f.To = t
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		f.Limit = n
	}

	logs, err := h.Service.QueryAuditLog(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query audit log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": logs})
}

func (h *AdminHandler) SetMaintenanceModeHandler(c *gin.Context) {
	var req struct {
		On bool `json:"on"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetMaintenanceMode(c.Request.Context(), req.On); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": req.On})
}

func (h *AdminHandler) MaintenanceModeHandler(c *gin.Context) {
	on, err := h.Service.MaintenanceMode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": on})
}
