// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"agendly/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the dashboard CRUD for team members, services,
// insurance plans and clients. The shapes are uniform enough that each
// entity gets the same four endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func (h *CatalogHandler) CreateTeamMemberHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.TeamMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	member, err := h.Service.CreateTeamMember(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *CatalogHandler) UpdateTeamMemberHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.TeamMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	member, err := h.Service.UpdateTeamMember(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CatalogHandler) ListTeamMembersHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	members, err := h.Service.ListTeamMembers(c.Request.Context(), id, c.Query("active") == "true")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": members})
}

func (h *CatalogHandler) DeleteTeamMemberHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteTeamMember(c.Request.Context(), id, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc, err := h.Service.CreateService(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc, err := h.Service.UpdateService(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	services, err := h.Service.ListServices(c.Request.Context(), id, c.Query("active") == "true")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteService(c.Request.Context(), id, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

func (h *CatalogHandler) CreateInsurancePlanHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.InsurancePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	plan, err := h.Service.CreateInsurancePlan(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *CatalogHandler) UpdateInsurancePlanHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.InsurancePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	plan, err := h.Service.UpdateInsurancePlan(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) ListInsurancePlansHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	plans, err := h.Service.ListInsurancePlans(c.Request.Context(), id, c.Query("active") == "true")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insurance_plans": plans})
}

func (h *CatalogHandler) DeleteInsurancePlanHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteInsurancePlan(c.Request.Context(), id, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "insurance plan deleted"})
}

func (h *CatalogHandler) CreateClientHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.ClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	client, err := h.Service.CreateClient(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *CatalogHandler) UpdateClientHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req catalog.ClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	client, err := h.Service.UpdateClient(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *CatalogHandler) ListClientsHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	clients, err := h.Service.ListClients(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *CatalogHandler) DeleteClientHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteClient(c.Request.Context(), id, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
