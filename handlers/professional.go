// File: handlers/professional.go
package handlers

import (
	"errors"
	"net/http"

	"agendly/services/professional"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalHandler serves the professional's own account and template
// endpoints.
type ProfessionalHandler struct {
	Service professional.ProfessionalService
}

func (h *ProfessionalHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req professional.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, professional.ErrEmailTaken) || errors.Is(err, professional.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Professional registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfessionalHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, professional.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Professional login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfessionalHandler) SignOutHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.SignOut(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h *ProfessionalHandler) MeHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	rec, err := h.Service.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, professional.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProfessionalHandler) UpdateMeHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req professional.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	rec, err := h.Service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProfessionalHandler) DeleteMeHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteAccount(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Account deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

func (h *ProfessionalHandler) CreateTemplateHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req professional.TemplateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	t, err := h.Service.CreateTemplate(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *ProfessionalHandler) UpdateTemplateHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	var req professional.TemplateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	t, err := h.Service.UpdateTemplate(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ProfessionalHandler) ListTemplatesHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	templates, err := h.Service.ListTemplates(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list templates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *ProfessionalHandler) DeleteTemplateHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteTemplate(c.Request.Context(), id, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}
