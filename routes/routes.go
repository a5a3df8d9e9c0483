// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"agendly/handlers"
	"agendly/middleware"
	"agendly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the unauthenticated booking-page endpoints.
// The whole group sits behind the maintenance gate.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public/:slug")
	api.Use(middleware.MaintenanceMiddleware(hb.MaintenanceRedis))
	{
		api.GET("", hb.Public.ProfileHandler)
		api.GET("/team-members", hb.Public.TeamMembersHandler)
		api.GET("/services", hb.Public.ServicesHandler)
		api.GET("/insurance-plans", hb.Public.InsurancePlansHandler)
		api.GET("/availability", hb.Public.AvailabilityHandler)

		api.POST("/sessions", hb.Public.StartSessionHandler)
		api.PUT("/sessions/:sessionId", hb.Public.AdvanceSessionHandler)
		api.POST("/sessions/:sessionId/confirm", hb.Public.ConfirmSessionHandler)
		api.DELETE("/sessions/:sessionId", hb.Public.CancelSessionHandler)
	}
}

// RegisterProfessionalRoutes registers the dashboard endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	api.Use(middleware.MaintenanceMiddleware(hb.MaintenanceRedis))
	{
		api.POST("/register", hb.Professional.RegisterHandler)
		api.POST("/login", hb.Professional.LoginHandler)

		// Protected routes (require authentication).
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProfessionalRepo, hb.AuthCache))

		protected.POST("/logout", hb.Professional.SignOutHandler)
		protected.GET("/me", hb.Professional.MeHandler)
		protected.PATCH("/me", hb.Professional.UpdateMeHandler)
		protected.DELETE("/me", hb.Professional.DeleteMeHandler)

		protected.POST("/templates", hb.Professional.CreateTemplateHandler)
		protected.GET("/templates", hb.Professional.ListTemplatesHandler)
		protected.PUT("/templates/:id", hb.Professional.UpdateTemplateHandler)
		protected.DELETE("/templates/:id", hb.Professional.DeleteTemplateHandler)

		protected.POST("/team-members", hb.Catalog.CreateTeamMemberHandler)
		protected.GET("/team-members", hb.Catalog.ListTeamMembersHandler)
		protected.PUT("/team-members/:id", hb.Catalog.UpdateTeamMemberHandler)
		protected.DELETE("/team-members/:id", hb.Catalog.DeleteTeamMemberHandler)

		protected.POST("/services", hb.Catalog.CreateServiceHandler)
		protected.GET("/services", hb.Catalog.ListServicesHandler)
		protected.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)

		protected.POST("/insurance-plans", hb.Catalog.CreateInsurancePlanHandler)
		protected.GET("/insurance-plans", hb.Catalog.ListInsurancePlansHandler)
		protected.PUT("/insurance-plans/:id", hb.Catalog.UpdateInsurancePlanHandler)
		protected.DELETE("/insurance-plans/:id", hb.Catalog.DeleteInsurancePlanHandler)

		protected.POST("/clients", hb.Catalog.CreateClientHandler)
		protected.GET("/clients", hb.Catalog.ListClientsHandler)
		protected.PUT("/clients/:id", hb.Catalog.UpdateClientHandler)
		protected.DELETE("/clients/:id", hb.Catalog.DeleteClientHandler)

		protected.GET("/appointments", hb.Schedule.ListAppointmentsHandler)
		protected.POST("/appointments/:id/cancel", hb.Schedule.CancelAppointmentHandler)
		protected.POST("/appointments/:id/complete", hb.Schedule.CompleteAppointmentHandler)
	}
}

// RegisterAdminRoutes registers the back-office. Mounted outside the
// maintenance gate so operators can lift the flag while it is set.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/professionals", hb.Admin.ListProfessionalsHandler)

		api.POST("/plans", hb.Admin.CreatePlanHandler)
		api.GET("/plans", hb.Admin.ListPlansHandler)
		api.PUT("/plans/:id", hb.Admin.UpdatePlanHandler)
		api.DELETE("/plans/:id", hb.Admin.DeletePlanHandler)

		api.POST("/webhooks", hb.Admin.CreateWebhookEndpointHandler)
		api.GET("/webhooks", hb.Admin.ListWebhookEndpointsHandler)
		api.PUT("/webhooks/:id", hb.Admin.UpdateWebhookEndpointHandler)
		api.DELETE("/webhooks/:id", hb.Admin.DeleteWebhookEndpointHandler)
		api.POST("/webhooks/:id/test", hb.Admin.TestWebhookEndpointHandler)

		api.GET("/audit", hb.Admin.QueryAuditLogHandler)

		api.GET("/maintenance", hb.Admin.MaintenanceModeHandler)
		api.PUT("/maintenance", hb.Admin.SetMaintenanceModeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
