// File: agendly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/cron"
	"agendly/database"
	appointmentRepo "agendly/database/repository/appointment"
	auditRepo "agendly/database/repository/audit"
	clientRepo "agendly/database/repository/client"
	insuranceRepo "agendly/database/repository/insurance"
	planRepo "agendly/database/repository/plan"
	professionalRepo "agendly/database/repository/professional"
	serviceRepo "agendly/database/repository/service"
	teamRepo "agendly/database/repository/teammember"
	timeslotRepo "agendly/database/repository/timeslot"
	webhookRepo "agendly/database/repository/webhook"
	"agendly/handlers"
	"agendly/routes"
	adminSvc "agendly/services/admin"
	"agendly/services/audit"
	"agendly/services/booking"
	"agendly/services/catalog"
	professionalSvc "agendly/services/professional"
	"agendly/services/reminder"
	"agendly/services/schedule"
	"agendly/services/webhook"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	proRepo := professionalRepo.NewMongoProfessionalRepo()
	memberRepo := teamRepo.NewMongoTeamMemberRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	insRepo := insuranceRepo.NewMongoInsurancePlanRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	tmplRepo := timeslotRepo.NewMongoTemplateRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	plansRepo := planRepo.NewMongoPlanRepo()
	logRepo := auditRepo.NewMongoAuditRepo()
	hookRepo := webhookRepo.NewMongoWebhookRepo()

	// Asynq client shared by the webhook dispatcher and reminder scheduler.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	dispatcher := webhook.NewAsynqDispatcher(queueClient)
	reminders := &reminder.AsynqScheduler{Client: queueClient}
	recorder := &audit.DefaultRecorder{Repo: logRepo}

	// Services.
	proService := &professionalSvc.DefaultProfessionalService{
		Repo:      proRepo,
		Templates: tmplRepo,
		AuthCache: utils.NewCache(utils.GetAuthCacheClient(), utils.AuthCachePrefix, utils.AuthCacheTTL),
		Webhooks:  dispatcher,
		Audit:     recorder,
		DefaultTZ: config.AppConfig.DefaultTimezone,
	}
	catalogService := &catalog.DefaultCatalogService{
		Professionals: proRepo,
		TeamMembers:   memberRepo,
		Services:      svcRepo,
		Insurance:     insRepo,
		Clients:       cliRepo,
		Plans:         plansRepo,
		Audit:         recorder,
	}
	bookingService := &booking.DefaultBookingService{
		Sessions:      utils.NewCache(utils.GetSessionCacheClient(), utils.BookingSessionPrefix, utils.BookingSessionTTL),
		Professionals: proRepo,
		Templates:     tmplRepo,
		Appointments:  apptRepo,
		Clients:       cliRepo,
		Services:      svcRepo,
		Insurance:     insRepo,
		TeamMembers:   memberRepo,
		Webhooks:      dispatcher,
		Reminders:     reminders,
		Audit:         recorder,
		DefaultTZ:     config.AppConfig.DefaultTimezone,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Appointments: apptRepo,
		Webhooks:     dispatcher,
		Audit:        recorder,
	}
	adminService := &adminSvc.DefaultAdminService{
		Plans:         plansRepo,
		Professionals: proRepo,
		Endpoints:     hookRepo,
		AuditLogs:     logRepo,
		Webhooks:      dispatcher,
		Audit:         recorder,
		Redis:         utils.GetCacheClient(),
		StripeEnabled: config.AppConfig.StripeKey != "",
	}

	// Handlers.
	handlerBundle := &handlers.HandlerBundle{
		ProfessionalRepo: proRepo,
		AuthCache:        utils.NewCache(utils.GetAuthCacheClient(), utils.AuthCachePrefix, utils.AuthCacheTTL),
		MaintenanceRedis: utils.GetCacheClient(),

		Professional: &handlers.ProfessionalHandler{Service: proService},
		Catalog:      &handlers.CatalogHandler{Service: catalogService},
		Schedule:     &handlers.ScheduleHandler{Service: scheduleService},
		Public: &handlers.PublicHandler{
			Professionals: proRepo,
			SlugCache:     utils.NewCache(utils.GetCacheClient(), utils.SlugCachePrefix, utils.SlugCacheTTL),
			Booking:       bookingService,
			Catalog:       catalogService,
		},
		Admin: &handlers.AdminHandler{Service: adminService},
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker and health monitor.
	cron.InitWorker(hookRepo, recorder)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := queueClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close queue client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
