package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/config"
	"github.com/BruksfildServices01/barber-availability/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-availability/internal/infra/repository"
	"github.com/BruksfildServices01/barber-availability/internal/metrics"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/barber-availability/internal/usecase/availability"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Audit    *audit.Dispatcher
	Metrics  *metrics.Availability
	Gatherer prometheus.Gatherer
	Limiter  middleware.Limiter
	Checks   map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(availabilityRepo, d.Metrics)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Checks)
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	enterpriseHandler := handlers.NewEnterpriseHandler(d.DB, d.Audit)
	barbersHandler := handlers.NewBarbersHandler(d.DB, d.Audit)
	availableHoursHandler := handlers.NewAvailableHoursHandler(d.DB, d.Audit)
	servicesHandler := handlers.NewServicesHandler(d.DB, d.Audit)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)
	webhookHandler := handlers.NewWebhookHandler(d.DB, bookingRepo, d.Metrics, d.Audit, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		if d.Limiter != nil {
			publicAPI.Use(middleware.RateLimit(d.Limiter, d.Log))
		}
		{
			publicAPI.GET("/:slug/services", servicesHandler.ListPublic)
			publicAPI.GET("/:slug/barbers/:barberId/availability", availabilityHandler.Public)
			publicAPI.GET("/:slug/barbers/:barberId/availability/check", availabilityHandler.Check)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		if d.Limiter != nil {
			authAPI.Use(middleware.RateLimit(d.Limiter, d.Log))
		}
		authAPI.POST("/register", authHandler.Register)
		authAPI.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔗 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/bookings",
			middleware.WebhookTokenValidate(d.Config.WebhookToken),
			webhookHandler.Bookings,
		)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/enterprise", middleware.AdminOnly(), enterpriseHandler.GetMeEnterprise)
			secured.PATCH("/me/enterprise", middleware.AdminOnly(), enterpriseHandler.UpdateMeEnterprise)

			secured.GET("/barbers", middleware.AdminOnly(), barbersHandler.List)
			secured.POST("/barbers", middleware.AdminOnly(), barbersHandler.Create)
			secured.PATCH("/barbers/:id/active", middleware.AdminOnly(), barbersHandler.SetActive)

			barber := secured.Group("/barbers/:id")
			barber.Use(middleware.BarberOrAdminValidate("id"))
			{
				barber.GET("/available-hours", availableHoursHandler.Get)
				barber.PUT("/available-hours", availableHoursHandler.Update)
				barber.GET("/availability", availabilityHandler.Private)
			}

			secured.GET("/services", servicesHandler.List)
			secured.POST("/services", middleware.AdminOnly(), servicesHandler.Create)

			secured.GET("/audit-logs", middleware.AdminOnly(), auditLogsHandler.List)
		}
	}
}
