package routes

import (
	"dmaker/internal/adapters/cache"
	"dmaker/internal/adapters/http/handlers"
	"dmaker/internal/adapters/http/middleware"
	"dmaker/internal/adapters/metrics"
	"dmaker/internal/adapters/persistence/repositories"
	"dmaker/internal/config"
	"dmaker/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// writeLimitPerMinute caps create/edit/retire requests per IP
const writeLimitPerMinute = 30

// Setup configures all routes for the application and returns the roster
// service behind them. detailCache may be nil.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, detailCache *cache.DeveloperCache) *services.DeveloperService {
	// Initialize repositories
	developerRepo := repositories.NewDeveloperRepository(db)
	retiredRepo := repositories.NewRetiredDeveloperRepository(db)
	transactor := repositories.NewTransactor(db)

	recorder := metrics.New()

	// keep the interfaces nil when the cache is disabled
	var serviceCache services.DetailCache
	var cachePinger handlers.Pinger
	if detailCache != nil {
		serviceCache = detailCache
		cachePinger = detailCache
	}

	// Initialize services
	developerService := services.NewDeveloperService(developerRepo, retiredRepo, transactor, serviceCache, recorder)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, cachePinger)
	developerHandler := handlers.NewDeveloperHandler(developerService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(recorder.Registry(), promhttp.HandlerOpts{})))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupDeveloperRoutes(app, developerHandler)

	return developerService
}

// setupDeveloperRoutes configures roster routes
func setupDeveloperRoutes(router fiber.Router, handler *handlers.DeveloperHandler) {
	noCache := middleware.NoCacheHeaders()
	writeLimit := middleware.WriteRateLimiter(writeLimitPerMinute)

	router.Get("/developers", noCache, handler.List)
	router.Get("/developer/:memberId", noCache, handler.Get)
	router.Post("/create-developer", writeLimit, handler.Create)
	router.Put("/developer/:memberId", writeLimit, handler.Edit)
	router.Delete("/developer/:memberId", writeLimit, handler.Retire)
	router.Get("/retired-developers", noCache, handler.ListRetired)
}
