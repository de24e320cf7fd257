package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dmaker/internal/adapters/cache"
	"dmaker/internal/adapters/http/middleware"
	"dmaker/internal/adapters/http/routes"
	"dmaker/internal/adapters/persistence/models"
	"dmaker/internal/config"
	"dmaker/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "dmaker/docs" // Swagger docs
)

// @title DMaker API
// @version 1.0
// @description Developer roster API: hire, edit, retire and list developers.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Optional valkey detail cache
	var detailCache *cache.DeveloperCache
	if cfg.Cache.Enabled() {
		client, err := cache.Connect(cfg.Cache.Addr)
		if err != nil {
			log.Printf("⚠️ Warning: cache disabled: %v", err)
		} else {
			detailCache = cache.NewDeveloperCache(client, cfg.Cache.TTL)
			defer detailCache.Close()
			log.Printf("✅ Cache connected [%s]", cfg.Cache.Addr)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "DMaker API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	developerService := routes.Setup(app, db, cfg, detailCache)

	// Seed sample developers (dev only by default)
	if cfg.SeedDevelopers {
		if err := config.NewSeeder(developerService).Run(context.Background()); err != nil {
			log.Printf("⚠️ Warning: Failed to seed developers: %v", err)
		}
	}

	// Start Cron Service for the daily roster report
	cronService := services.NewCronService(developerService, cfg.ReportCron)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
