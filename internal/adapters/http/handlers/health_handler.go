package handlers

import (
	"context"
	"time"

	"dmaker/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Pinger is a dependency that can report its health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg   *config.Config
	cache Pinger
}

// NewHealthHandler creates a new health handler. cache is nil when disabled.
func NewHealthHandler(cfg *config.Config, cache Pinger) *HealthHandler {
	return &HealthHandler{cfg: cfg, cache: cache}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 DMaker API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API, database and cache health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK

	// Check database
	dbStatus := "healthy"
	if err := config.HealthCheck(); err != nil {
		dbStatus = "unhealthy"
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	// Cache failures only slow reads down
	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		cacheStatus = "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unhealthy"
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
			"cache":    cacheStatus,
		},
	})
}
