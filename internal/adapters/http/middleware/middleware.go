package middleware

import (
	"errors"
	"log"
	"time"

	"dmaker/internal/config"
	"dmaker/internal/core/domain"
	"dmaker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Setup configures all middlewares for the application
func Setup(app *fiber.App, cfg *config.Config) {
	// Recover middleware - catches panics
	app.Use(recover.New())

	app.Use(requestid.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Security Headers middleware (Helmet)
	app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "SAMEORIGIN",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
		PermissionPolicy:          "geolocation=(), microphone=(), camera=()",
	}))

	// Rate Limiter middleware - General API (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooManyRequests,
	}))

	// Logger middleware
	if cfg.IsDev() {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} | ${path}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${locals:requestid} | ${method} | ${path} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// CORS middleware
	if cfg.IsDev() {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: false, // Cannot be true with AllowOrigins: "*"
		}))
	} else {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.GetAllowedOrigins(),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: true,
		}))
	}
}

// WriteRateLimiter creates a stricter rate limiter for roster mutations
// (create, edit, retire): max requests per minute per IP
func WriteRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-write"
		},
		LimitReached: tooManyRequests,
	})
}

func tooManyRequests(c *fiber.Ctx) error {
	return response.Error(c, fiber.StatusTooManyRequests, domain.CodeInvalidRequest, "too many requests")
}

// CustomErrorHandler handles errors globally.
// Roster errors keep their code. Fiber client errors keep their status
// as INVALID_REQUEST. Anything else is an opaque 500.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	var re *domain.RosterError
	var fe *fiber.Error

	switch {
	case errors.As(err, &re):
		logError(c, re.Code, err.Error())
		if re.Code == domain.CodeInternalServerError {
			return response.InternalServerError(c)
		}
		return response.Error(c, response.StatusOf(re.Code), re.Code, re.Message())

	case errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError:
		logError(c, domain.CodeInvalidRequest, fe.Message)
		return response.Error(c, fe.Code, domain.CodeInvalidRequest, fe.Message)

	default:
		logError(c, domain.CodeInternalServerError, err.Error())
		return response.InternalServerError(c)
	}
}

func logError(c *fiber.Ctx, code domain.ErrorCode, message string) {
	log.Printf("errorCode: %s, url: %s, message: %s", code, c.OriginalURL(), message)
}
