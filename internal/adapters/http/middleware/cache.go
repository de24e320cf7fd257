package middleware

import "github.com/gofiber/fiber/v2"

// NoCacheHeaders sets no-cache headers.
// Roster reads change on every edit or retire, so clients must not cache them.
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
