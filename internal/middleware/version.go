package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionMiddleware parses the X-Api-Version header, stores it in context
// and echoes the served version on the response.
func VersionMiddleware(appVersion string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", appVersion)

		// Support version aliases
		if version == "1" {
			version = "1.0"
		}

		// Store version in context
		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", appVersion)

		return c.Next()
	}
}
