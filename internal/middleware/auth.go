package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/services"
	"github.com/mobilityworks/roadnet/internal/types"
	"gorm.io/gorm"
)

// UserLocalKey is the request-locals key carrying the resolved *models.User.
const UserLocalKey = "user"

// AuthUser validates the Bearer token and stores the resolved user in the
// request locals.
func AuthUser(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, db, false)
	}
}

// AuthAdmin validates the Bearer token and requires the admin role.
func AuthAdmin(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, db, true)
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, cfg *config.Config, db *gorm.DB, adminOnly bool) error {
	token := bearerToken(c)
	if token == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Not authenticated",
			Type:    "auth.token.missing",
		}
	}

	user, err := services.ResolveUser(cfg, db, token)
	if err != nil {
		if errors.Is(err, services.ErrTokenExpired) {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Token has expired",
				Type:    "auth.token.expired",
			}
		}
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid Token",
			Type:    "auth.token.invalid",
		}
	}

	if adminOnly && !user.IsAdmin() {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "You do not have permission to perform this action",
			Type:    "auth.role.admin",
		}
	}

	c.Locals(UserLocalKey, user)

	return c.Next()
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
