package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the health check route
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// HealthCheck handles GET /api/v1/health_check
// @Summary Health check
// @Description Reports service and database health.
// @Tags Health Check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health_check [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(result)
}
