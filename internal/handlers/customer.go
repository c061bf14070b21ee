package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/services"
	"github.com/mobilityworks/roadnet/internal/utils"
	"gorm.io/gorm"
)

// CustomerHandler handles customer (tenant) routes
type CustomerHandler struct {
	DB *gorm.DB
}

// CreateCustomerInput is the customer creation payload.
type CreateCustomerInput struct {
	Name string `json:"name"`
}

// CreateCustomer handles POST /api/v1/customers
// @Summary Create a customer
// @Description Creates a new customer tenant. Admin only.
// @Tags Customer
// @Accept json
// @Produce json
// @Param customer body CreateCustomerInput true "Customer data"
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var payload CreateCustomerInput
	if err := c.BodyParser(&payload); err != nil || payload.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request")
	}

	if _, err := services.CreateCustomer(h.DB, payload.Name); err != nil {
		if errors.Is(err, services.ErrDuplicateCustomer) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Customer with this name already exists")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error while creating customer")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Customer created successfully", nil)
}

// ListCustomers handles GET /api/v1/customers
// @Summary List customers
// @Description Returns all customers ordered by name. Admin only.
// @Tags Customer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := services.ListCustomers(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred while fetching customers")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Customers List retrieved successfully", customers)
}
