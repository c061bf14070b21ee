package handlers

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/mobilityworks/roadnet/internal/services"
	"github.com/mobilityworks/roadnet/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles login and registration routes
type AuthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// LoginInput is accepted as JSON or form-encoded body.
type LoginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterInput is the admin-only user registration payload.
type RegisterInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConformPassword string `json:"conform_password"`
	CustomerID      string `json:"customer_id"`
	Type            string `json:"type"`
}

// Login handles POST /api/v1/auth/login
// @Summary Authenticate a user
// @Description Verifies username/password and returns access and refresh tokens. Accepts JSON or form-encoded credentials; form logins receive the raw token payload for the interactive docs.
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	isJSON := strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	var payload LoginInput
	if err := c.BodyParser(&payload); err != nil || payload.Username == "" || payload.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request")
	}

	user, err := services.Authenticate(h.DB, payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, services.ErrInactiveAccount):
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is inactive")
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error during login")
		}
	}

	tokens, err := services.IssueTokens(h.Cfg, user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error during login")
	}

	// The interactive docs token flow expects the bare payload, everything
	// else gets the envelope.
	if !isJSON {
		return c.Status(fiber.StatusOK).JSON(tokens)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successfully", tokens)
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new user
// @Description Creates a user inside a customer. Admin only.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "User registration data"
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	admin, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	}

	var payload RegisterInput
	if err := c.BodyParser(&payload); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request")
	}

	if payload.Username == "" || payload.Email == "" || payload.FullName == "" ||
		payload.Password == "" || payload.CustomerID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request")
	}

	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid email address")
	}

	if payload.Type == "" {
		payload.Type = models.RoleUser
	}
	if payload.Type != models.RoleAdmin && payload.Type != models.RoleUser {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid user type")
	}

	if payload.Password != payload.ConformPassword {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Passwords do not match")
	}

	user := models.User{
		Username:   payload.Username,
		Email:      payload.Email,
		FullName:   payload.FullName,
		Type:       payload.Type,
		CustomerID: payload.CustomerID,
	}

	if err := services.RegisterUser(h.DB, &user, payload.Password, admin); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUser):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username or Email already exists")
		case errors.Is(err, services.ErrInvalidCustomer):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer_id")
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error while creating user")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User created successfully", nil)
}
