package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/services"
	"github.com/mobilityworks/roadnet/internal/utils"
	"gorm.io/gorm"
)

// NetworkHandler handles road-network routes
type NetworkHandler struct {
	DB *gorm.DB
}

// CreateNetwork handles POST /api/v1/road-network
// @Summary Upload a road network
// @Description Creates a new road network version from a .geojson upload, scoped to the caller's customer.
// @Tags Road Network
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Network name"
// @Param version formData number true "Version number"
// @Param file formData file true "GeoJSON feature collection"
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 409 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /road-network [post]
func (h *NetworkHandler) CreateNetwork(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	}

	name := c.FormValue("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	version, err := parseVersionForm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	fc, err := parseGeoJSONUpload(c)
	if err != nil {
		if errors.Is(err, errUploadExtension) || errors.Is(err, errUploadParse) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only .geojson files allowed")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read uploaded file")
	}

	if _, err := services.CreateNetwork(h.DB, user.CustomerID, name, version, fc); err != nil {
		if errors.Is(err, services.ErrDuplicateNetwork) {
			return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Network `%s` already exists", name))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred while adding road network")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Road network uploaded successfully", nil)
}

// UpdateNetwork handles PUT /api/v1/road-network
// @Summary Update a road network
// @Description Appends a new version from a .geojson upload and retires the previous version's edges. The new version must be strictly greater than the current one.
// @Tags Road Network
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Network name"
// @Param version formData number true "New version number"
// @Param file formData file true "GeoJSON feature collection"
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /road-network [put]
func (h *NetworkHandler) UpdateNetwork(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	}

	name := c.FormValue("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	version, err := parseVersionForm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	fc, err := parseGeoJSONUpload(c)
	if err != nil {
		if errors.Is(err, errUploadExtension) || errors.Is(err, errUploadParse) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only .geojson files allowed")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read uploaded file")
	}

	if _, err := services.UpdateNetwork(h.DB, user.CustomerID, name, version, fc); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Road network `%s` not found", name))
		case errors.Is(err, services.ErrVersionNotNewer):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred during updating road network")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Road network updated successfully", nil)
}

// ListNetworks handles GET /api/v1/road-network
// @Summary List road networks
// @Description Returns the caller's customer's network versions, name ascending then version descending.
// @Tags Road Network
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /road-network [get]
func (h *NetworkHandler) ListNetworks(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	}

	networks, err := services.ListNetworks(h.DB, user.CustomerID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred while fetching road networks")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Road Network List retrieved successfully", networks)
}

// GetNetworkEdges handles GET /api/v1/road-network/edges
// @Summary Get road network edges
// @Description Returns one network version's edges as a GeoJSON feature collection, optionally filtered by timestamp or version (mutually exclusive), optionally as a file download.
// @Tags Road Network
// @Produce json
// @Param name query string true "Network name"
// @Param timestamp query string false "Latest version created at or before this instant"
// @Param version query number false "Exact version"
// @Param export query boolean false "Return as a downloadable .geojson file"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /road-network/edges [get]
func (h *NetworkHandler) GetNetworkEdges(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	}

	name := c.Query("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	timestampRaw := c.Query("timestamp")
	versionRaw := c.Query("version")
	if timestampRaw != "" && versionRaw != "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"You can filter by either 'timestamp' or 'version', not both. Please provide only one.")
	}

	var filter struct {
		timestamp *time.Time
		version   *float64
	}
	if timestampRaw != "" {
		ts, err := parseTimestamp(timestampRaw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		filter.timestamp = &ts
	}
	if versionRaw != "" {
		v, err := strconv.ParseFloat(versionRaw, 64)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "version must be a number")
		}
		filter.version = &v
	}

	fc, network, err := services.GetNetworkEdges(h.DB, user.CustomerID, name, filter.timestamp, filter.version)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Road network not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred while fetching edges")
	}

	if c.QueryBool("export", false) {
		payload, err := fc.MarshalJSON()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error occurred while fetching edges")
		}
		filename := fmt.Sprintf("%s_v%s.geojson", name, formatVersion(network.Version))
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Set(fiber.HeaderContentType, "application/geo+json")
		return c.Status(fiber.StatusOK).Send(payload)
	}

	return c.Status(fiber.StatusOK).JSON(fc)
}
