package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/middleware"
	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/paulmach/orb/geojson"
)

// geometryFileExt is the only accepted upload container extension.
const geometryFileExt = ".geojson"

var (
	errUploadExtension = errors.New("only .geojson files allowed")
	errUploadParse     = errors.New("file is not a valid geojson feature collection")
)

// currentUser returns the authenticated user the auth middleware stored in
// the request locals.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(middleware.UserLocalKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}

// parseGeoJSONUpload reads the multipart "file" field and parses it as a
// GeoJSON feature collection. The extension is checked before the content.
func parseGeoJSONUpload(c *fiber.Ctx) (*geojson.FeatureCollection, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, errUploadExtension
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), geometryFileExt) {
		return nil, errUploadExtension
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(content)
	if err != nil {
		return nil, errUploadParse
	}
	return fc, nil
}

// parseVersionForm parses the required "version" multipart form field.
func parseVersionForm(c *fiber.Ctx) (float64, error) {
	raw := c.FormValue("version")
	if raw == "" {
		return 0, fmt.Errorf("version is required")
	}
	version, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("version must be a number")
	}
	return version, nil
}

// timestampLayouts accepted by the edges timestamp filter, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601-ish timestamp query value.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// formatVersion renders a version number the way it is shown to callers:
// whole versions keep a trailing .0 (1 -> "1.0").
func formatVersion(version float64) string {
	s := strconv.FormatFloat(version, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
