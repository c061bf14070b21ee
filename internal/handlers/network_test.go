package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/handlers"
	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/mobilityworks/roadnet/internal/services"
	"github.com/mobilityworks/roadnet/tests/helpers"
	"gorm.io/gorm"
)

func newNetworkApp(db *gorm.DB, user *models.User) *fiber.App {
	app := fiber.New()
	handler := &handlers.NetworkHandler{DB: db}
	app.Post("/api/v1/road-network", withUser(user), handler.CreateNetwork)
	app.Put("/api/v1/road-network", withUser(user), handler.UpdateNetwork)
	app.Get("/api/v1/road-network", withUser(user), handler.ListNetworks)
	app.Get("/api/v1/road-network/edges", withUser(user), handler.GetNetworkEdges)
	return app
}

// buildUpload builds a multipart body with an arbitrary upload filename
func buildUpload(t *testing.T, name, version, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if name != "" {
		_ = writer.WriteField("name", name)
	}
	if version != "" {
		_ = writer.WriteField("version", version)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, app *fiber.App, method string, body *bytes.Buffer, contentType string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1/road-network", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var result struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result.Detail
}

func TestCreateNetworkUpload(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	body, contentType := helpers.GeoJSONUploadBody(t, "city_center", "1.0", helpers.RoadFeatureCollection(2))
	code, detail := uploadRequest(t, app, "POST", body, contentType)
	if code != 200 || detail != "Road network uploaded successfully" {
		t.Errorf("Expected 200 uploaded, got %d %q", code, detail)
	}

	// Same name and version again
	body, contentType = helpers.GeoJSONUploadBody(t, "city_center", "1.0", helpers.RoadFeatureCollection(2))
	code, detail = uploadRequest(t, app, "POST", body, contentType)
	if code != 409 || detail != "Network `city_center` already exists" {
		t.Errorf("Expected 409 conflict detail, got %d %q", code, detail)
	}
}

func TestCreateNetworkUploadValidation(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	raw, _ := helpers.RoadFeatureCollection(1).MarshalJSON()

	// Wrong extension
	body, contentType := buildUpload(t, "city_center", "1.0", "network.json", raw)
	code, detail := uploadRequest(t, app, "POST", body, contentType)
	if code != 400 || detail != "Only .geojson files allowed" {
		t.Errorf("Expected 400 extension detail, got %d %q", code, detail)
	}

	// Not a feature collection
	body, contentType = buildUpload(t, "city_center", "1.0", "network.geojson", []byte("not geojson"))
	code, _ = uploadRequest(t, app, "POST", body, contentType)
	if code != 400 {
		t.Errorf("Expected 400 for unparseable content, got %d", code)
	}

	// Missing name
	body, contentType = buildUpload(t, "", "1.0", "network.geojson", raw)
	code, _ = uploadRequest(t, app, "POST", body, contentType)
	if code != 400 {
		t.Errorf("Expected 400 for missing name, got %d", code)
	}

	// Bad version
	body, contentType = buildUpload(t, "city_center", "one", "network.geojson", raw)
	code, _ = uploadRequest(t, app, "POST", body, contentType)
	if code != 400 {
		t.Errorf("Expected 400 for non-numeric version, got %d", code)
	}
}

func TestUpdateNetworkUpload(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	if _, err := services.CreateNetwork(db, customer.ID, "city_center", 1.0, helpers.RoadFeatureCollection(2)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	body, contentType := helpers.GeoJSONUploadBody(t, "city_center", "2.0", helpers.RoadFeatureCollection(3))
	code, detail := uploadRequest(t, app, "PUT", body, contentType)
	if code != 200 || detail != "Road network updated successfully" {
		t.Errorf("Expected 200 updated, got %d %q", code, detail)
	}

	// Version must move forward
	body, contentType = helpers.GeoJSONUploadBody(t, "city_center", "1.5", helpers.RoadFeatureCollection(1))
	code, detail = uploadRequest(t, app, "PUT", body, contentType)
	if code != 400 {
		t.Errorf("Expected 400 for stale version, got %d", code)
	}
	if !strings.Contains(detail, "must be higher than current latest") {
		t.Errorf("Expected version explanation in detail, got %q", detail)
	}

	// Unknown network
	body, contentType = helpers.GeoJSONUploadBody(t, "missing", "1.0", helpers.RoadFeatureCollection(1))
	code, detail = uploadRequest(t, app, "PUT", body, contentType)
	if code != 404 || detail != "Road network `missing` not found" {
		t.Errorf("Expected 404 not found detail, got %d %q", code, detail)
	}
}

func TestListNetworksEndpoint(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	other := helpers.SeedCustomer(t, db, "berlin")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	if _, err := services.CreateNetwork(db, customer.ID, "city_center", 1.0, helpers.RoadFeatureCollection(1)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}
	if _, err := services.CreateNetwork(db, other.ID, "ring", 1.0, helpers.RoadFeatureCollection(1)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/road-network", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		Detail string `json:"detail"`
		Data   []struct {
			Name    string  `json:"name"`
			Version float64 `json:"version"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Detail != "Road Network List retrieved successfully" {
		t.Errorf("Unexpected detail %q", result.Detail)
	}
	// Only the caller's tenant
	if len(result.Data) != 1 || result.Data[0].Name != "city_center" {
		t.Errorf("Expected only city_center, got %+v", result.Data)
	}
}

func TestGetNetworkEdgesEndpoint(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	if _, err := services.CreateNetwork(db, customer.ID, "city_center", 1.0, helpers.RoadFeatureCollection(2)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/road-network/edges?name=city_center", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("Expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("Expected 2 features, got %d", len(fc.Features))
	}
	if fc.Features[0].Geometry.Type != "LineString" {
		t.Errorf("Expected LineString geometry, got %q", fc.Features[0].Geometry.Type)
	}
	if fc.Features[0].Properties["street_name"] == nil {
		t.Error("Expected street_name property")
	}
}

func TestGetNetworkEdgesFilters(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	if _, err := services.CreateNetwork(db, customer.ID, "city_center", 1.0, helpers.RoadFeatureCollection(1)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	// Both filters at once
	req := httptest.NewRequest("GET", "/api/v1/road-network/edges?name=city_center&version=1.0&timestamp=2026-01-01", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for both filters, got %d", resp.StatusCode)
	}
	var result struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Detail != "You can filter by either 'timestamp' or 'version', not both. Please provide only one." {
		t.Errorf("Unexpected detail %q", result.Detail)
	}

	// Missing name
	req = httptest.NewRequest("GET", "/api/v1/road-network/edges", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for missing name, got %d", resp.StatusCode)
	}

	// Unknown network
	req = httptest.NewRequest("GET", "/api/v1/road-network/edges?name=missing", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404 for unknown network, got %d", resp.StatusCode)
	}

	// Bad timestamp
	req = httptest.NewRequest("GET", "/api/v1/road-network/edges?name=city_center&timestamp=yesterday", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for bad timestamp, got %d", resp.StatusCode)
	}
}

func TestGetNetworkEdgesExport(t *testing.T) {
	db := setupTestDB(t)
	customer := helpers.SeedCustomer(t, db, "munich")
	user := helpers.SeedUser(t, db, customer.ID, "worker", "Secret@123", models.RoleUser)
	app := newNetworkApp(db, user)

	if _, err := services.CreateNetwork(db, customer.ID, "city_center", 1.0, helpers.RoadFeatureCollection(1)); err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/road-network/edges?name=city_center&export=true", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	disposition := resp.Header.Get("Content-Disposition")
	if disposition != `attachment; filename="city_center_v1.0.geojson"` {
		t.Errorf("Unexpected Content-Disposition %q", disposition)
	}
	if contentType := resp.Header.Get("Content-Type"); contentType != "application/geo+json" {
		t.Errorf("Unexpected Content-Type %q", contentType)
	}

	var fc struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		t.Fatalf("Failed to decode export body: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("Expected FeatureCollection export, got %q", fc.Type)
	}
}
