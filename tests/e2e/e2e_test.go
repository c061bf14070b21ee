package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/mobilityworks/roadnet/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	roadnetHost, _ := tc.RoadnetContainer.Host(ctx)
	roadnetPort, _ := tc.RoadnetContainer.MappedPort(ctx, "8000")
	baseURL := fmt.Sprintf("http://%s:%s", roadnetHost, roadnetPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, baseURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("UnauthenticatedAccess", func(t *testing.T) {
		testUnauthenticatedAccess(t, baseURL)
	})

	t.Run("NetworkRoundTrip", func(t *testing.T) {
		testNetworkRoundTrip(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/v1/health_check")
	if err != nil {
		t.Fatalf("Failed to get health check: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["status"] != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

func testUnauthenticatedAccess(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/v1/road-network")
	if err != nil {
		t.Fatalf("Failed to access API: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusUnauthorized)

	envelope := helpers.ParseEnvelope(t, resp)
	helpers.AssertDetail(t, envelope, "Not authenticated")
}

// testNetworkRoundTrip drives the full flow over HTTP: seeded admin login,
// customer and user management, upload, versioned update, retrieval, export.
func testNetworkRoundTrip(t *testing.T, baseURL string) {
	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedPassword == "" {
		seedPassword = "RoadNetwork@123"
	}

	adminToken := helpers.Login(t, baseURL, "munich_admin", seedPassword)

	// Register a regular user of the same customer
	var customerID string
	{
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/v1/customers", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to list customers: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusOK)
		var envelope struct {
			Data []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"data"`
		}
		helpers.ParseJSON(t, resp, &envelope)
		if len(envelope.Data) == 0 {
			t.Fatal("Expected seeded customers")
		}
		customerID = envelope.Data[0].ID
	}

	password := helpers.RandomPassword()
	helpers.RegisterUser(t, baseURL, adminToken, map[string]string{
		"username":         "e2e_worker",
		"email":            "e2e_worker@example.com",
		"full_name":        "E2E Worker",
		"password":         password,
		"conform_password": password,
		"customer_id":      customerID,
	})
	workerToken := helpers.Login(t, baseURL, "e2e_worker", password)

	// Upload a network as the worker
	do := func(method, version string, features int) *http.Response {
		t.Helper()
		body, contentType := helpers.GeoJSONUploadBody(t, "e2e_net", version, helpers.RoadFeatureCollection(features))
		req, err := http.NewRequest(method, baseURL+"/api/v1/road-network", body)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+workerToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Upload request failed: %v", err)
		}
		return resp
	}

	resp := do(http.MethodPost, "1.0", 5)
	helpers.AssertStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = do(http.MethodPut, "2.0", 7)
	helpers.AssertStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	// Current version has the updated edge set
	req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/v1/road-network/edges?name=e2e_net", nil)
	req.Header.Set("Authorization", "Bearer "+workerToken)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Edges request failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)
	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	helpers.ParseJSON(t, resp, &fc)
	if fc.Type != "FeatureCollection" || len(fc.Features) != 7 {
		t.Errorf("Expected FeatureCollection with 7 features, got %s with %d", fc.Type, len(fc.Features))
	}

	// Export carries the download headers
	req, _ = http.NewRequest(http.MethodGet, baseURL+"/api/v1/road-network/edges?name=e2e_net&version=1.0&export=true", nil)
	req.Header.Set("Authorization", "Bearer "+workerToken)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Export request failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)
	if disposition := resp.Header.Get("Content-Disposition"); disposition != `attachment; filename="e2e_net_v1.0.geojson"` {
		t.Errorf("Unexpected Content-Disposition %q", disposition)
	}
	resp.Body.Close()
}
