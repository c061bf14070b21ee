package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Envelope mirrors the service response wrapper
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Detail     string          `json:"detail"`
	Data       json.RawMessage `json:"data"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseEnvelope decodes the response body as the service envelope
func ParseEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	var envelope Envelope
	ParseJSON(t, resp, &envelope)
	return envelope
}

// AssertDetail verifies the envelope detail message
func AssertDetail(t *testing.T, envelope Envelope, expected string) {
	t.Helper()
	if envelope.Detail != expected {
		t.Errorf("Expected detail %q, got %q", expected, envelope.Detail)
	}
}
