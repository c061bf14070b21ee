package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mobilityworks/roadnet/internal/middleware"
)

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.VersionMiddleware("1.0"))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	// Default when the header is absent
	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "1.0" {
		t.Errorf("Expected served version 1.0 in response header, got %q", got)
	}

	// The bare major alias expands
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	body := make([]byte, 8)
	n, _ := resp.Body.Read(body)
	if string(body[:n]) != "1.0" {
		t.Errorf("Expected alias 1 to resolve to 1.0, got %q", string(body[:n]))
	}
}
