package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/services"
)

func newPlantApp() *fiber.App {
	app := fiber.New()
	cfg := &config.Config{PlantImagesBucket: "plant-images"}
	h := NewPlantHandler(services.NewPlantService(nil), nil, cfg)
	app.Delete("/api/plants/:id", h.Delete)
	app.Post("/api/plants", h.Create)
	return app
}

func TestPlantDeleteRejectsBadPathID(t *testing.T) {
	app := newPlantApp()

	req := httptest.NewRequest("DELETE", "/api/plants/not-a-uuid",
		strings.NewReader(`{"user_id":"8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPlantDeleteRequiresActor(t *testing.T) {
	app := newPlantApp()

	req := httptest.NewRequest("DELETE", "/api/plants/8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPlantCreateValidatesBody(t *testing.T) {
	app := newPlantApp()

	// Missing scientific_name and user_id.
	req := httptest.NewRequest("POST", "/api/plants",
		strings.NewReader(`{"description":"no name given"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
