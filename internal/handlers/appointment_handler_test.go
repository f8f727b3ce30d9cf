package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/heritageroots/heritage-backend/internal/services"
)

func newAvailabilityApp() *fiber.App {
	app := fiber.New()
	h := NewAppointmentHandler(services.NewAppointmentService(nil))
	app.Get("/api/appointments/availability", h.CheckAvailability)
	return app
}

func TestCheckAvailabilityRequiresUserID(t *testing.T) {
	app := newAvailabilityApp()

	req := httptest.NewRequest("GET",
		"/api/appointments/availability?start_time=2026-03-10T10:00:00Z&end_time=2026-03-10T11:00:00Z", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCheckAvailabilityRejectsBadTimes(t *testing.T) {
	app := newAvailabilityApp()

	cases := []string{
		// not RFC3339
		"/api/appointments/availability?user_id=8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11&start_time=tomorrow&end_time=2026-03-10T11:00:00Z",
		// start after end
		"/api/appointments/availability?user_id=8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11&start_time=2026-03-10T12:00:00Z&end_time=2026-03-10T11:00:00Z",
		// bad exclude id
		"/api/appointments/availability?user_id=8e3f2a34-3b74-4f77-9e56-0a1d8f1f2e11&start_time=2026-03-10T10:00:00Z&end_time=2026-03-10T11:00:00Z&exclude_appointment_id=nope",
	}
	for _, url := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		if err != nil {
			t.Fatalf("app.Test(%s): %v", url, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", url, resp.StatusCode)
		}
	}
}
