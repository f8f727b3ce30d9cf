package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/heritageroots/heritage-backend/internal/models"
)

func TestAvailabilityResponseListsConflictingRows(t *testing.T) {
	b, err := json.Marshal(AvailabilityResponse{
		Available:               false,
		ConflictingAppointments: []models.Appointment{{Title: "Herbal consultation"}},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	if !strings.Contains(body, `"conflicting_appointments"`) {
		t.Fatalf("missing conflicting_appointments key: %s", body)
	}
	if !strings.Contains(body, "Herbal consultation") {
		t.Fatalf("conflicting row not serialized: %s", body)
	}
}
