package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
)

func TestPlantCreateThenGetRoundTrip(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPlantService(gdb)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "plants"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := svc.Create(&dto.CreatePlantRequest{
		UserID:         userID.String(),
		ScientificName: "Vernonia amygdalina",
		CulturalGroup:  "akan",
	}, "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	mock.ExpectQuery(`SELECT \* FROM "plants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "scientific_name", "cultural_group", "verification_status"}).
			AddRow(created.ID, userID, "Vernonia amygdalina", "akan", "pending"))
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(emptyProfileRows())

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ScientificName != created.ScientificName {
		t.Fatalf("scientific_name = %q, want %q", got.ScientificName, created.ScientificName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPlantVerifyRejectsUnknownStatus(t *testing.T) {
	svc := NewPlantService(nil)
	_, err := svc.Verify(uuid.New(), &dto.VerifyRequest{
		UserID: uuid.New().String(),
		Status: "approved",
	})
	if !errors.Is(err, ErrInvalidVerification) {
		t.Fatalf("expected ErrInvalidVerification, got %v", err)
	}
}
