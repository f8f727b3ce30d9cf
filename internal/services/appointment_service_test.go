package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
)

func ts(hour int) time.Time {
	return time.Date(2026, time.March, 10, hour, 0, 0, 0, time.UTC)
}

func TestValidateTimeChange(t *testing.T) {
	existing := &models.Appointment{StartTime: ts(10), EndTime: ts(11)}

	cases := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		wantErr bool
	}{
		{"both valid", ptr(ts(9)), ptr(ts(12)), false},
		{"both inverted", ptr(ts(12)), ptr(ts(9)), true},
		{"both equal", ptr(ts(9)), ptr(ts(9)), true},
		{"start only, before stored end", ptr(ts(9)), nil, false},
		{"start only, after stored end", ptr(ts(12)), nil, true},
		{"start only, equal to stored end", ptr(ts(11)), nil, true},
		{"end only, after stored start", nil, ptr(ts(12)), false},
		{"end only, before stored start", nil, ptr(ts(9)), true},
		{"neither", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTimeChange(existing, tc.start, tc.end)
			if tc.wantErr && !errors.Is(err, ErrInvalidTimeRange) {
				t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckAvailabilityRejectsInvertedRange(t *testing.T) {
	svc := NewAppointmentService(nil)
	_, err := svc.CheckAvailability(uuid.New(), ts(12), ts(9), uuid.Nil)
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestCheckAvailabilityInclusiveBoundary(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAppointmentService(gdb)
	userID := uuid.New()

	// An appointment ending exactly at the requested start still conflicts,
	// and the conflicting row comes back in the response.
	existingID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WithArgs(userID, models.AppointmentScheduled, models.AppointmentConfirmed, ts(11), ts(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "start_time", "end_time", "status"}).
			AddRow(existingID, userID, "Herbal consultation", ts(9), ts(10), models.AppointmentScheduled))

	resp, err := svc.CheckAvailability(userID, ts(10), ts(11), uuid.Nil)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if resp.Available {
		t.Fatal("slot with touching appointment reported as available")
	}
	if len(resp.ConflictingAppointments) != 1 {
		t.Fatalf("conflicting appointments = %d, want 1", len(resp.ConflictingAppointments))
	}
	if resp.ConflictingAppointments[0].ID != existingID {
		t.Fatalf("conflicting appointment id = %s, want %s", resp.ConflictingAppointments[0].ID, existingID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckAvailabilityExcludesAppointment(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAppointmentService(gdb)
	userID := uuid.New()
	excludeID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WithArgs(userID, models.AppointmentScheduled, models.AppointmentConfirmed, ts(11), ts(10), excludeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "start_time", "end_time", "status"}))

	resp, err := svc.CheckAvailability(userID, ts(10), ts(11), excludeID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !resp.Available {
		t.Fatal("free slot reported as unavailable")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateAllowsOverlappingBooking(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAppointmentService(gdb)
	userID := uuid.New()

	// No availability probe before the write: overlap never blocks a
	// booking, the availability endpoint is advisory.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	appt, err := svc.Create(&dto.CreateAppointmentRequest{
		UserID:    userID.String(),
		Title:     "Herbal consultation",
		StartTime: ts(10),
		EndTime:   ts(11),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if appt.Status != models.AppointmentScheduled {
		t.Fatalf("status = %s, want scheduled", appt.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc := NewAppointmentService(nil)
	_, err := svc.Create(&dto.CreateAppointmentRequest{
		UserID:    uuid.New().String(),
		Title:     "Herbal consultation",
		StartTime: ts(11),
		EndTime:   ts(10),
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func appointmentRows(id, userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "start_time", "end_time", "status"}).
		AddRow(id, userID, "Herbal consultation", ts(10), ts(11), models.AppointmentScheduled)
}

func TestDeleteByForeignUserIsForbidden(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAppointmentService(gdb)
	id, ownerID, actorID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(appointmentRows(id, ownerID))
	mock.ExpectQuery(`SELECT "role" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("seeker"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, actorID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := svc.Delete(id, actorID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// The ownership predicate matched nothing, so the row is untouched.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteByModeratorSkipsOwnershipPredicate(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAppointmentService(gdb)
	id, ownerID, modID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(appointmentRows(id, ownerID))
	mock.ExpectQuery(`SELECT "role" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("moderator"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE id = \$1$`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Delete(id, modID); err != nil {
		t.Fatalf("moderator delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewAppointmentService(nil)
	_, err := svc.UpdateStatus(uuid.New(), &dto.UpdateAppointmentStatusRequest{
		UserID: uuid.New().String(),
		Status: "postponed",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func ptr(t time.Time) *time.Time { return &t }
