package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
)

func TestSeekerReportCreateRejectsUnknownReason(t *testing.T) {
	svc := NewSeekerReportService(nil)
	_, err := svc.Create(&dto.CreateSeekerReportRequest{
		UserID:      uuid.New().String(),
		ProductName: "Dried hibiscus",
		Reason:      "TASTED_WEIRD",
		Description: "Not the right flower",
	}, nil)
	if !errors.Is(err, ErrInvalidReportReason) {
		t.Fatalf("expected ErrInvalidReportReason, got %v", err)
	}
}

func TestContributorReportCreateRejectsSeekerReason(t *testing.T) {
	svc := NewContributorReportService(nil)
	_, err := svc.Create(&dto.CreateContributorReportRequest{
		UserID:      uuid.New().String(),
		BusinessID:  "biz-17",
		ProductName: "Raw shea butter",
		Reason:      "EXPIRED",
		Description: "Wrong enum family",
	}, nil)
	if !errors.Is(err, ErrInvalidReportReason) {
		t.Fatalf("expected ErrInvalidReportReason, got %v", err)
	}
}

func TestSeekerReportUpdateRevalidatesReason(t *testing.T) {
	svc := NewSeekerReportService(nil)
	badReason := "TASTED_WEIRD"
	_, err := svc.Update(uuid.New(), &dto.UpdateSeekerReportRequest{
		UserID: uuid.New().String(),
		Reason: &badReason,
	})
	if !errors.Is(err, ErrInvalidReportReason) {
		t.Fatalf("expected ErrInvalidReportReason, got %v", err)
	}
}

func TestContributorReportUpdateRevalidatesReason(t *testing.T) {
	svc := NewContributorReportService(nil)
	badReason := "EXPIRED"
	_, err := svc.Update(uuid.New(), &dto.UpdateContributorReportRequest{
		UserID: uuid.New().String(),
		Reason: &badReason,
	})
	if !errors.Is(err, ErrInvalidReportReason) {
		t.Fatalf("expected ErrInvalidReportReason, got %v", err)
	}
}

func TestSeekerStatusUpdateRejectsContributorOnlyStatus(t *testing.T) {
	svc := NewSeekerReportService(nil)
	_, err := svc.UpdateStatus(uuid.New(), &dto.UpdateReportStatusRequest{
		UserID: uuid.New().String(),
		Status: "AWAITING_DISTRIBUTOR_RESPONSE",
	})
	if !errors.Is(err, ErrInvalidReportStatus) {
		t.Fatalf("expected ErrInvalidReportStatus, got %v", err)
	}
}

func TestSeekerStatusUpdateAllowsReopen(t *testing.T) {
	// RESOLVED back to PENDING_REVIEW is legal: transitions are unordered.
	gdb, mock := newMockDB(t)
	svc := NewSeekerReportService(gdb)
	actorID := uuid.New()

	mock.ExpectQuery(`SELECT "role" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("seeker"))

	_, err := svc.UpdateStatus(uuid.New(), &dto.UpdateReportStatusRequest{
		UserID: actorID.String(),
		Status: "PENDING_REVIEW",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-moderator should get ErrForbidden, got %v", err)
	}
}

func TestContributorStatusUpdateRequiresModerator(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewContributorReportService(gdb)

	mock.ExpectQuery(`SELECT "role" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("contributor"))

	_, err := svc.UpdateStatus(uuid.New(), &dto.UpdateReportStatusRequest{
		UserID: uuid.New().String(),
		Status: "AWAITING_DISTRIBUTOR_RESPONSE",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
