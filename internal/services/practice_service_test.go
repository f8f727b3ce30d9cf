package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func restrictedPracticeRows(id, userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "cultural_group", "cultural_sensitivity_level"}).
		AddRow(id, userID, "Naming ceremony protocol", "akan", "restricted")
}

func emptyProfileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name"})
}

func TestGetHidesRestrictedPracticeFromOutsiders(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPracticeService(gdb)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "cultural_practices"`).
		WillReturnRows(restrictedPracticeRows(id, userID))
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(emptyProfileRows())

	_, err := svc.Get(id, "")
	if !errors.Is(err, ErrRestrictedPractice) {
		t.Fatalf("expected ErrRestrictedPractice, got %v", err)
	}
}

func TestDeleteAllowsMatchingCulturalAffiliation(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPracticeService(gdb)
	id, ownerID, actorID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "cultural_practices"`).
		WillReturnRows(restrictedPracticeRows(id, ownerID))
	// A seeker whose affiliation matches the practice's group may delete it.
	mock.ExpectQuery(`SELECT "role","cultural_affiliation" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role", "cultural_affiliation"}).
			AddRow("seeker", "akan"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cultural_practices" WHERE id = \$1$`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Delete(id, actorID); err != nil {
		t.Fatalf("Delete by cultural member: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteKeepsOwnershipPredicateForOutsiders(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPracticeService(gdb)
	id, ownerID, actorID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "cultural_practices"`).
		WillReturnRows(restrictedPracticeRows(id, ownerID))
	mock.ExpectQuery(`SELECT "role","cultural_affiliation" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"role", "cultural_affiliation"}).
			AddRow("seeker", "yoruba"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cultural_practices" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, actorID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := svc.Delete(id, actorID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetServesRestrictedPracticeToMatchingGroup(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPracticeService(gdb)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "cultural_practices"`).
		WillReturnRows(restrictedPracticeRows(id, userID))
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(emptyProfileRows())

	practice, err := svc.Get(id, "akan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if practice.Title != "Naming ceremony protocol" {
		t.Fatalf("unexpected practice %+v", practice)
	}
}
