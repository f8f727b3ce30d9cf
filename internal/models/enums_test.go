package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSeeker, RoleContributor, RoleModerator} {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	if Role("admin").Valid() {
		t.Error("unknown role accepted")
	}
}

func TestDashboardFor(t *testing.T) {
	cases := map[Role]string{
		RoleSeeker:      "/seeker-dashboard.html",
		RoleContributor: "/contributor-dashboard.html",
		RoleModerator:   "/moderator-dashboard.html",
		Role("unknown"): "/seeker-dashboard.html",
	}
	for role, want := range cases {
		if got := DashboardFor(role); got != want {
			t.Errorf("DashboardFor(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestSeekerReportReasons(t *testing.T) {
	valid := []SeekerReportReason{"EXPIRED", "FAKE", "MISLABELLED", "MADE_ME_SICK", "UNUSUAL_TASTE"}
	for _, r := range valid {
		if !r.Valid() {
			t.Errorf("reason %q should be valid", r)
		}
	}
	for _, r := range []SeekerReportReason{"", "expired", "SUSPICIOUS_BATCH"} {
		if r.Valid() {
			t.Errorf("reason %q should be rejected", r)
		}
	}
}

func TestContributorReportReasons(t *testing.T) {
	valid := []ContributorReportReason{
		"SUSPICIOUS_BATCH", "KNOWINGLY_SOLD_FAKE", "POOR_CONDITION",
		"MISSING_BARCODES", "EXPIRED_GOODS", "DAMAGED_GOODS",
	}
	for _, r := range valid {
		if !r.Valid() {
			t.Errorf("reason %q should be valid", r)
		}
	}
	if ContributorReportReason("EXPIRED").Valid() {
		t.Error("seeker-only reason accepted for contributor reports")
	}
}

func TestReportStatusSets(t *testing.T) {
	if SeekerReportStatuses[ReportAwaitingDistributor] {
		t.Error("AWAITING_DISTRIBUTOR_RESPONSE must not be a seeker status")
	}
	if !ContributorReportStatuses[ReportAwaitingDistributor] {
		t.Error("AWAITING_DISTRIBUTOR_RESPONSE must be a contributor status")
	}
	for _, s := range []ReportStatus{ReportPendingReview, ReportUnderInvestigation, ReportResolved} {
		if !SeekerReportStatuses[s] || !ContributorReportStatuses[s] {
			t.Errorf("status %q should be in both sets", s)
		}
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted} {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if AppointmentStatus("pending").Valid() {
		t.Error("unknown appointment status accepted")
	}
}
