package models

// Role is a profile's platform role.
type Role string

const (
	RoleSeeker      Role = "seeker"
	RoleContributor Role = "contributor"
	RoleModerator   Role = "moderator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleContributor, RoleModerator:
		return true
	}
	return false
}

// DashboardURL maps a role to its post-login landing page.
var DashboardURL = map[Role]string{
	RoleSeeker:      "/seeker-dashboard.html",
	RoleContributor: "/contributor-dashboard.html",
	RoleModerator:   "/moderator-dashboard.html",
}

// DashboardFor returns the dashboard path for a role, defaulting to seeker.
func DashboardFor(r Role) string {
	if url, ok := DashboardURL[r]; ok {
		return url
	}
	return DashboardURL[RoleSeeker]
}

// VerificationStatus tracks the moderation lifecycle of contributed content.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// SensitivityLevel gates cultural practice visibility.
type SensitivityLevel string

const (
	SensitivityPublic     SensitivityLevel = "public"
	SensitivityRestricted SensitivityLevel = "restricted"
)

func (s SensitivityLevel) Valid() bool {
	return s == SensitivityPublic || s == SensitivityRestricted
}

// AppointmentStatus is the booking lifecycle state.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// ReportStatus is the review workflow state shared by both report kinds.
// Seeker reports use a subset; contributor reports add the distributor stage.
// There is no adjacency graph: moderators may move a report between any two
// states, including out of RESOLVED.
type ReportStatus string

const (
	ReportPendingReview        ReportStatus = "PENDING_REVIEW"
	ReportAwaitingDistributor  ReportStatus = "AWAITING_DISTRIBUTOR_RESPONSE"
	ReportUnderInvestigation   ReportStatus = "UNDER_INVESTIGATION"
	ReportResolved             ReportStatus = "RESOLVED"
)

// SeekerReportStatuses is the allowed status set for seeker reports.
var SeekerReportStatuses = map[ReportStatus]bool{
	ReportPendingReview:      true,
	ReportUnderInvestigation: true,
	ReportResolved:           true,
}

// ContributorReportStatuses is the allowed status set for contributor reports.
var ContributorReportStatuses = map[ReportStatus]bool{
	ReportPendingReview:       true,
	ReportAwaitingDistributor: true,
	ReportUnderInvestigation:  true,
	ReportResolved:            true,
}

// SeekerReportReason is why a seeker flagged a product.
type SeekerReportReason string

var SeekerReportReasons = map[SeekerReportReason]bool{
	"EXPIRED":       true,
	"FAKE":          true,
	"MISLABELLED":   true,
	"MADE_ME_SICK":  true,
	"UNUSUAL_TASTE": true,
}

func (r SeekerReportReason) Valid() bool {
	return SeekerReportReasons[r]
}

// ContributorReportReason is why a contributor flagged a distributor batch.
type ContributorReportReason string

var ContributorReportReasons = map[ContributorReportReason]bool{
	"SUSPICIOUS_BATCH":    true,
	"KNOWINGLY_SOLD_FAKE": true,
	"POOR_CONDITION":      true,
	"MISSING_BARCODES":    true,
	"EXPIRED_GOODS":       true,
	"DAMAGED_GOODS":       true,
}

func (r ContributorReportReason) Valid() bool {
	return ContributorReportReasons[r]
}
