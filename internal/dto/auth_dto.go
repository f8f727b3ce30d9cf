package dto

import "github.com/heritageroots/heritage-backend/internal/models"

type SignupRequest struct {
	Email               string `json:"email" validate:"required,email"`
	Password            string `json:"password" validate:"required,min=8"`
	FullName            string `json:"full_name" validate:"required"`
	Phone               string `json:"phone"`
	Role                string `json:"role" validate:"required,oneof=seeker contributor moderator"`
	CulturalAffiliation string `json:"cultural_affiliation"`
	AgreedToTerms       bool   `json:"agreed_to_terms" validate:"required"`
	EthicsAgreed        bool   `json:"ethics_agreed"`
	SafetyAgreed        bool   `json:"safety_agreed"`
	NewsletterAgreed    bool   `json:"newsletter_agreed"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token       string                `json:"token"`
	DashboardURL string               `json:"dashboard_url"`
	User        models.ProfileSummary `json:"user"`
}

type StatusResponse struct {
	Authenticated bool                   `json:"authenticated"`
	User          *models.ProfileSummary `json:"user,omitempty"`
}

// CulturalSignupRequest completes a Google OAuth signup with the
// profile fields the provider cannot supply.
type CulturalSignupRequest struct {
	PendingToken        string `json:"pending_token" validate:"required"`
	Role                string `json:"role" validate:"required,oneof=seeker contributor moderator"`
	CulturalAffiliation string `json:"cultural_affiliation"`
	Phone               string `json:"phone"`
	AgreedToTerms       bool   `json:"agreed_to_terms" validate:"required"`
	EthicsAgreed        bool   `json:"ethics_agreed"`
	SafetyAgreed        bool   `json:"safety_agreed"`
	NewsletterAgreed    bool   `json:"newsletter_agreed"`
}

type ContributorApplicationRequest struct {
	KnowledgeDomains string `json:"knowledge_domains" validate:"required"`
	Experience       string `json:"experience" validate:"required"`
	Motivation       string `json:"motivation" validate:"required"`
}
