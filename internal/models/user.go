package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the profile row mirrored from the auth layer. Profiles are never
// hard-deleted; GORM soft delete keeps the row for audit.
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email               string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password            string         `gorm:"not null" json:"-"`
	Role                Role           `gorm:"size:20;default:'seeker';index" json:"role"`
	FullName            string         `gorm:"size:255" json:"full_name"`
	Phone               string         `gorm:"size:50" json:"phone"`
	CulturalAffiliation string         `gorm:"size:100;index" json:"cultural_affiliation"`
	AvatarURL           string         `gorm:"type:text" json:"avatar_url,omitempty"`
	IsVerified          bool           `gorm:"default:false" json:"is_verified"`
	AgreedToTerms       bool           `gorm:"default:false" json:"agreed_to_terms"`
	EthicsAgreed        bool           `gorm:"default:false" json:"ethics_agreed"`
	SafetyAgreed        bool           `gorm:"default:false" json:"safety_agreed"`
	NewsletterAgreed    bool           `gorm:"default:false" json:"newsletter_agreed"`
	TermsAgreedAt       *time.Time     `json:"terms_agreed_at,omitempty"`
	AuthProvider        string         `gorm:"size:50;default:'email'" json:"-"`
	GoogleID            *string        `gorm:"size:255;index" json:"-"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "profiles"
}

// ProfileSummary is the joined owner payload embedded in resource responses.
type ProfileSummary struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	CulturalAffiliation string    `json:"cultural_affiliation,omitempty"`
}

// Summary projects the joined profile fields resource handlers attach.
func (u *User) Summary() ProfileSummary {
	return ProfileSummary{
		ID:                  u.ID,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		AvatarURL:           u.AvatarURL,
		CulturalAffiliation: u.CulturalAffiliation,
	}
}
