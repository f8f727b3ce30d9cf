package models

import (
	"time"

	"github.com/google/uuid"
)

// CulturalPractice is contributed cultural knowledge. Restricted practices are
// only served to requesters whose cultural group matches.
type CulturalPractice struct {
	ID                 uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title              string             `gorm:"size:255;not null" json:"title"`
	Type               string             `gorm:"size:100;index" json:"type"`
	CulturalGroup      string             `gorm:"size:100;index" json:"cultural_group"`
	Description        string             `gorm:"type:text" json:"description"`
	TimeOfYear         string             `gorm:"size:255" json:"time_of_year"`
	SensitivityLevel   SensitivityLevel   `gorm:"column:cultural_sensitivity_level;size:20;default:'public';index" json:"cultural_sensitivity_level"`
	VerificationStatus VerificationStatus `gorm:"size:20;default:'pending';index" json:"verification_status"`
	VerifiedBy         *uuid.UUID         `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerificationNotes  string             `gorm:"type:text" json:"verification_notes,omitempty"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	LastUpdatedBy      *uuid.UUID         `gorm:"type:uuid" json:"last_updated_by,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	User               User               `gorm:"foreignKey:UserID" json:"contributor,omitempty"`
}
