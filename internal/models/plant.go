package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plant is a contributed plant knowledge entry with taxonomy, traditional-use
// and media fields. Media URLs point at the plant-images bucket.
type Plant struct {
	ID                 uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ScientificName     string             `gorm:"size:255;not null" json:"scientific_name"`
	Family             string             `gorm:"size:255" json:"family"`
	LocalNames         datatypes.JSON     `gorm:"type:jsonb;default:'[]'" json:"local_names"`
	CulturalGroup      string             `gorm:"size:100;index" json:"cultural_group"`
	Description        string             `gorm:"type:text" json:"description"`
	TraditionalUses    datatypes.JSON     `gorm:"type:jsonb;default:'[]'" json:"traditional_uses"`
	RegionsFound       datatypes.JSON     `gorm:"type:jsonb;default:'[]'" json:"regions_found"`
	SafetyNotes        string             `gorm:"type:text" json:"safety_notes"`
	PhotoURL           string             `gorm:"type:text" json:"photo_url,omitempty"`
	AdditionalPhotos   datatypes.JSON     `gorm:"type:jsonb;default:'[]'" json:"additional_photos"`
	VerificationStatus VerificationStatus `gorm:"size:20;default:'pending';index" json:"verification_status"`
	VerifiedBy         *uuid.UUID         `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerificationNotes  string             `gorm:"type:text" json:"verification_notes,omitempty"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	LastUpdatedBy      *uuid.UUID         `gorm:"type:uuid" json:"last_updated_by,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	User               User               `gorm:"foreignKey:UserID" json:"contributor,omitempty"`
}
