package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a contributor consultation slot. start_time < end_time is
// enforced at write time by the service; there is no DB constraint.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string            `gorm:"size:255;not null" json:"title"`
	Description     string            `gorm:"type:text" json:"description"`
	AppointmentType string            `gorm:"size:100;index" json:"appointment_type"`
	Location        string            `gorm:"size:255" json:"location"`
	StartTime       time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime         time.Time         `gorm:"not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	User            User              `gorm:"foreignKey:UserID" json:"-"`
}
