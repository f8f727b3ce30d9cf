package models

import (
	"time"

	"github.com/google/uuid"
)

// ContributorApplication is a seeker's request to be granted the contributor
// role, reviewed out of band by moderators.
type ContributorApplication struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	KnowledgeDomains string    `gorm:"type:text;not null" json:"knowledge_domains"`
	Experience       string    `gorm:"type:text;not null" json:"experience"`
	Motivation       string    `gorm:"type:text;not null" json:"motivation"`
	Status           string    `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	User             User      `gorm:"foreignKey:UserID" json:"-"`
}
