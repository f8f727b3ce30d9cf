package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Engagement is a community post. Counter columns are maintained by the
// service on like/comment/view writes.
type Engagement struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	EngagementType string         `gorm:"size:50;index" json:"engagement_type"`
	Tags           datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	MediaURLs      datatypes.JSON `gorm:"column:media_urls;type:jsonb;default:'[]'" json:"media_urls"`
	LikeCount      int            `gorm:"default:0" json:"like_count"`
	CommentCount   int            `gorm:"default:0" json:"comment_count"`
	ViewCount      int            `gorm:"default:0" json:"view_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	User           User           `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

type EngagementLike struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EngagementID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_likes_unique" json:"engagement_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_likes_unique" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type EngagementComment struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EngagementID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"engagement_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_comment_id,omitempty"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	User            User       `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

// EngagementView records one view per user per post.
type EngagementView struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EngagementID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_views_unique" json:"engagement_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_views_unique" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
