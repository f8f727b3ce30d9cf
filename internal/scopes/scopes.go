package scopes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page and page size.
func Paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		return db.Limit(limit).Offset((page - 1) * limit)
	}
}

// OwnedBy filters rows to those created by the given user.
func OwnedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// CreatedBetween filters rows on created_at. Zero bounds are skipped.
func CreatedBetween(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("created_at <= ?", to)
		}
		return db
	}
}

// Newest orders by created_at descending.
func Newest() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}
}
