package services

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("not allowed to modify this record")
)

// jsonArray marshals a string slice into a JSONB column value.
// A nil slice becomes an empty array, never null.
func jsonArray(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func jsonStrings(j datatypes.JSON) []string {
	var out []string
	if len(j) > 0 {
		_ = json.Unmarshal(j, &out)
	}
	return out
}

// isModerator reports whether the acting user holds the moderator role.
func isModerator(db *gorm.DB, userID uuid.UUID) bool {
	var user models.User
	if err := db.Select("role").First(&user, "id = ?", userID).Error; err != nil {
		return false
	}
	return user.Role == models.RoleModerator
}
