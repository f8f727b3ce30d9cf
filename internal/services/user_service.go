package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
)

type UserFilters struct {
	Role          string
	CulturalGroup string
	Search        string
	IsVerified    *bool
	Page          int
	Limit         int
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(f UserFilters) ([]models.ProfileSummary, dto.Pagination, error) {
	query := s.db.Model(&models.User{})

	if f.Role != "" {
		query = query.Where("role = ?", f.Role)
	}
	if f.CulturalGroup != "" {
		query = query.Where("cultural_affiliation = ?", f.CulturalGroup)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if f.IsVerified != nil {
		query = query.Where("is_verified = ?", *f.IsVerified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	err := query.Scopes(scopes.Newest(), scopes.Paginate(f.Page, f.Limit)).Find(&users).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]models.ProfileSummary, len(users))
	for i := range users {
		summaries[i] = users[i].Summary()
	}
	return summaries, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *UserService) Get(id uuid.UUID) (*models.ProfileSummary, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	summary := user.Summary()
	return &summary, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.ProfileSummary, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.CulturalAffiliation != nil {
		updates["cultural_affiliation"] = *req.CulturalAffiliation
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.NewsletterAgreed != nil {
		updates["newsletter_agreed"] = *req.NewsletterAgreed
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

// Delete soft-deletes the profile and revokes its sessions.
func (s *UserService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Session{}).
			Where("user_id = ?", id).
			Update("revoked", true).Error
	})
}

func (s *UserService) GetByEmail(email string) (*models.ProfileSummary, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	summary := user.Summary()
	return &summary, nil
}

// SetVerification stamps a profile's verified flag; moderator only.
func (s *UserService) SetVerification(id, actorID uuid.UUID, verified bool) (*models.ProfileSummary, error) {
	if !isModerator(s.db, actorID) {
		return nil, ErrForbidden
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("is_verified", verified)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update verification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

// UserStats aggregates profile counts for the moderator dashboard.
type UserStats struct {
	Total        int64 `json:"total"`
	Seekers      int64 `json:"seekers"`
	Contributors int64 `json:"contributors"`
	Moderators   int64 `json:"moderators"`
	Verified     int64 `json:"verified"`
}

func (s *UserService) Stats() (*UserStats, error) {
	stats := &UserStats{}
	counts := []struct {
		dest  *int64
		where []interface{}
	}{
		{&stats.Total, nil},
		{&stats.Seekers, []interface{}{"role = ?", models.RoleSeeker}},
		{&stats.Contributors, []interface{}{"role = ?", models.RoleContributor}},
		{&stats.Moderators, []interface{}{"role = ?", models.RoleModerator}},
		{&stats.Verified, []interface{}{"is_verified = true"}},
	}
	for _, c := range counts {
		q := s.db.Model(&models.User{})
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute user stats: %w", err)
		}
	}
	return stats, nil
}
