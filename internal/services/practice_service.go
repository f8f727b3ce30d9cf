package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
)

var ErrRestrictedPractice = errors.New("practice is restricted to its cultural group")

type PracticeFilters struct {
	UserID        string
	CulturalGroup string
	Type          string
	Search        string
	// ViewerGroup comes from the X-Cultural-Group header and unlocks
	// restricted entries belonging to that group.
	ViewerGroup string
	Page        int
	Limit       int
}

type PracticeService struct {
	db *gorm.DB
}

func NewPracticeService(db *gorm.DB) *PracticeService {
	return &PracticeService{db: db}
}

func (s *PracticeService) Create(req *dto.CreatePracticeRequest) (*models.CulturalPractice, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	level := models.SensitivityPublic
	if req.SensitivityLevel != "" {
		level = models.SensitivityLevel(req.SensitivityLevel)
	}

	practice := models.CulturalPractice{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              req.Title,
		Type:               req.Type,
		CulturalGroup:      req.CulturalGroup,
		Description:        req.Description,
		TimeOfYear:         req.TimeOfYear,
		SensitivityLevel:   level,
		VerificationStatus: models.VerificationPending,
	}
	if err := s.db.Create(&practice).Error; err != nil {
		return nil, fmt.Errorf("failed to create practice: %w", err)
	}
	return &practice, nil
}

// List hides restricted practices unless the viewer declares the matching
// cultural group.
func (s *PracticeService) List(f PracticeFilters) ([]models.CulturalPractice, dto.Pagination, error) {
	query := s.db.Model(&models.CulturalPractice{})

	if f.UserID != "" {
		if id, err := uuid.Parse(f.UserID); err == nil {
			query = query.Scopes(scopes.OwnedBy(id))
		}
	}
	if f.CulturalGroup != "" {
		query = query.Where("cultural_group = ?", f.CulturalGroup)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if f.ViewerGroup != "" {
		query = query.Where("cultural_sensitivity_level = ? OR cultural_group = ?",
			models.SensitivityPublic, f.ViewerGroup)
	} else {
		query = query.Where("cultural_sensitivity_level = ?", models.SensitivityPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count practices: %w", err)
	}

	var practices []models.CulturalPractice
	err := query.Preload("User").
		Scopes(scopes.Newest(), scopes.Paginate(f.Page, f.Limit)).
		Find(&practices).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list practices: %w", err)
	}
	return practices, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *PracticeService) Get(id uuid.UUID, viewerGroup string) (*models.CulturalPractice, error) {
	var practice models.CulturalPractice
	if err := s.db.Preload("User").First(&practice, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	if practice.SensitivityLevel == models.SensitivityRestricted && practice.CulturalGroup != viewerGroup {
		return nil, ErrRestrictedPractice
	}
	return &practice, nil
}

func (s *PracticeService) Update(id uuid.UUID, req *dto.UpdatePracticeRequest) (*models.CulturalPractice, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	var existing models.CulturalPractice
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.CulturalGroup != nil {
		updates["cultural_group"] = *req.CulturalGroup
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TimeOfYear != nil {
		updates["time_of_year"] = *req.TimeOfYear
	}
	if req.SensitivityLevel != nil {
		level := models.SensitivityLevel(*req.SensitivityLevel)
		if !level.Valid() {
			return nil, fmt.Errorf("invalid sensitivity level %q", *req.SensitivityLevel)
		}
		updates["cultural_sensitivity_level"] = level
	}
	if len(updates) == 0 {
		return &existing, nil
	}

	query := s.db.Model(&models.CulturalPractice{}).Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update practice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}

	var updated models.CulturalPractice
	if err := s.db.Preload("User").First(&updated, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &updated, nil
}

// Delete removes a practice entry. Besides the owner and moderators,
// a member of the practice's cultural group may remove entries about
// their own community.
func (s *PracticeService) Delete(id, actorID uuid.UUID) error {
	var practice models.CulturalPractice
	if err := s.db.First(&practice, "id = ?", id).Error; err != nil {
		return ErrNotFound
	}

	var actor models.User
	if err := s.db.Select("role", "cultural_affiliation").First(&actor, "id = ?", actorID).Error; err != nil {
		return ErrForbidden
	}

	query := s.db.Where("id = ?", id)
	isMember := actor.CulturalAffiliation != "" &&
		actor.CulturalAffiliation == practice.CulturalGroup
	if actor.Role != models.RoleModerator && !isMember {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Delete(&models.CulturalPractice{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete practice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}

// Verify sets the moderation outcome on a practice entry.
func (s *PracticeService) Verify(id uuid.UUID, req *dto.VerifyRequest) (*models.CulturalPractice, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	status := models.VerificationStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidVerification
	}
	if !isModerator(s.db, actorID) {
		return nil, ErrForbidden
	}

	now := time.Now()
	result := s.db.Model(&models.CulturalPractice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verification_status": status,
		"verified_by":         actorID,
		"verification_notes":  req.Notes,
		"verified_at":         now,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to verify practice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var practice models.CulturalPractice
	if err := s.db.Preload("User").First(&practice, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &practice, nil
}
