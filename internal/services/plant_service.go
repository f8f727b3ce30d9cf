package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
)

type PlantFilters struct {
	CulturalGroup      string
	Region             string
	VerificationStatus string
	Search             string
	Page               int
	Limit              int
}

// ErrInvalidVerification rejects verification statuses outside the
// known set.
var ErrInvalidVerification = errors.New("invalid verification status")

type PlantService struct {
	db *gorm.DB
}

func NewPlantService(db *gorm.DB) *PlantService {
	return &PlantService{db: db}
}

func (s *PlantService) Create(req *dto.CreatePlantRequest, photoURL string, additionalURLs []string) (*models.Plant, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	plant := models.Plant{
		ID:                 uuid.New(),
		UserID:             userID,
		ScientificName:     req.ScientificName,
		Family:             req.Family,
		LocalNames:         jsonArray(req.LocalNames),
		CulturalGroup:      req.CulturalGroup,
		Description:        req.Description,
		TraditionalUses:    jsonArray(req.TraditionalUses),
		RegionsFound:       jsonArray(req.RegionsFound),
		SafetyNotes:        req.SafetyNotes,
		PhotoURL:           photoURL,
		AdditionalPhotos:   jsonArray(additionalURLs),
		VerificationStatus: models.VerificationPending,
		LastUpdatedBy:      &userID,
	}
	if err := s.db.Create(&plant).Error; err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}
	return &plant, nil
}

func (s *PlantService) List(f PlantFilters) ([]models.Plant, dto.Pagination, error) {
	query := s.db.Model(&models.Plant{})

	if f.CulturalGroup != "" {
		query = query.Where("cultural_group = ?", f.CulturalGroup)
	}
	if f.VerificationStatus != "" {
		query = query.Where("verification_status = ?", f.VerificationStatus)
	}
	if f.Region != "" {
		b, _ := json.Marshal([]string{f.Region})
		query = query.Where("regions_found @> ?", string(b))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("scientific_name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count plants: %w", err)
	}

	var plants []models.Plant
	err := query.Preload("User").
		Scopes(scopes.Newest(), scopes.Paginate(f.Page, f.Limit)).
		Find(&plants).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *PlantService) Get(id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	if err := s.db.Preload("User").First(&plant, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &plant, nil
}

// Update applies the provided fields. Non-owners are rejected unless
// they hold the moderator role; the ownership check rides on the UPDATE
// itself so a concurrent owner change cannot slip through. The returned
// slice holds image URLs detached via delete_images, for bucket cleanup.
func (s *PlantService) Update(id uuid.UUID, req *dto.UpdatePlantRequest, photoURL string, additionalURLs []string) (*models.Plant, []string, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid user id: %w", err)
	}

	var existing models.Plant
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, nil, ErrNotFound
	}

	updates := map[string]interface{}{"last_updated_by": actorID}
	if req.ScientificName != nil {
		updates["scientific_name"] = *req.ScientificName
	}
	if req.Family != nil {
		updates["family"] = *req.Family
	}
	if req.LocalNames != nil {
		updates["local_names"] = jsonArray(*req.LocalNames)
	}
	if req.CulturalGroup != nil {
		updates["cultural_group"] = *req.CulturalGroup
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TraditionalUses != nil {
		updates["traditional_uses"] = jsonArray(*req.TraditionalUses)
	}
	if req.RegionsFound != nil {
		updates["regions_found"] = jsonArray(*req.RegionsFound)
	}
	if req.SafetyNotes != nil {
		updates["safety_notes"] = *req.SafetyNotes
	}
	if photoURL != "" {
		updates["photo_url"] = photoURL
	}

	var removed []string
	if len(additionalURLs) > 0 || len(req.DeleteImages) > 0 {
		photos := jsonStrings(existing.AdditionalPhotos)
		if len(req.DeleteImages) > 0 {
			drop := make(map[string]bool, len(req.DeleteImages))
			for _, url := range req.DeleteImages {
				drop[url] = true
			}
			kept := photos[:0]
			for _, url := range photos {
				if drop[url] {
					removed = append(removed, url)
				} else {
					kept = append(kept, url)
				}
			}
			photos = kept
			if drop[existing.PhotoURL] && existing.PhotoURL != "" {
				removed = append(removed, existing.PhotoURL)
				updates["photo_url"] = ""
			}
		}
		photos = append(photos, additionalURLs...)
		updates["additional_photos"] = jsonArray(photos)
	}

	query := s.db.Model(&models.Plant{}).Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, nil, fmt.Errorf("failed to update plant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil, ErrForbidden
	}

	plant, err := s.Get(id)
	return plant, removed, err
}

// ListByUser returns a contributor's plant entries.
func (s *PlantService) ListByUser(userID uuid.UUID, page, limit int) ([]models.Plant, dto.Pagination, error) {
	query := s.db.Model(&models.Plant{}).Scopes(scopes.OwnedBy(userID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count plants: %w", err)
	}

	var plants []models.Plant
	err := query.Scopes(scopes.Newest(), scopes.Paginate(page, limit)).Find(&plants).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, dto.NewPagination(page, limit, total), nil
}

// Delete removes a plant. Only the owner or a moderator may delete; the
// URLs of stored media are returned so the caller can clean the bucket.
func (s *PlantService) Delete(id, actorID uuid.UUID) ([]string, error) {
	var plant models.Plant
	if err := s.db.First(&plant, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	query := s.db.Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Delete(&models.Plant{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete plant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}

	urls := jsonStrings(plant.AdditionalPhotos)
	if plant.PhotoURL != "" {
		urls = append(urls, plant.PhotoURL)
	}
	return urls, nil
}

// Verify sets the moderation outcome on a plant entry.
func (s *PlantService) Verify(id uuid.UUID, req *dto.VerifyRequest) (*models.Plant, error) {
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
	result := s.db.Model(&models.Plant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verification_status": status,
		"verified_by":         actorID,
		"verification_notes":  req.Notes,
		"verified_at":         now,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to verify plant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}
