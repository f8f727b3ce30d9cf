package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAlreadyLiked = errors.New("engagement already liked by this user")

type EngagementFilters struct {
	Type   string
	Tag    string
	UserID string
	Search string
	SortBy string
	Page   int
	Limit  int
}

// engagementSortColumns whitelists the orderable columns so a caller can
// never inject arbitrary SQL through sort_by.
var engagementSortColumns = map[string]bool{
	"created_at":    true,
	"like_count":    true,
	"comment_count": true,
	"view_count":    true,
}

type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) Create(req *dto.CreateEngagementRequest, mediaURLs []string) (*models.Engagement, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	engagementType := req.EngagementType
	if engagementType == "" {
		engagementType = "post"
	}

	engagement := models.Engagement{
		ID:             uuid.New(),
		UserID:         userID,
		Content:        req.Content,
		EngagementType: engagementType,
		Tags:           jsonArray(req.Tags),
		MediaURLs:      jsonArray(mediaURLs),
	}
	if err := s.db.Create(&engagement).Error; err != nil {
		return nil, fmt.Errorf("failed to create engagement: %w", err)
	}
	return &engagement, nil
}

func (s *EngagementService) List(f EngagementFilters) ([]models.Engagement, dto.Pagination, error) {
	query := s.db.Model(&models.Engagement{})

	if f.Type != "" {
		query = query.Where("engagement_type = ?", f.Type)
	}
	if f.Tag != "" {
		b, _ := json.Marshal([]string{f.Tag})
		query = query.Where("tags @> ?", string(b))
	}
	if f.UserID != "" {
		if id, err := uuid.Parse(f.UserID); err == nil {
			query = query.Scopes(scopes.OwnedBy(id))
		}
	}
	if f.Search != "" {
		query = query.Where("content ILIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count engagements: %w", err)
	}

	order := "created_at DESC"
	if engagementSortColumns[f.SortBy] {
		order = f.SortBy + " DESC"
	}

	var engagements []models.Engagement
	err := query.Preload("User").
		Order(order).
		Scopes(scopes.Paginate(f.Page, f.Limit)).
		Find(&engagements).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list engagements: %w", err)
	}
	return engagements, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *EngagementService) Get(id uuid.UUID) (*models.Engagement, error) {
	var engagement models.Engagement
	if err := s.db.Preload("User").First(&engagement, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &engagement, nil
}

// GetForViewer fetches an engagement, records a unique view for the viewer
// and reports whether the viewer has already liked it.
func (s *EngagementService) GetForViewer(id, viewerID uuid.UUID) (*models.Engagement, bool, error) {
	if _, err := s.View(id, &dto.ViewRequest{UserID: viewerID.String()}); err != nil {
		return nil, false, err
	}
	engagement, err := s.Get(id)
	if err != nil {
		return nil, false, err
	}

	var liked int64
	s.db.Model(&models.EngagementLike{}).
		Where("engagement_id = ? AND user_id = ?", id, viewerID).
		Count(&liked)
	return engagement, liked > 0, nil
}

func (s *EngagementService) Update(id uuid.UUID, req *dto.UpdateEngagementRequest, mediaURLs []string) (*models.Engagement, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	var existing models.Engagement
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.EngagementType != nil {
		updates["engagement_type"] = *req.EngagementType
	}
	if req.Tags != nil {
		updates["tags"] = jsonArray(*req.Tags)
	}
	if len(mediaURLs) > 0 {
		merged := append(jsonStrings(existing.MediaURLs), mediaURLs...)
		updates["media_urls"] = jsonArray(merged)
	}
	if len(updates) == 0 {
		return &existing, nil
	}

	query := s.db.Model(&models.Engagement{}).Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update engagement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}
	return s.Get(id)
}

// Delete removes the engagement and its likes, comments and views.
// Returns stored media URLs for bucket cleanup.
func (s *EngagementService) Delete(id, actorID uuid.UUID) ([]string, error) {
	var engagement models.Engagement
	if err := s.db.First(&engagement, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if !isModerator(tx, actorID) {
			query = query.Where("user_id = ?", actorID)
		}
		result := query.Delete(&models.Engagement{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrForbidden
		}
		tx.Where("engagement_id = ?", id).Delete(&models.EngagementLike{})
		tx.Where("engagement_id = ?", id).Delete(&models.EngagementComment{})
		tx.Where("engagement_id = ?", id).Delete(&models.EngagementView{})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to delete engagement: %w", err)
	}
	return jsonStrings(engagement.MediaURLs), nil
}

// Like records a like once per user and bumps the counter.
func (s *EngagementService) Like(id uuid.UUID, req *dto.LikeRequest) (*models.Engagement, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	like := models.EngagementLike{
		ID:           uuid.New(),
		EngagementID: id,
		UserID:       userID,
	}
	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyLiked
	}

	s.db.Model(&models.Engagement{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	return s.Get(id)
}

// Unlike removes a user's like if present.
func (s *EngagementService) Unlike(id uuid.UUID, req *dto.LikeRequest) (*models.Engagement, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	result := s.db.Where("engagement_id = ? AND user_id = ?", id, userID).
		Delete(&models.EngagementLike{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to remove like: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.db.Model(&models.Engagement{}).Where("id = ?", id).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)"))
	}
	return s.Get(id)
}

func (s *EngagementService) Comment(id uuid.UUID, req *dto.CommentRequest) (*models.EngagementComment, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	comment := models.EngagementComment{
		ID:           uuid.New(),
		EngagementID: id,
		UserID:       userID,
		Content:      req.Content,
	}
	if req.ParentCommentID != nil {
		parentID, err := uuid.Parse(*req.ParentCommentID)
		if err != nil {
			return nil, fmt.Errorf("invalid parent comment id: %w", err)
		}
		var parent models.EngagementComment
		if err := s.db.First(&parent, "id = ? AND engagement_id = ?", parentID, id).Error; err != nil {
			return nil, ErrNotFound
		}
		comment.ParentCommentID = &parentID
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	s.db.Model(&models.Engagement{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1"))

	s.db.Preload("User").First(&comment, "id = ?", comment.ID)
	return &comment, nil
}

func (s *EngagementService) ListComments(id uuid.UUID, page, limit int) ([]models.EngagementComment, dto.Pagination, error) {
	query := s.db.Model(&models.EngagementComment{}).Where("engagement_id = ?", id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []models.EngagementComment
	err := query.Preload("User").
		Order("created_at ASC").
		Scopes(scopes.Paginate(page, limit)).
		Find(&comments).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, dto.NewPagination(page, limit, total), nil
}

// View counts each viewer once.
func (s *EngagementService) View(id uuid.UUID, req *dto.ViewRequest) (*models.Engagement, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	view := models.EngagementView{
		ID:           uuid.New(),
		EngagementID: id,
		UserID:       userID,
	}
	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&view)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record view: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.db.Model(&models.Engagement{}).Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	}
	return s.Get(id)
}
