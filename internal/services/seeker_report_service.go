package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
)

var (
	ErrInvalidReportReason = errors.New("invalid report reason")
	ErrInvalidReportStatus = errors.New("invalid report status")
)

type ReportFilters struct {
	UserID  string
	Status  string
	Reason  string
	Barcode string
	Page    int
	Limit   int
}

type SeekerReportService struct {
	db *gorm.DB
}

func NewSeekerReportService(db *gorm.DB) *SeekerReportService {
	return &SeekerReportService{db: db}
}

func (s *SeekerReportService) Create(req *dto.CreateSeekerReportRequest, evidenceURLs []string) (*models.SeekerReport, error) {
	reason := models.SeekerReportReason(req.Reason)
	if !reason.Valid() {
		return nil, ErrInvalidReportReason
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	urls := req.EvidenceURLs
	urls = append(urls, evidenceURLs...)

	report := models.SeekerReport{
		ReportID:       uuid.New(),
		UserID:         userID,
		ProductName:    req.ProductName,
		ProductBarcode: req.ProductBarcode,
		ShopName:       req.ShopName,
		Location:       req.Location,
		Reason:         reason,
		Description:    req.Description,
		Status:         models.ReportPendingReview,
		EvidenceURLs:   jsonArray(urls),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create seeker report: %w", err)
	}
	return &report, nil
}

func (s *SeekerReportService) List(f ReportFilters) ([]models.SeekerReport, dto.Pagination, error) {
	query := s.db.Model(&models.SeekerReport{})

	if f.UserID != "" {
		if id, err := uuid.Parse(f.UserID); err == nil {
			query = query.Scopes(scopes.OwnedBy(id))
		}
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Reason != "" {
		query = query.Where("reason = ?", f.Reason)
	}
	if f.Barcode != "" {
		query = query.Where("product_barcode = ?", f.Barcode)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count seeker reports: %w", err)
	}

	var reports []models.SeekerReport
	err := query.Preload("User").
		Scopes(scopes.Newest(), scopes.Paginate(f.Page, f.Limit)).
		Find(&reports).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list seeker reports: %w", err)
	}
	return reports, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *SeekerReportService) Get(id uuid.UUID) (*models.SeekerReport, error) {
	var report models.SeekerReport
	if err := s.db.Preload("User").First(&report, "report_id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &report, nil
}

// Update applies the provided report fields. A changed reason is
// re-validated against the seeker reason set. Non-owners are rejected
// unless they hold the moderator role.
func (s *SeekerReportService) Update(id uuid.UUID, req *dto.UpdateSeekerReportRequest) (*models.SeekerReport, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Reason != nil {
		reason := models.SeekerReportReason(*req.Reason)
		if !reason.Valid() {
			return nil, ErrInvalidReportReason
		}
		updates["reason"] = reason
	}
	if req.ProductName != nil {
		updates["product_name"] = *req.ProductName
	}
	if req.ProductBarcode != nil {
		updates["product_barcode"] = *req.ProductBarcode
	}
	if req.ShopName != nil {
		updates["shop_name"] = *req.ShopName
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	query := s.db.Model(&models.SeekerReport{}).Where("report_id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update seeker report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}
	return s.Get(id)
}

// UpdateStatus moves a report to any status in the seeker set. Transitions
// are deliberately unordered so moderators can reopen resolved reports.
func (s *SeekerReportService) UpdateStatus(id uuid.UUID, req *dto.UpdateReportStatusRequest) (*models.SeekerReport, error) {
	status := models.ReportStatus(req.Status)
	if !models.SeekerReportStatuses[status] {
		return nil, ErrInvalidReportStatus
	}
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if !isModerator(s.db, actorID) {
		return nil, ErrForbidden
	}

	result := s.db.Model(&models.SeekerReport{}).
		Where("report_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update report status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

func (s *SeekerReportService) Delete(id, actorID uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	query := s.db.Where("report_id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Delete(&models.SeekerReport{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete seeker report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}
