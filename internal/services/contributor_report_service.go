package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"github.com/heritageroots/heritage-backend/internal/scopes"
	"gorm.io/gorm"
)

type ContributorReportFilters struct {
	UserID      string
	BusinessID  string
	Status      string
	Reason      string
	Distributor string
	Batch       string
	Page        int
	Limit       int
}

type ContributorReportService struct {
	db *gorm.DB
}

func NewContributorReportService(db *gorm.DB) *ContributorReportService {
	return &ContributorReportService{db: db}
}

func (s *ContributorReportService) Create(req *dto.CreateContributorReportRequest, evidenceURLs []string) (*models.ContributorReport, error) {
	reason := models.ContributorReportReason(req.Reason)
	if !reason.Valid() {
		return nil, ErrInvalidReportReason
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	urls := req.EvidenceURLs
	urls = append(urls, evidenceURLs...)

	report := models.ContributorReport{
		ReportID:        uuid.New(),
		UserID:          userID,
		BusinessID:      req.BusinessID,
		ProductName:     req.ProductName,
		DistributorName: req.DistributorName,
		BatchNumber:     req.BatchNumber,
		Reason:          reason,
		Description:     req.Description,
		Status:          models.ReportPendingReview,
		EvidenceURLs:    jsonArray(urls),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create contributor report: %w", err)
	}
	return &report, nil
}

func (s *ContributorReportService) List(f ContributorReportFilters) ([]models.ContributorReport, dto.Pagination, error) {
	query := s.db.Model(&models.ContributorReport{})

	if f.UserID != "" {
		if id, err := uuid.Parse(f.UserID); err == nil {
			query = query.Scopes(scopes.OwnedBy(id))
		}
	}
	if f.BusinessID != "" {
		query = query.Where("business_id = ?", f.BusinessID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Reason != "" {
		query = query.Where("reason = ?", f.Reason)
	}
	if f.Distributor != "" {
		query = query.Where("distributor_name ILIKE ?", "%"+f.Distributor+"%")
	}
	if f.Batch != "" {
		query = query.Where("batch_number ILIKE ?", "%"+f.Batch+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count contributor reports: %w", err)
	}

	var reports []models.ContributorReport
	err := query.Preload("User").
		Scopes(scopes.Newest(), scopes.Paginate(f.Page, f.Limit)).
		Find(&reports).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list contributor reports: %w", err)
	}
	return reports, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *ContributorReportService) Get(id uuid.UUID) (*models.ContributorReport, error) {
	var report models.ContributorReport
	if err := s.db.Preload("User").First(&report, "report_id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &report, nil
}

// Update applies the provided report fields. A changed reason is
// re-validated against the contributor reason set. Non-owners are
// rejected unless they hold the moderator role.
func (s *ContributorReportService) Update(id uuid.UUID, req *dto.UpdateContributorReportRequest) (*models.ContributorReport, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Reason != nil {
		reason := models.ContributorReportReason(*req.Reason)
		if !reason.Valid() {
			return nil, ErrInvalidReportReason
		}
		updates["reason"] = reason
	}
	if req.BusinessID != nil {
		updates["business_id"] = *req.BusinessID
	}
	if req.DistributorName != nil {
		updates["distributor_name"] = *req.DistributorName
	}
	if req.ProductName != nil {
		updates["product_name"] = *req.ProductName
	}
	if req.BatchNumber != nil {
		updates["batch_number"] = *req.BatchNumber
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

	query := s.db.Model(&models.ContributorReport{}).Where("report_id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update contributor report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}
	return s.Get(id)
}

// UpdateStatus accepts any status in the contributor set, in any order.
func (s *ContributorReportService) UpdateStatus(id uuid.UUID, req *dto.UpdateReportStatusRequest) (*models.ContributorReport, error) {
	status := models.ReportStatus(req.Status)
	if !models.ContributorReportStatuses[status] {
		return nil, ErrInvalidReportStatus
	}
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if !isModerator(s.db, actorID) {
		return nil, ErrForbidden
	}

	result := s.db.Model(&models.ContributorReport{}).
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

func (s *ContributorReportService) Delete(id, actorID uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	query := s.db.Where("report_id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Delete(&models.ContributorReport{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contributor report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}
