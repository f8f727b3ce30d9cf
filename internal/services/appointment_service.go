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

var (
	ErrInvalidTimeRange = errors.New("start_time must be before end_time")
	ErrInvalidStatus    = errors.New("invalid appointment status")
)

type AppointmentFilters struct {
	UserID   string
	Status   string
	Type     string
	From     time.Time
	To       time.Time
	Upcoming bool
	Page     int
	Limit    int
}

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) Create(req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	// Overlapping bookings are allowed; the availability check is
	// advisory and never blocks a write.
	appt := models.Appointment{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		AppointmentType: req.AppointmentType,
		Location:        req.Location,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          models.AppointmentScheduled,
		Notes:           req.Notes,
	}
	if err := s.db.Create(&appt).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appt, nil
}

func (s *AppointmentService) List(f AppointmentFilters) ([]models.Appointment, dto.Pagination, error) {
	query := s.db.Model(&models.Appointment{})

	if f.UserID != "" {
		if id, err := uuid.Parse(f.UserID); err == nil {
			query = query.Scopes(scopes.OwnedBy(id))
		}
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("appointment_type = ?", f.Type)
	}
	if !f.From.IsZero() {
		query = query.Where("start_time >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("start_time <= ?", f.To)
	}
	if f.Upcoming {
		query = query.Where("start_time >= ?", time.Now()).
			Where("status <> ?", models.AppointmentCancelled)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to count appointments: %w", err)
	}

	// Upcoming listings read soonest-first, history reads newest-first.
	order := "start_time DESC"
	if f.Upcoming {
		order = "start_time ASC"
	}

	var appts []models.Appointment
	err := query.Order(order).
		Scopes(scopes.Paginate(f.Page, f.Limit)).
		Find(&appts).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (s *AppointmentService) Get(id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.First(&appt, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &appt, nil
}

// Update validates whichever time bounds the caller sends against each
// other or against the stored row, then applies the change conditionally
// on ownership.
func (s *AppointmentService) Update(id uuid.UUID, req *dto.UpdateAppointmentRequest) (*models.Appointment, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validateTimeChange(existing, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AppointmentType != nil {
		updates["appointment_type"] = *req.AppointmentType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return existing, nil
	}

	query := s.db.Model(&models.Appointment{}).Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}
	return s.Get(id)
}

// UpdateStatus changes only the status, conditionally on ownership.
func (s *AppointmentService) UpdateStatus(id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*models.Appointment, error) {
	actorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	status := models.AppointmentStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Appointment{}).Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrForbidden
	}
	return s.Get(id)
}

func (s *AppointmentService) Delete(id, actorID uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	query := s.db.Where("id = ?", id)
	if !isModerator(s.db, actorID) {
		query = query.Where("user_id = ?", actorID)
	}
	result := query.Delete(&models.Appointment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}

// CheckAvailability reports whether [start, end] is free for the user,
// along with the appointments standing in the way. Boundaries are
// inclusive: an appointment ending exactly at start still counts as a
// conflict. Only scheduled and confirmed appointments occupy the
// calendar; the check is advisory and never blocks a booking.
func (s *AppointmentService) CheckAvailability(userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*dto.AvailabilityResponse, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	conflicts, err := s.findConflicts(userID, start, end, excludeID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityResponse{
		Available:               len(conflicts) == 0,
		ConflictingAppointments: conflicts,
	}, nil
}

func (s *AppointmentService) findConflicts(userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]models.Appointment, error) {
	query := s.db.
		Where("user_id = ?", userID).
		Where("status IN ?", []models.AppointmentStatus{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Where("start_time <= ? AND end_time >= ?", end, start)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	conflicts := []models.Appointment{}
	if err := query.Order("start_time ASC").Find(&conflicts).Error; err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	return conflicts, nil
}

// validateTimeChange covers partial updates: both bounds, only a new
// start, or only a new end, each checked against what will be stored.
func validateTimeChange(existing *models.Appointment, start, end *time.Time) error {
	switch {
	case start != nil && end != nil:
		if !start.Before(*end) {
			return ErrInvalidTimeRange
		}
	case start != nil:
		if !start.Before(existing.EndTime) {
			return ErrInvalidTimeRange
		}
	case end != nil:
		if !existing.StartTime.Before(*end) {
			return ErrInvalidTimeRange
		}
	}
	return nil
}
