package dto

import (
	"time"

	"github.com/heritageroots/heritage-backend/internal/models"
)

type CreateAppointmentRequest struct {
	UserID          string    `json:"user_id" validate:"required,uuid"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	AppointmentType string    `json:"appointment_type"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	UserID          string     `json:"user_id" validate:"required,uuid"`
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	AppointmentType *string    `json:"appointment_type"`
	Location        *string    `json:"location"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled confirmed cancelled completed"`
	Notes           *string    `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=scheduled confirmed cancelled completed"`
}

type AvailabilityResponse struct {
	Available               bool                 `json:"available"`
	ConflictingAppointments []models.Appointment `json:"conflicting_appointments"`
}
