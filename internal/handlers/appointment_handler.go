package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	appt, err := h.appointmentService.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	f := services.AppointmentFilters{
		UserID: c.Query("user_id"),
		Status: c.Query("status"),
		Type:   c.Query("appointment_type"),
		Page:   page,
		Limit:  limit,
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			f.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			f.To = t
		}
	}

	appts, pagination, err := h.appointmentService.List(f)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, appts, pagination)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	appt, err := h.appointmentService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appt)
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	appt, err := h.appointmentService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appt)
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	appt, err := h.appointmentService.UpdateStatus(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appt)
}

// ListForUser lists a user's appointments; with upcoming=true only
// future, non-cancelled ones are returned.
func (h *AppointmentHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, limit := paging(c)
	f := services.AppointmentFilters{
		UserID:   userID.String(),
		Status:   c.Query("status"),
		Upcoming: c.QueryBool("upcoming"),
		Page:     page,
		Limit:    limit,
	}
	appts, pagination, err := h.appointmentService.List(f)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, appts, pagination)
}

func (h *AppointmentHandler) ListUpcomingForUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, limit := paging(c)
	appts, pagination, err := h.appointmentService.List(services.AppointmentFilters{
		UserID:   userID.String(),
		Upcoming: true,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, appts, pagination)
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.DeleteOwnedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}
	actorID, _ := uuid.Parse(req.UserID)

	if err := h.appointmentService.Delete(id, actorID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Appointment deleted"})
}

// CheckAvailability answers whether a slot is free for a user. Both
// boundaries count as busy time, and an existing appointment can be
// excluded when rescheduling.
func (h *AppointmentHandler) CheckAvailability(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return badRequest(c, "user_id query parameter is required")
	}
	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		return badRequest(c, "start_time must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		return badRequest(c, "end_time must be RFC3339")
	}

	excludeID := uuid.Nil
	if raw := c.Query("exclude_appointment_id"); raw != "" {
		excludeID, err = uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "exclude_appointment_id must be a UUID")
		}
	}

	resp, err := h.appointmentService.CheckAvailability(userID, start, end, excludeID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}
