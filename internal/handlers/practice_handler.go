package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

// HeaderCulturalGroup lets a caller declare their community when reading
// restricted practices.
const HeaderCulturalGroup = "X-Cultural-Group"

type PracticeHandler struct {
	practiceService *services.PracticeService
}

func NewPracticeHandler(practiceService *services.PracticeService) *PracticeHandler {
	return &PracticeHandler{practiceService: practiceService}
}

func (h *PracticeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePracticeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	practice, err := h.practiceService.Create(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(practice)
}

func (h *PracticeHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	practices, pagination, err := h.practiceService.List(services.PracticeFilters{
		CulturalGroup: c.Query("cultural_group"),
		Type:          c.Query("type"),
		Search:        c.Query("search", c.Query("q")),
		ViewerGroup:   c.Get(HeaderCulturalGroup),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, practices, pagination)
}

func (h *PracticeHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	practice, err := h.practiceService.Get(id, c.Get(HeaderCulturalGroup))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(practice)
}

func (h *PracticeHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdatePracticeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	practice, err := h.practiceService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(practice)
}

func (h *PracticeHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, limit := paging(c)
	practices, pagination, err := h.practiceService.List(services.PracticeFilters{
		UserID:      userID.String(),
		ViewerGroup: c.Get(HeaderCulturalGroup),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, practices, pagination)
}

// ListByGroupAndType serves practices for one community and practice
// type, still honoring the sensitivity gate.
func (h *PracticeHandler) ListByGroupAndType(c *fiber.Ctx) error {
	page, limit := paging(c)
	practices, pagination, err := h.practiceService.List(services.PracticeFilters{
		CulturalGroup: c.Params("culturalGroup"),
		Type:          c.Params("type"),
		ViewerGroup:   c.Get(HeaderCulturalGroup),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, practices, pagination)
}

func (h *PracticeHandler) Verify(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	practice, err := h.practiceService.Verify(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(practice)
}

func (h *PracticeHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.practiceService.Delete(id, actorID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Practice deleted"})
}
