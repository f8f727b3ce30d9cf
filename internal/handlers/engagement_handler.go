package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/storage"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

const maxMediaFiles = 10

type EngagementHandler struct {
	engagementService *services.EngagementService
	uploader          *storage.Uploader
	cfg               *config.Config
}

func NewEngagementHandler(engagementService *services.EngagementService, uploader *storage.Uploader, cfg *config.Config) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService, uploader: uploader, cfg: cfg}
}

// Create accepts multipart form data with up to ten media files.
func (h *EngagementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	mediaURLs, err := h.collectMedia(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store uploaded media",
		})
	}

	engagement, err := h.engagementService.Create(&req, mediaURLs)
	if err != nil {
		for _, url := range mediaURLs {
			h.uploader.DeleteByURL(c.Context(), url)
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(engagement)
}

func (h *EngagementHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	engagements, pagination, err := h.engagementService.List(services.EngagementFilters{
		Type:   c.Query("type"),
		Tag:    c.Query("tag"),
		UserID: c.Query("user_id"),
		Search: c.Query("q", c.Query("search")),
		SortBy: c.Query("sort_by"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, engagements, pagination)
}

// Get serves an engagement. When current_user_id is supplied the view is
// counted once for that viewer and the response carries a user_has_liked
// flag.
func (h *EngagementHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if raw := c.Query("current_user_id"); raw != "" {
		viewerID, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "current_user_id must be a UUID")
		}
		engagement, liked, err := h.engagementService.GetForViewer(id, viewerID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": engagement, "user_has_liked": liked})
	}

	engagement, err := h.engagementService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(engagement)
}

func (h *EngagementHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateEngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	mediaURLs, err := h.collectMedia(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store uploaded media",
		})
	}

	engagement, err := h.engagementService.Update(id, &req, mediaURLs)
	if err != nil {
		for _, url := range mediaURLs {
			h.uploader.DeleteByURL(c.Context(), url)
		}
		return serviceError(c, err)
	}
	return c.JSON(engagement)
}

func (h *EngagementHandler) Delete(c *fiber.Ctx) error {
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

	urls, err := h.engagementService.Delete(id, actorID)
	if err != nil {
		return serviceError(c, err)
	}
	for _, url := range urls {
		h.uploader.DeleteByURL(c.Context(), url)
	}
	return c.JSON(dto.MessageResponse{Message: "Engagement deleted"})
}

func (h *EngagementHandler) Like(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	engagement, err := h.engagementService.Like(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(engagement)
}

func (h *EngagementHandler) Unlike(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	engagement, err := h.engagementService.Unlike(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(engagement)
}

func (h *EngagementHandler) Comment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	comment, err := h.engagementService.Comment(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *EngagementHandler) ListComments(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, limit := paging(c)
	comments, pagination, err := h.engagementService.ListComments(id, page, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, comments, pagination)
}

func (h *EngagementHandler) View(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.ViewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	engagement, err := h.engagementService.View(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(engagement)
}

func (h *EngagementHandler) collectMedia(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	return h.uploader.UploadAll(c.Context(),
		h.cfg.EngagementBucket, "engagements/media", form.File["media"], maxMediaFiles)
}
