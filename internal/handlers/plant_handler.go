package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/storage"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

const maxAdditionalImages = 10

type PlantHandler struct {
	plantService *services.PlantService
	uploader     *storage.Uploader
	cfg          *config.Config
}

func NewPlantHandler(plantService *services.PlantService, uploader *storage.Uploader, cfg *config.Config) *PlantHandler {
	return &PlantHandler{plantService: plantService, uploader: uploader, cfg: cfg}
}

// Create accepts multipart form data with an optional main_image file and
// up to ten additional_images.
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	photoURL, additionalURLs, err := h.collectUploads(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store uploaded images",
		})
	}

	plant, err := h.plantService.Create(&req, photoURL, additionalURLs)
	if err != nil {
		h.cleanup(c, photoURL, additionalURLs)
		return badRequest(c, err.Error())
	}

	slog.Info("plant created", "plant_id", plant.ID, "user_id", plant.UserID)
	return c.Status(fiber.StatusCreated).JSON(plant)
}

func (h *PlantHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	plants, pagination, err := h.plantService.List(services.PlantFilters{
		CulturalGroup:      c.Query("cultural_group"),
		Region:             c.Query("region"),
		VerificationStatus: c.Query("verification_status"),
		Search:             c.Query("search", c.Query("q")),
		Page:               page,
		Limit:              limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, plants, pagination)
}

func (h *PlantHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	plant, err := h.plantService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plant)
}

func (h *PlantHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	photoURL, additionalURLs, err := h.collectUploads(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store uploaded images",
		})
	}

	plant, removed, err := h.plantService.Update(id, &req, photoURL, additionalURLs)
	if err != nil {
		h.cleanup(c, photoURL, additionalURLs)
		return serviceError(c, err)
	}
	for _, url := range removed {
		h.uploader.DeleteByURL(c.Context(), url)
	}
	return c.JSON(plant)
}

// ListByUser returns one contributor's plant entries.
func (h *PlantHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, limit := paging(c)
	plants, pagination, err := h.plantService.ListByUser(userID, page, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, plants, pagination)
}

// Delete removes the plant and, best effort, its stored images.
func (h *PlantHandler) Delete(c *fiber.Ctx) error {
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

	urls, err := h.plantService.Delete(id, actorID)
	if err != nil {
		return serviceError(c, err)
	}
	for _, url := range urls {
		h.uploader.DeleteByURL(c.Context(), url)
	}
	return c.JSON(dto.MessageResponse{Message: "Plant deleted"})
}

func (h *PlantHandler) Verify(c *fiber.Ctx) error {
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

	plant, err := h.plantService.Verify(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plant)
}

func (h *PlantHandler) collectUploads(c *fiber.Ctx) (string, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain JSON body, nothing to upload.
		return "", nil, nil
	}

	var photoURL string
	if files := form.File["main_image"]; len(files) > 0 {
		photoURL, err = h.uploader.Upload(c.Context(), h.cfg.PlantImagesBucket, "plants/main", files[0])
		if err != nil {
			return "", nil, err
		}
	}

	additionalURLs, err := h.uploader.UploadAll(c.Context(),
		h.cfg.PlantImagesBucket, "plants/additional", form.File["additional_images"], maxAdditionalImages)
	if err != nil {
		h.cleanup(c, photoURL, additionalURLs)
		return "", nil, err
	}
	return photoURL, additionalURLs, nil
}

func (h *PlantHandler) cleanup(c *fiber.Ctx, photoURL string, urls []string) {
	if photoURL != "" {
		h.uploader.DeleteByURL(c.Context(), photoURL)
	}
	for _, url := range urls {
		h.uploader.DeleteByURL(c.Context(), url)
	}
}
