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

const maxEvidenceFiles = 10

type SeekerReportHandler struct {
	reportService *services.SeekerReportService
	uploader      *storage.Uploader
	cfg           *config.Config
}

func NewSeekerReportHandler(reportService *services.SeekerReportService, uploader *storage.Uploader, cfg *config.Config) *SeekerReportHandler {
	return &SeekerReportHandler{reportService: reportService, uploader: uploader, cfg: cfg}
}

func (h *SeekerReportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSeekerReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	evidenceURLs, err := h.collectEvidence(c, "seeker-reports/evidence")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store evidence files",
		})
	}

	report, err := h.reportService.Create(&req, evidenceURLs)
	if err != nil {
		for _, url := range evidenceURLs {
			h.uploader.DeleteByURL(c.Context(), url)
		}
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *SeekerReportHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ReportFilters{
		UserID:  c.Query("user_id"),
		Status:  c.Query("status"),
		Reason:  c.Query("reason"),
		Barcode: c.Query("product_barcode"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

// ListByBarcode surfaces every report filed against one product barcode.
func (h *SeekerReportHandler) ListByBarcode(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ReportFilters{
		Barcode: c.Params("barcode"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

func (h *SeekerReportHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	report, err := h.reportService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(report)
}

func (h *SeekerReportHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ReportFilters{
		UserID: userID.String(),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

func (h *SeekerReportHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateSeekerReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	report, err := h.reportService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(report)
}

func (h *SeekerReportHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	report, err := h.reportService.UpdateStatus(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(report)
}

func (h *SeekerReportHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.reportService.Delete(id, actorID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Report deleted"})
}

func (h *SeekerReportHandler) collectEvidence(c *fiber.Ctx, prefix string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	return h.uploader.UploadAll(c.Context(),
		h.cfg.EngagementBucket, prefix, form.File["evidence"], maxEvidenceFiles)
}
