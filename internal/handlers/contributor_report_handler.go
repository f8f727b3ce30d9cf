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

type ContributorReportHandler struct {
	reportService *services.ContributorReportService
	uploader      *storage.Uploader
	cfg           *config.Config
}

func NewContributorReportHandler(reportService *services.ContributorReportService, uploader *storage.Uploader, cfg *config.Config) *ContributorReportHandler {
	return &ContributorReportHandler{reportService: reportService, uploader: uploader, cfg: cfg}
}

func (h *ContributorReportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContributorReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	evidenceURLs, err := h.collectEvidence(c)
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

func (h *ContributorReportHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ContributorReportFilters{
		UserID:      c.Query("user_id"),
		BusinessID:  c.Query("business_id"),
		Status:      c.Query("status"),
		Reason:      c.Query("reason"),
		Distributor: c.Query("distributor_name"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

// ListForBusiness returns reports filed under a specific business id.
func (h *ContributorReportHandler) ListForBusiness(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ContributorReportFilters{
		BusinessID: c.Params("businessId"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

// ListByBatch traces every report naming one batch number.
func (h *ContributorReportHandler) ListByBatch(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ContributorReportFilters{
		Batch: c.Params("batchNumber"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

func (h *ContributorReportHandler) ListByDistributor(c *fiber.Ctx) error {
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ContributorReportFilters{
		Distributor: c.Params("distributorName"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, reports, pagination)
}

func (h *ContributorReportHandler) Get(c *fiber.Ctx) error {
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

func (h *ContributorReportHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, limit := paging(c)
	reports, pagination, err := h.reportService.List(services.ContributorReportFilters{
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

func (h *ContributorReportHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateContributorReportRequest
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

func (h *ContributorReportHandler) UpdateStatus(c *fiber.Ctx) error {
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

func (h *ContributorReportHandler) Delete(c *fiber.Ctx) error {
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

func (h *ContributorReportHandler) collectEvidence(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	return h.uploader.UploadAll(c.Context(),
		h.cfg.EngagementBucket, "contributor-reports/evidence", form.File["evidence"], maxEvidenceFiles)
}
