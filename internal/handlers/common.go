package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func validationFailed(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": "Validation failed",
		"fields":  fields,
	})
}

// serviceError maps the shared sentinel errors onto HTTP statuses; anything
// unrecognized is a sanitized 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Record not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, services.ErrInvalidTimeRange),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidReportReason),
		errors.Is(err, services.ErrInvalidReportStatus),
		errors.Is(err, services.ErrInvalidVerification),
		errors.Is(err, services.ErrAlreadyLiked):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrRestrictedPractice):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
	}
}

func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid id in path")
	}
	return id, nil
}

func paging(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func listResponse(c *fiber.Ctx, data interface{}, p dto.Pagination) error {
	return c.JSON(fiber.Map{"data": data, "pagination": p})
}
