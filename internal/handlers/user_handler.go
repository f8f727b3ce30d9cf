package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := paging(c)
	f := services.UserFilters{
		Role:          c.Query("role"),
		CulturalGroup: c.Query("cultural_affiliation"),
		Search:        c.Query("search"),
		Page:          page,
		Limit:         limit,
	}
	if raw := c.Query("is_verified"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.IsVerified = &v
		}
	}
	users, pagination, err := h.userService.List(f)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, users, pagination)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.userService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return badRequest(c, "email path parameter is required")
	}
	user, err := h.userService.GetByEmail(email)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) ListByRole(c *fiber.Ctx) error {
	page, limit := paging(c)
	users, pagination, err := h.userService.List(services.UserFilters{
		Role:  c.Params("role"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, users, pagination)
}

func (h *UserHandler) ListByCulturalAffiliation(c *fiber.Ctx) error {
	page, limit := paging(c)
	users, pagination, err := h.userService.List(services.UserFilters{
		CulturalGroup: c.Params("affiliation"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, users, pagination)
}

func (h *UserHandler) SetVerification(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateUserVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}
	actorID, _ := uuid.Parse(req.UserID)

	user, err := h.userService.SetVerification(id, actorID, *req.IsVerified)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.userService.Stats()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.userService.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted"})
}
