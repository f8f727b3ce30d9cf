package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/middleware"
	"github.com/heritageroots/heritage-backend/internal/services"
	"github.com/heritageroots/heritage-backend/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidRole) || errors.Is(err, services.ErrTermsNotAgreed) {
			return badRequest(c, err.Error())
		}
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing bearer token",
		})
	}
	if err := h.authService.Logout(raw); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) Status(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(dto.StatusResponse{Authenticated: false})
	}
	resp, err := h.authService.Status(userID, bearerToken(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

// GoogleLogin redirects to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	return c.Redirect(h.authService.GoogleAuthURL(c.Query("state")), fiber.StatusTemporaryRedirect)
}

// GoogleCallback finishes the OAuth flow. New users get a pending token
// and must complete the cultural-profile step.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return badRequest(c, "Missing authorization code")
	}

	resp, pending, err := h.authService.GoogleCallback(code)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Google sign-in failed",
		})
	}
	if pending != "" {
		return c.JSON(fiber.Map{
			"pending_token": pending,
			"next":          "/signup-cultural",
		})
	}
	return c.JSON(resp)
}

func (h *AuthHandler) CulturalSignup(c *fiber.Ctx) error {
	var req dto.CulturalSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	resp, err := h.authService.CompleteCulturalSignup(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidRole) || errors.Is(err, services.ErrTermsNotAgreed) {
			return badRequest(c, err.Error())
		}
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) ApplyContributor(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.ContributorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validation.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	app, err := h.authService.SubmitContributorApplication(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	return strings.TrimPrefix(auth, "Bearer ")
}
