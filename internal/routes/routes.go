package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/handlers"
	"github.com/heritageroots/heritage-backend/internal/middleware"
)

type Handlers struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	User              *handlers.UserHandler
	Plant             *handlers.PlantHandler
	Practice          *handlers.PracticeHandler
	Engagement        *handlers.EngagementHandler
	Appointment       *handlers.AppointmentHandler
	SeekerReport      *handlers.SeekerReportHandler
	ContributorReport *handlers.ContributorReportHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimiter, h.Auth.Signup)
	api.Post("/login", authLimiter, h.Auth.Login)
	api.Post("/signup-cultural", authLimiter, h.Auth.CulturalSignup)
	api.Get("/auth/google", h.Auth.GoogleLogin)
	api.Get("/auth/google/callback", h.Auth.GoogleCallback)

	api.Post("/logout", middleware.JWTProtected(cfg), h.Auth.Logout)
	api.Get("/auth/status", middleware.JWTProtected(cfg), h.Auth.Status)
	api.Post("/apply-contributor", middleware.JWTProtected(cfg), h.Auth.ApplyContributor)

	// Plants
	plants := api.Group("/plants")
	plants.Post("/", h.Plant.Create)
	plants.Get("/", h.Plant.List)
	plants.Get("/:id", h.Plant.Get)
	plants.Put("/:id", h.Plant.Update)
	plants.Delete("/:id", h.Plant.Delete)
	plants.Patch("/:id/verification", h.Plant.Verify)

	// Cultural practices
	practices := api.Group("/cultural-practices")
	practices.Post("/", h.Practice.Create)
	practices.Get("/", h.Practice.List)
	practices.Get("/group/:culturalGroup/type/:type", h.Practice.ListByGroupAndType)
	practices.Get("/:id", h.Practice.Get)
	practices.Put("/:id", h.Practice.Update)
	practices.Delete("/:id", h.Practice.Delete)
	practices.Patch("/:id/verification", h.Practice.Verify)

	// Community engagements
	engagements := api.Group("/engagements")
	engagements.Post("/", h.Engagement.Create)
	engagements.Get("/", h.Engagement.List)
	engagements.Get("/:id", h.Engagement.Get)
	engagements.Put("/:id", h.Engagement.Update)
	engagements.Delete("/:id", h.Engagement.Delete)
	engagements.Post("/:id/like", h.Engagement.Like)
	engagements.Delete("/:id/like", h.Engagement.Unlike)
	engagements.Post("/:id/comments", h.Engagement.Comment)
	engagements.Get("/:id/comments", h.Engagement.ListComments)
	engagements.Post("/:id/view", h.Engagement.View)

	// Appointments
	appointments := api.Group("/appointments")
	appointments.Get("/availability", h.Appointment.CheckAvailability)
	appointments.Post("/", h.Appointment.Create)
	appointments.Get("/", h.Appointment.List)
	appointments.Get("/:id", h.Appointment.Get)
	appointments.Put("/:id", h.Appointment.Update)
	appointments.Patch("/:id/status", h.Appointment.UpdateStatus)
	appointments.Delete("/:id", h.Appointment.Delete)

	api.Get("/availability", h.Appointment.CheckAvailability)

	// Users
	users := api.Group("/users")
	users.Get("/", h.User.List)
	users.Get("/email/:email", h.User.GetByEmail)
	users.Get("/role/:role", h.User.ListByRole)
	users.Get("/cultural/:affiliation", h.User.ListByCulturalAffiliation)
	users.Get("/:userId/plants", h.Plant.ListByUser)
	users.Get("/:userId/cultural-practices", h.Practice.ListByUser)
	users.Get("/:userId/appointments", h.Appointment.ListForUser)
	users.Get("/:userId/appointments/upcoming", h.Appointment.ListUpcomingForUser)
	users.Get("/:userId/seeker-reports", h.SeekerReport.ListForUser)
	users.Get("/:userId/contributor-reports", h.ContributorReport.ListForUser)
	users.Get("/:id", h.User.Get)
	users.Patch("/:id", h.User.Update)
	users.Patch("/:id/verification", h.User.SetVerification)
	users.Delete("/:id", h.User.Delete)

	api.Get("/users-stats", h.User.Stats)

	// Text search
	search := api.Group("/search")
	search.Get("/plants", h.Plant.List)
	search.Get("/cultural-practices", h.Practice.List)
	search.Get("/engagements", h.Engagement.List)

	// Seeker food-safety reports
	seekerReports := api.Group("/seeker-reports")
	seekerReports.Post("/", h.SeekerReport.Create)
	seekerReports.Get("/", h.SeekerReport.List)
	seekerReports.Get("/barcode/:barcode", h.SeekerReport.ListByBarcode)
	seekerReports.Get("/:id", h.SeekerReport.Get)
	seekerReports.Put("/:id", h.SeekerReport.Update)
	seekerReports.Patch("/:id/status", h.SeekerReport.UpdateStatus)
	seekerReports.Delete("/:id", h.SeekerReport.Delete)

	// Contributor supply-chain reports
	contributorReports := api.Group("/contributor-reports")
	contributorReports.Post("/", h.ContributorReport.Create)
	contributorReports.Get("/", h.ContributorReport.List)
	contributorReports.Get("/batch/:batchNumber", h.ContributorReport.ListByBatch)
	contributorReports.Get("/distributor/:distributorName", h.ContributorReport.ListByDistributor)
	contributorReports.Get("/:id", h.ContributorReport.Get)
	contributorReports.Put("/:id", h.ContributorReport.Update)
	contributorReports.Patch("/:id/status", h.ContributorReport.UpdateStatus)
	contributorReports.Delete("/:id", h.ContributorReport.Delete)

	api.Get("/business/:businessId/contributor-reports", h.ContributorReport.ListForBusiness)
}
