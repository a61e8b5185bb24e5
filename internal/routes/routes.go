package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/medconnect/telemed-backend/internal/handlers"
	"github.com/medconnect/telemed-backend/internal/metrics"
	"github.com/medconnect/telemed-backend/internal/middleware"
	"github.com/medconnect/telemed-backend/internal/services"
	"github.com/prometheus/client_golang/prometheus"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	doctorHandler *handlers.DoctorHandler,
	appointmentHandler *handlers.AppointmentHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	gatherer prometheus.Gatherer,
) {
	// Prometheus scrape endpoint, outside the /api rate limits.
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(gatherer)))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — session exchange is stricter: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/session", authHandler.ProcessSession)
	auth.Get("/me", middleware.RequireAuth(authService), authHandler.Me)
	auth.Post("/logout", authHandler.Logout)

	// Doctors
	requireAuth := middleware.RequireAuth(authService)
	requireDoctor := middleware.RequireDoctor()
	api.Post("/doctors/profile", requireAuth, doctorHandler.CreateProfile)
	api.Get("/doctors", doctorHandler.ListAvailable)
	api.Get("/doctors/profile", requireAuth, requireDoctor, doctorHandler.GetMyProfile)
	api.Put("/doctors/availability", requireAuth, requireDoctor, doctorHandler.UpdateAvailability)

	// Appointments
	api.Post("/appointments", requireAuth, appointmentHandler.Create)
	api.Get("/appointments", requireAuth, appointmentHandler.List)
	api.Get("/appointments/:id/join", requireAuth, appointmentHandler.Join)
	api.Post("/appointments/:id/start", requireAuth, appointmentHandler.Start)

	// Demo seeding. Deliberately unauthenticated; the operation is
	// idempotent and only provisions fixed demo accounts.
	api.Post("/admin/init-sample-doctors", adminHandler.InitSampleDoctors)
}
