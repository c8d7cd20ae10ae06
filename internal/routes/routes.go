package routes

import (
	"time"

	"github.com/binodsarki28/journal-backend/internal/config"
	"github.com/binodsarki28/journal-backend/internal/handlers"
	"github.com/binodsarki28/journal-backend/internal/journal"
	"github.com/binodsarki28/journal-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	journalHandler *journal.Handler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Journal routes (JWT required)
	j := api.Group("/journal", middleware.JWTProtected(cfg))
	j.Post("/", journalHandler.Upsert)
	j.Get("/", journalHandler.List)
	j.Get("/search", journalHandler.Search)
	j.Get("/analytics", journalHandler.Analytics)
	j.Get("/today", journalHandler.Today)
	j.Get("/report", journalHandler.Report)
	j.Get("/bydate/:date", journalHandler.GetByDate)
	j.Delete("/:id", journalHandler.Delete)
}
