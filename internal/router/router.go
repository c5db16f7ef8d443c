package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arkan-dev/eduverse-api/internal/config"
	"github.com/arkan-dev/eduverse-api/internal/handler"
	"github.com/arkan-dev/eduverse-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	CourseHandler    *handler.CourseHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ActivityHandler  *handler.ActivityHandler
	LibraryHandler   *handler.LibraryHandler
	ChatHandler      *handler.ChatHandler
	SessionResolver  fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Session scoping, or a no-op if none was provided
	resolver := deps.SessionResolver
	if resolver == nil {
		resolver = func(c *fiber.Ctx) error { return c.Next() }
	}
	api.Use(resolver)

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api)
	}
	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api)
	}
	if deps.AnalyticsHandler != nil {
		deps.AnalyticsHandler.Register(api)
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api)
	}
	if deps.LibraryHandler != nil {
		deps.LibraryHandler.Register(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.Register(api)
	}
}
