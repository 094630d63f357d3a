package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coursekit/assess-api/internal/config"
	"github.com/coursekit/assess-api/internal/handler"
	"github.com/coursekit/assess-api/internal/middleware"
	"github.com/coursekit/assess-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssessmentHandler *handler.AssessmentHandler
	ResponseHandler   *handler.ResponseHandler
	ProgressHandler   *handler.ProgressHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	assessments := api.Group("/assessments", jwtMiddleware)

	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.Register(assessments, middleware.RequireRole("admin"))
	}

	if deps.ResponseHandler != nil {
		deps.ResponseHandler.Register(assessments.Group("/responses"))
	}

	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(assessments.Group("/progress"))
	}
}
