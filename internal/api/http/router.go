package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/locker-service/internal/api/http/handlers"
	"github.com/spec-kit/locker-service/internal/auth"
	"github.com/spec-kit/locker-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Lockers        *handlers.LockersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/authenticate", cfg.Auth.Authenticate)
	app.Post("/users/register", cfg.Auth.Register)

	adminOnly := auth.RequireRole(domain.RoleAdmin)

	lockers := app.Group("/lockers", cfg.AuthMiddleware.Handle)
	lockers.Get("/available", cfg.Lockers.ListAvailable)
	lockers.Get("/booked", cfg.Lockers.ListBooked)
	lockers.Patch("/book", cfg.Lockers.Book)
	lockers.Patch("/cancel", cfg.Lockers.Cancel)
	lockers.Get("/", adminOnly, cfg.Lockers.List)
	lockers.Post("/", adminOnly, cfg.Lockers.Create)
	lockers.Get("/:id", cfg.Lockers.Get)
	lockers.Put("/:id", adminOnly, cfg.Lockers.Update)
	lockers.Delete("/:id", adminOnly, cfg.Lockers.Delete)
}
