package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Users  *handlers.UsersHandler
	Auth   *handlers.AuthHandler
	Gate   *auth.Gate

	// ProtectRegistration also gates POST /users behind a bearer token.
	// Deployment policy; login and health are always open.
	ProtectRegistration bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth", cfg.Auth.Login)

	if cfg.ProtectRegistration {
		app.Post("/users", cfg.Gate.Handle, cfg.Users.Create)
	} else {
		app.Post("/users", cfg.Users.Create)
	}

	app.Get("/users", cfg.Gate.Handle, cfg.Users.List)
	app.Get("/users/:id", cfg.Gate.Handle, cfg.Users.GetByID)
}
