package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/complaint-service/internal/api/http/handlers"
	"github.com/campus-kit/complaint-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Complaints     *handlers.ComplaintsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Accounts.Register)
	authGroup.Post("/login", cfg.Accounts.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Accounts.Logout)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Get("/", cfg.Complaints.ListComplaints)
	complaints.Post("/", auth.RequireStudent(), cfg.Complaints.CreateComplaint)
	complaints.Get("/:id", cfg.Complaints.GetComplaint)
	complaints.Put("/:id/status", auth.RequireAdmin(), cfg.Complaints.UpdateStatus)

	app.Get("/dashboard", cfg.AuthMiddleware.Handle, cfg.Dashboard.Summary)
}
