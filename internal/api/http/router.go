package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/api/http/handlers"
	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Concerns       *handlers.ConcernsHandler
	Schedules      *handlers.SchedulesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
	UploadDir      string
}

// RegisterRoutes wires HTTP routes. Role requirements are declared here, once
// per route, rather than re-checked inside handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/login", cfg.Auth.Login)

	if cfg.UploadDir != "" {
		app.Static("/"+cfg.UploadDir, cfg.UploadDir)
	}

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/raise-concern", auth.RequireRole(domain.RolePublic), cfg.Concerns.Raise)
	protected.Get("/view-concerns", auth.RequireRole(domain.RoleMunicipal), cfg.Concerns.List)
	protected.Patch("/mark-solved/:id", auth.RequireRole(domain.RoleMunicipal), cfg.Concerns.MarkSolved)
	protected.Delete("/delete-concern/:id", auth.RequireRole(domain.RoleMunicipal), cfg.Concerns.Delete)

	protected.Post("/update-schedule", auth.RequireRole(domain.RoleMunicipal), cfg.Schedules.Update)
	protected.Get("/view-schedule", auth.RequireAuthenticated(), cfg.Schedules.View)

	protected.Post("/report-public-garbage", auth.RequireAuthenticated(), cfg.Reports.Report)
	protected.Get("/my-reports", auth.RequireAuthenticated(), cfg.Reports.List)
}
