package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/api/http/handlers"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Jobs           *handlers.JobsHandler
	Candidates     *handlers.CandidatesHandler
	Leaves         *handlers.LeavesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/ops/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	adminOnly := auth.RequireDesignation(domain.DesignationAdmin)
	managesTeam := auth.RequireDesignation(domain.DesignationAdmin, domain.DesignationManager, domain.DesignationMentor)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Post("", adminOnly, cfg.Users.Create)
	users.Get("", adminOnly, cfg.Users.List)
	users.Patch("/:id/reporter", adminOnly, cfg.Users.UpdateReporter)
	users.Post("/:id/deactivate", adminOnly, cfg.Users.Deactivate)

	clients := app.Group("/clients", cfg.AuthMiddleware.Handle)
	clients.Post("", adminOnly, cfg.Jobs.CreateClient)
	clients.Get("", auth.RequireAuthenticated(), cfg.Jobs.ListClients)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	jobs.Post("", managesTeam, cfg.Jobs.Create)
	jobs.Get("", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Patch("/:id/status", managesTeam, cfg.Jobs.UpdateStatus)
	jobs.Put("/:id/assignment", managesTeam, cfg.Jobs.Assign)

	candidates := app.Group("/candidates", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	candidates.Post("", cfg.Candidates.Create)
	candidates.Get("", cfg.Candidates.List)
	candidates.Get("/stage-options", cfg.Candidates.StageOptions)
	candidates.Get("/:id", cfg.Candidates.Get)
	candidates.Patch("/:id/status", cfg.Candidates.UpdateStatus)

	leaves := app.Group("/leaves", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	leaves.Post("", cfg.Leaves.Create)
	leaves.Get("", cfg.Leaves.List)
	leaves.Post("/:id/decision", managesTeam, cfg.Leaves.Decide)

	reports := app.Group("/reports", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	reports.Get("/dashboard", cfg.Reports.Dashboard)
}
