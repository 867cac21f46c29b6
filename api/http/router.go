package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Withvansh/college-fest-sub003/api/http/handlers"
	"github.com/Withvansh/college-fest-sub003/pkg/auth"
	"github.com/Withvansh/college-fest-sub003/pkg/security/jwt"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, authH *handlers.AuthHandler, health *handlers.HealthHandler, jobsH *handlers.JobsHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", authH.Register)
	a.Post("/login", authH.Login)

	// Поиск открыт всем, публикация только рекрутерам.
	j := v1.Group("/jobs")
	j.Get("/", jobsH.Search)
	j.Get("/facets", jobsH.Facets)
	j.Get("/tags", jobsH.Tags)
	j.Post("/", authMW, jwt.RequireRole(auth.RoleRecruiter, auth.RoleAdmin), jobsH.Create)
	j.Post("/refresh", authMW, jwt.RequireRole(auth.RoleAdmin), jobsH.Refresh)
	j.Get("/:id", jobsH.GetByID)
	j.Delete("/:id", authMW, jwt.RequireRole(auth.RoleRecruiter, auth.RoleAdmin), jobsH.Delete)
}
