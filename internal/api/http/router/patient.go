package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nephrocare/dialyse_backend/internal/api/http/handler"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	p.Put("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)

	// Dashboard aggregates, admin only via RBAC
	stats := api.Group("/stats", authRequired)
	stats.Get("/patients", requirePerm(authorize.ResourceStats, authorize.ActionRead), ph.Stats)
}
