package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nephrocare/dialyse_backend/internal/api/http/handler"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	admin := api.Group("/admin", authRequired)

	users := admin.Group("/users", requirePerm(authorize.ResourceUser, authorize.ActionManage))
	users.Get("/", h.List)
	users.Post("/", h.Create)

	u := users.Group("/:id")
	u.Get("/", h.Get)
	u.Put("/password", h.ResetPassword)
	u.Delete("/", h.Delete)

	// Permission profiles and per-patient grants
	u.Get("/permissions", requirePerm(authorize.ResourcePermissionProfile, authorize.ActionRead), h.GetPermissions)
	u.Put("/permissions", requirePerm(authorize.ResourcePermissionProfile, authorize.ActionUpdate), h.SetPermissions)

	u.Get("/grants", requirePerm(authorize.ResourcePatientAccess, authorize.ActionRead), h.ListGrants)
	u.Post("/grants", requirePerm(authorize.ResourcePatientAccess, authorize.ActionGrant), h.GrantAccess)
	u.Delete("/grants/:patient_id", requirePerm(authorize.ResourcePatientAccess, authorize.ActionRevoke), h.RevokeAccess)
}
