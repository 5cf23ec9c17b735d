package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nephrocare/dialyse_backend/pkg/authorize"
	pasetotoken "github.com/nephrocare/dialyse_backend/pkg/paseto"
)

// RequirePermission gates a route on the Casbin RBAC layer. This is
// coarse route-level control; per-patient decisions happen in the
// services via the access resolver.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainCenter, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
