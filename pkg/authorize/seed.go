package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Route-level gating only: fine-grained per-patient decisions are made by
// the access resolver inside the services.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Admin: god mode inside the center
		{RoleCenterAdmin, DomainCenter, WildcardResource, WildcardAction, EffectAllow},

		// Staff: patient roster and record endpoints; delete stays admin-only
		{RoleCenterStaff, DomainCenter, ResourcePatient, ActionList, EffectAllow},
		{RoleCenterStaff, DomainCenter, ResourcePatient, ActionRead, EffectAllow},
		{RoleCenterStaff, DomainCenter, ResourcePatient, ActionCreate, EffectAllow},
		{RoleCenterStaff, DomainCenter, ResourcePatient, ActionUpdate, EffectAllow},

		// Staff: own session management
		{RoleCenterStaff, DomainCenter, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleCenterStaff, DomainCenter, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignUserRole maps a users.role value to its Casbin role and adds the
// grouping policy. Call this when creating an account.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID string, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainCenter)
	return err
}

// RemoveUserRole drops a grouping policy, e.g. when deleting an account.
func RemoveUserRole(ctx context.Context, auth IAuthorization, userID string, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainCenter)
	return err
}
