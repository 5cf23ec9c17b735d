package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nephrocare/dialyse_backend/internal/repo"
	"github.com/nephrocare/dialyse_backend/internal/service/permission"
	"github.com/nephrocare/dialyse_backend/internal/service/user"
	pasetotoken "github.com/nephrocare/dialyse_backend/pkg/paseto"
)

func adminIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

// UserHandler serves the admin console: accounts, permission profiles
// and per-patient access grants.
type UserHandler struct {
	svc     user.Service
	permSvc permission.Service
}

func NewUserHandler(svc user.Service, permSvc permission.Service) *UserHandler {
	return &UserHandler{svc: svc, permSvc: permSvc}
}

func userJSON(u *repo.User) fiber.Map {
	return fiber.Map{
		"id":            u.ID,
		"username":      u.Username,
		"email":         u.Email,
		"role":          u.Role,
		"status":        u.Status,
		"last_login_at": u.LastLoginAt,
		"created_at":    u.CreatedAt,
	}
}

func grantJSON(g *repo.PatientAccessGrant) fiber.Map {
	return fiber.Map{
		"user_id":    g.UserID,
		"patient_id": g.PatientID,
		"granted_by": g.GrantedBy,
		"can_view":   g.CanView,
		"can_edit":   g.CanEdit,
		"created_at": g.CreatedAt,
	}
}

func profileJSON(p *repo.PermissionProfile) fiber.Map {
	return fiber.Map{
		"user_id":                 p.UserID,
		"permission_type":         p.PermissionType,
		"can_view_all_patients":   p.CanViewAllPatients,
		"can_create_new_patients": p.CanCreateNewPatients,
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// GET /admin/users
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}

	items := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		items = append(items, userJSON(u))
	}
	return ok(c, fiber.Map{"users": items, "total": len(items)})
}

// GET /admin/users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, userJSON(u))
}

// POST /admin/users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		Username string  `json:"username"`
		Password string  `json:"password"`
		Email    *string `json:"email"`
		Role     string  `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Role == "" {
		body.Role = "user"
	}

	u, err := h.svc.Create(c.Context(), user.CreateUserRequest{
		Username: body.Username,
		Password: body.Password,
		Email:    body.Email,
		Role:     body.Role,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, userJSON(u))
}

// PUT /admin/users/:id/password
func (h *UserHandler) ResetPassword(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err = h.svc.ChangePassword(c.Context(), id, user.ChangePasswordRequest{
		NewPassword: body.NewPassword,
	}, false)
	if err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// DELETE /admin/users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Permission profiles
// ---------------------------------------------------------------------------

// GET /admin/users/:id/permissions
func (h *UserHandler) GetPermissions(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	p, err := h.permSvc.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, permission.ErrProfileNotFound) {
			// No profile row means the restricted default.
			return ok(c, fiber.Map{
				"user_id":                 id,
				"permission_type":         "viewer",
				"can_view_all_patients":   false,
				"can_create_new_patients": false,
			})
		}
		return internalError(c)
	}
	return ok(c, profileJSON(p))
}

// PUT /admin/users/:id/permissions
func (h *UserHandler) SetPermissions(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		PermissionType       string `json:"permission_type"`
		CanViewAllPatients   bool   `json:"can_view_all_patients"`
		CanCreateNewPatients bool   `json:"can_create_new_patients"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	// The target account must exist.
	if _, err := h.svc.GetByID(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}

	p, err := h.permSvc.UpsertProfile(c.Context(), id, permission.UpsertProfileRequest{
		PermissionType:       body.PermissionType,
		CanViewAllPatients:   body.CanViewAllPatients,
		CanCreateNewPatients: body.CanCreateNewPatients,
	})
	if err != nil {
		return mapPermissionError(c, err)
	}
	return ok(c, profileJSON(p))
}

// ---------------------------------------------------------------------------
// Access grants
// ---------------------------------------------------------------------------

// GET /admin/users/:id/grants
func (h *UserHandler) ListGrants(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	grants, err := h.permSvc.ListGrants(c.Context(), id)
	if err != nil {
		return internalError(c)
	}

	items := make([]fiber.Map, 0, len(grants))
	for _, g := range grants {
		items = append(items, grantJSON(g))
	}
	return ok(c, fiber.Map{"grants": items, "total": len(items)})
}

// POST /admin/users/:id/grants
func (h *UserHandler) GrantAccess(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		PatientID string `json:"patient_id"`
		CanView   *bool  `json:"can_view"`
		CanEdit   bool   `json:"can_edit"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	if _, err := h.svc.GetByID(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}

	canView := true
	if body.CanView != nil {
		canView = *body.CanView
	}

	adminID, _ := adminIDFromFiber(c)
	g, err := h.permSvc.GrantAccess(c.Context(), id, adminID, permission.GrantAccessRequest{
		PatientID: patientID,
		CanView:   canView,
		CanEdit:   body.CanEdit,
	})
	if err != nil {
		return mapPermissionError(c, err)
	}
	return created(c, grantJSON(g))
}

// DELETE /admin/users/:id/grants/:patient_id
func (h *UserHandler) RevokeAccess(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	patientID, err := uuid.Parse(c.Params("patient_id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.permSvc.RevokeAccess(c.Context(), id, patientID); err != nil {
		return mapPermissionError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrUsernameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrUsernameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrAdminUndeletable):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func mapPermissionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, permission.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, permission.ErrInvalidPermissionType):
		return badRequest(c, err.Error())
	case errors.Is(err, permission.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, permission.ErrAlreadyGranted):
		return conflict(c, err.Error())
	case errors.Is(err, permission.ErrGrantNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
