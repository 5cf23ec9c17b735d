package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nephrocare/dialyse_backend/internal/access"
	"github.com/nephrocare/dialyse_backend/internal/service/patient"
	pasetotoken "github.com/nephrocare/dialyse_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func viewerFromFiber(c fiber.Ctx) (patient.Viewer, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.SessionID == nil {
		return patient.Viewer{}, false
	}
	return patient.Viewer{UserID: claims.UserID, SessionID: *claims.SessionID}, true
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrInvalidValue):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

type patientBody struct {
	FullName       *string `json:"full_name"`
	NationalID     *string `json:"national_id"`
	InsuranceNo    *string `json:"insurance_no"`
	BirthDate      *string `json:"birth_date"` // YYYY-MM-DD
	Sex            *string `json:"sex"`
	BloodGroup     *string `json:"blood_group"`
	Phone          *string `json:"phone"`
	EmergencyPhone *string `json:"emergency_phone"`
	Address        *string `json:"address"`
	Profession     *string `json:"profession"`
	MaritalStatus  *string `json:"marital_status"`
	Type           *string `json:"type"`
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func patientJSON(v *patient.View) fiber.Map {
	p := v.Patient
	m := fiber.Map{
		"id":              p.ID,
		"full_name":       p.FullName,
		"national_id":     v.NationalID,
		"insurance_no":    p.InsuranceNo,
		"sex":             p.Sex,
		"blood_group":     p.BloodGroup,
		"phone":           p.Phone,
		"emergency_phone": p.EmergencyPhone,
		"address":         p.Address,
		"profession":      p.Profession,
		"marital_status":  p.MaritalStatus,
		"type":            p.Type,
		"created_at":      p.CreatedAt,
		"updated_at":      p.UpdatedAt,
		"capabilities":    v.Capabilities,
	}
	if p.BirthDate != nil {
		m["birth_date"] = p.BirthDate.Format("2006-01-02")
	} else {
		m["birth_date"] = nil
	}
	return m
}

// ---------------------------------------------------------------------------
// Roster and CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Name       string `query:"name"`
		Sex        string `query:"sex"`
		BloodGroup string `query:"blood_group"`
		Type       string `query:"type"`
	}
	_ = c.Bind().Query(&q)

	views, canCreate, err := h.svc.List(c.Context(), viewer, access.Filters{
		Name:       q.Name,
		Sex:        q.Sex,
		BloodGroup: q.BloodGroup,
		Type:       q.Type,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	items := make([]fiber.Map, 0, len(views))
	for _, v := range views {
		items = append(items, patientJSON(v))
	}

	return ok(c, fiber.Map{
		"patients":   items,
		"total":      len(items),
		"can_create": canCreate,
	})
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	v, err := h.svc.GetByID(c.Context(), viewer, id)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, patientJSON(v))
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	birthDate, err := parseBirthDate(body.BirthDate)
	if err != nil {
		return badRequest(c, "birth_date must be YYYY-MM-DD")
	}

	fullName := ""
	if body.FullName != nil {
		fullName = *body.FullName
	}

	v, err := h.svc.Create(c.Context(), viewer, patient.CreatePatientRequest{
		FullName:       fullName,
		NationalID:     body.NationalID,
		InsuranceNo:    body.InsuranceNo,
		BirthDate:      birthDate,
		Sex:            body.Sex,
		BloodGroup:     body.BloodGroup,
		Phone:          body.Phone,
		EmergencyPhone: body.EmergencyPhone,
		Address:        body.Address,
		Profession:     body.Profession,
		MaritalStatus:  body.MaritalStatus,
		Type:           body.Type,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, patientJSON(v))
}

// PUT /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	birthDate, err := parseBirthDate(body.BirthDate)
	if err != nil {
		return badRequest(c, "birth_date must be YYYY-MM-DD")
	}

	v, err := h.svc.Update(c.Context(), viewer, id, patient.UpdatePatientRequest{
		FullName:       body.FullName,
		NationalID:     body.NationalID,
		InsuranceNo:    body.InsuranceNo,
		BirthDate:      birthDate,
		Sex:            body.Sex,
		BloodGroup:     body.BloodGroup,
		Phone:          body.Phone,
		EmergencyPhone: body.EmergencyPhone,
		Address:        body.Address,
		Profession:     body.Profession,
		MaritalStatus:  body.MaritalStatus,
		Type:           body.Type,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, patientJSON(v))
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), viewer, id); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// GET /stats/patients
func (h *PatientHandler) Stats(c fiber.Ctx) error {
	viewer, valid := viewerFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	counts, err := h.svc.CountByType(c.Context(), viewer)
	if err != nil {
		return mapPatientError(c, err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return ok(c, fiber.Map{"by_type": counts, "total": total})
}
