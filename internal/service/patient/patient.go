package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/nephrocare/dialyse_backend/config"
	"github.com/nephrocare/dialyse_backend/internal/access"
	"github.com/nephrocare/dialyse_backend/internal/repo"
	entpatient "github.com/nephrocare/dialyse_backend/internal/repo/patient"
	entgrant "github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	entattr "github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	entprofile "github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	entuser "github.com/nephrocare/dialyse_backend/internal/repo/user"
	"github.com/nephrocare/dialyse_backend/pkg/crypto"
)

// defaultPhoneRegion is used when a phone number has no country prefix.
const defaultPhoneRegion = "MA"

var (
	validSexes = map[string]bool{"M": true, "F": true}

	validBloodGroups = map[string]bool{
		"A+": true, "A-": true, "B+": true, "B-": true,
		"AB+": true, "AB-": true, "O+": true, "O-": true,
	}

	validTypes = map[string]bool{
		"permanent": true, "vacationer": true, "transferred": true,
		"deceased": true, "transplanted": true,
	}
)

func validateEnums(sex, bloodGroup, typ *string) error {
	if sex != nil && *sex != "" && !validSexes[*sex] {
		return ErrInvalidValue
	}
	if bloodGroup != nil && *bloodGroup != "" && !validBloodGroups[*bloodGroup] {
		return ErrInvalidValue
	}
	if typ != nil && *typ != "" && !validTypes[*typ] {
		return ErrInvalidValue
	}
	return nil
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Viewer identifies the account a request runs as. The session id scopes
// the creator edit rule. The role is always read from the database, never
// taken from the request.
type Viewer struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

type CreatePatientRequest struct {
	FullName       string
	NationalID     *string
	InsuranceNo    *string
	BirthDate      *time.Time
	Sex            *string
	BloodGroup     *string
	Phone          *string
	EmergencyPhone *string
	Address        *string
	Profession     *string
	MaritalStatus  *string
	Type           *string
}

type UpdatePatientRequest struct {
	FullName       *string
	NationalID     *string
	InsuranceNo    *string
	BirthDate      *time.Time
	Sex            *string
	BloodGroup     *string
	Phone          *string
	EmergencyPhone *string
	Address        *string
	Profession     *string
	MaritalStatus  *string
	Type           *string
}

// View is a patient row plus the caller's resolved capabilities, so
// clients can render affordances without re-deriving policy.
type View struct {
	Patient      *repo.Patient
	NationalID   string // decrypted, empty when absent
	Capabilities access.Capabilities
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, viewer Viewer, filters access.Filters) ([]*View, bool, error)
	GetByID(ctx context.Context, viewer Viewer, patientID uuid.UUID) (*View, error)
	Create(ctx context.Context, viewer Viewer, req CreatePatientRequest) (*View, error)
	Update(ctx context.Context, viewer Viewer, patientID uuid.UUID, req UpdatePatientRequest) (*View, error)
	Delete(ctx context.Context, viewer Viewer, patientID uuid.UUID) error

	// CountByType powers the dashboard statistics. Admin only.
	CountByType(ctx context.Context, viewer Viewer) (map[string]int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	encKey []byte // AES-256 key for national_id encryption
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("patient service: invalid encryption key: %w", err)
	}
	return &patientService{db: db, encKey: encKey}, nil
}

// resolverInput loads the viewer's role, profile, grants and session
// attributions and assembles the pure resolver input.
func (s *patientService) resolverInput(ctx context.Context, viewer Viewer) (access.Input, error) {
	var in access.Input

	u, err := s.db.User.Query().
		Where(entuser.ID(viewer.UserID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return in, ErrAccessDenied
		}
		return in, fmt.Errorf("load viewer: %w", err)
	}

	in.Role = access.Role(u.Role)
	if in.Role == access.RoleAdmin {
		return in, nil
	}

	prof, err := s.db.PermissionProfile.Query().
		Where(entprofile.UserID(viewer.UserID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return in, fmt.Errorf("load profile: %w", err)
	}
	if prof != nil {
		in.Profile = &access.Profile{
			Type:         access.ProfileType(prof.PermissionType),
			CanViewAll:   prof.CanViewAllPatients,
			CanCreateNew: prof.CanCreateNewPatients,
		}
	}

	grants, err := s.db.PatientAccessGrant.Query().
		Where(entgrant.UserID(viewer.UserID)).
		All(ctx)
	if err != nil {
		return in, fmt.Errorf("load grants: %w", err)
	}
	for _, g := range grants {
		in.Grants = append(in.Grants, access.Grant{
			PatientID: g.PatientID,
			CanView:   g.CanView,
			CanEdit:   g.CanEdit,
		})
	}

	attrs, err := s.db.PatientAttribution.Query().
		Where(
			entattr.UserID(viewer.UserID),
			entattr.SessionID(viewer.SessionID.String()),
		).
		All(ctx)
	if err != nil {
		return in, fmt.Errorf("load attributions: %w", err)
	}
	for _, a := range attrs {
		in.SessionPatientIDs = append(in.SessionPatientIDs, a.PatientID)
	}

	return in, nil
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List returns the roster the viewer may see, filtered. The second return
// value reports whether the viewer may create patients, so the roster
// page can render its create affordance in one round trip.
func (s *patientService) List(ctx context.Context, viewer Viewer, filters access.Filters) ([]*View, bool, error) {
	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return nil, false, err
	}

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil())

	// The scope decision picks the query shape: full scan for admins,
	// creators and blanket viewers; a join through view grants otherwise.
	if access.Scope(in) == access.ScopeGranted {
		ids := make([]uuid.UUID, 0, len(in.Grants))
		for _, g := range in.Grants {
			if g.CanView {
				ids = append(ids, g.PatientID)
			}
		}
		if len(ids) == 0 {
			return []*View{}, access.CanCreate(in), nil
		}
		q = q.Where(entpatient.IDIn(ids...))
	}

	patients, err := q.Order(entpatient.ByFullName(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list patients: %w", err)
	}

	patients = access.Apply(patients, func(p *repo.Patient) access.PatientFacts {
		facts := access.PatientFacts{FullName: p.FullName, Type: string(p.Type)}
		if p.Sex != nil {
			facts.Sex = string(*p.Sex)
		}
		if p.BloodGroup != nil {
			facts.BloodGroup = string(*p.BloodGroup)
		}
		return facts
	}, filters)

	views := make([]*View, 0, len(patients))
	for _, p := range patients {
		v, err := s.view(in, p)
		if err != nil {
			return nil, false, err
		}
		views = append(views, v)
	}

	return views, access.CanCreate(in), nil
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func (s *patientService) GetByID(ctx context.Context, viewer Viewer, patientID uuid.UUID) (*View, error) {
	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return nil, err
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	// An invisible patient reads as not found, same as the roster.
	if !access.Decide(in, access.ActionView, p.ID) {
		return nil, ErrPatientNotFound
	}

	return s.view(in, p)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *patientService) Create(ctx context.Context, viewer Viewer, req CreatePatientRequest) (*View, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return nil, ErrNameRequired
	}

	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if !access.CanCreate(in) {
		return nil, ErrAccessDenied
	}

	if err := validateEnums(req.Sex, req.BloodGroup, req.Type); err != nil {
		return nil, err
	}
	if err := normalizePhones(req.Phone, req.EmergencyPhone); err != nil {
		return nil, err
	}

	c := s.db.Patient.Create().
		SetFullName(req.FullName).
		SetCreatedBy(viewer.UserID)

	if req.NationalID != nil && *req.NationalID != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.NationalID)
		if err != nil {
			return nil, fmt.Errorf("encrypt national_id: %w", err)
		}
		h := crypto.Hash(*req.NationalID)
		c = c.SetNationalID(enc).SetNationalIDHash(h)
	}
	if req.InsuranceNo != nil {
		c = c.SetNillableInsuranceNo(req.InsuranceNo)
	}
	if req.BirthDate != nil {
		c = c.SetNillableBirthDate(req.BirthDate)
	}
	if req.Sex != nil && *req.Sex != "" {
		c = c.SetSex(entpatient.Sex(*req.Sex))
	}
	if req.BloodGroup != nil && *req.BloodGroup != "" {
		c = c.SetBloodGroup(entpatient.BloodGroup(*req.BloodGroup))
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.EmergencyPhone != nil {
		c = c.SetNillableEmergencyPhone(req.EmergencyPhone)
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if req.Profession != nil {
		c = c.SetNillableProfession(req.Profession)
	}
	if req.MaritalStatus != nil {
		c = c.SetNillableMaritalStatus(req.MaritalStatus)
	}
	if req.Type != nil && *req.Type != "" {
		c = c.SetType(entpatient.Type(*req.Type))
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	// Record the (user, session, patient) attribution. This is what later
	// lets the creator edit the record, and only in this session.
	_, err = s.db.PatientAttribution.Create().
		SetUserID(viewer.UserID).
		SetSessionID(viewer.SessionID.String()).
		SetPatientID(p.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record attribution: %w", err)
	}

	in.SessionPatientIDs = append(in.SessionPatientIDs, p.ID)
	return s.view(in, p)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *patientService) Update(ctx context.Context, viewer Viewer, patientID uuid.UUID, req UpdatePatientRequest) (*View, error) {
	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return nil, err
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	if !access.Decide(in, access.ActionEdit, p.ID) {
		return nil, ErrAccessDenied
	}

	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		req.FullName = &trimmed
	}
	if err := validateEnums(req.Sex, req.BloodGroup, req.Type); err != nil {
		return nil, err
	}
	if err := normalizePhones(req.Phone, req.EmergencyPhone); err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FullName != nil {
		u = u.SetFullName(*req.FullName)
	}
	if req.NationalID != nil {
		if *req.NationalID == "" {
			u = u.ClearNationalID().ClearNationalIDHash()
		} else {
			enc, err := crypto.Encrypt(s.encKey, *req.NationalID)
			if err != nil {
				return nil, fmt.Errorf("encrypt national_id: %w", err)
			}
			u = u.SetNationalID(enc).SetNationalIDHash(crypto.Hash(*req.NationalID))
		}
	}
	if req.InsuranceNo != nil {
		u = u.SetNillableInsuranceNo(req.InsuranceNo)
	}
	if req.BirthDate != nil {
		u = u.SetNillableBirthDate(req.BirthDate)
	}
	if req.Sex != nil && *req.Sex != "" {
		u = u.SetSex(entpatient.Sex(*req.Sex))
	}
	if req.BloodGroup != nil && *req.BloodGroup != "" {
		u = u.SetBloodGroup(entpatient.BloodGroup(*req.BloodGroup))
	}
	if req.Phone != nil {
		u = u.SetNillablePhone(req.Phone)
	}
	if req.EmergencyPhone != nil {
		u = u.SetNillableEmergencyPhone(req.EmergencyPhone)
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
	}
	if req.Profession != nil {
		u = u.SetNillableProfession(req.Profession)
	}
	if req.MaritalStatus != nil {
		u = u.SetNillableMaritalStatus(req.MaritalStatus)
	}
	if req.Type != nil && *req.Type != "" {
		u = u.SetType(entpatient.Type(*req.Type))
	}

	p, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	return s.view(in, p)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func (s *patientService) Delete(ctx context.Context, viewer Viewer, patientID uuid.UUID) error {
	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return err
	}
	if !access.Decide(in, access.ActionDelete, patientID) {
		return ErrAccessDenied
	}

	n, err := s.db.Patient.Update().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// CountByType
// ---------------------------------------------------------------------------

func (s *patientService) CountByType(ctx context.Context, viewer Viewer) (map[string]int, error) {
	in, err := s.resolverInput(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if in.Role != access.RoleAdmin {
		return nil, ErrAccessDenied
	}

	var rows []struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}
	err = s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		GroupBy(entpatient.FieldType).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, t := range []string{"permanent", "vacationer", "transferred", "deceased", "transplanted"} {
		counts[t] = 0
	}
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *patientService) view(in access.Input, p *repo.Patient) (*View, error) {
	v := &View{
		Patient:      p,
		Capabilities: access.For(in, p.ID),
	}
	if p.NationalID != nil && *p.NationalID != "" {
		plain, err := crypto.Decrypt(s.encKey, *p.NationalID)
		if err != nil {
			return nil, fmt.Errorf("decrypt national_id: %w", err)
		}
		v.NationalID = plain
	}
	return v, nil
}

// normalizePhones validates the given phone numbers and rewrites them to
// E.164 in place. Nil or empty values pass through untouched.
func normalizePhones(nums ...*string) error {
	for _, n := range nums {
		if n == nil || strings.TrimSpace(*n) == "" {
			continue
		}
		parsed, err := phonenumbers.Parse(strings.TrimSpace(*n), defaultPhoneRegion)
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return ErrInvalidPhone
		}
		*n = phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return nil
}
