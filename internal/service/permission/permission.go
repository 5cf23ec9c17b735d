package permission

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nephrocare/dialyse_backend/internal/repo"
	entpatient "github.com/nephrocare/dialyse_backend/internal/repo/patient"
	entgrant "github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	entprofile "github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertProfileRequest struct {
	PermissionType       string // viewer | creator
	CanViewAllPatients   bool
	CanCreateNewPatients bool
}

type GrantAccessRequest struct {
	PatientID uuid.UUID
	CanView   bool
	CanEdit   bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*repo.PermissionProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.PermissionProfile, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error

	ListGrants(ctx context.Context, userID uuid.UUID) ([]*repo.PatientAccessGrant, error)
	GrantAccess(ctx context.Context, userID, grantedBy uuid.UUID, req GrantAccessRequest) (*repo.PatientAccessGrant, error)
	RevokeAccess(ctx context.Context, userID, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type permissionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &permissionService{db: db}
}

// GetProfile returns the user's permission profile. A user without one
// gets ErrProfileNotFound; callers treat that as the restricted default.
func (s *permissionService) GetProfile(ctx context.Context, userID uuid.UUID) (*repo.PermissionProfile, error) {
	p, err := s.db.PermissionProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *permissionService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.PermissionProfile, error) {
	switch req.PermissionType {
	case string(entprofile.PermissionTypeViewer), string(entprofile.PermissionTypeCreator):
	default:
		return nil, ErrInvalidPermissionType
	}

	existing, err := s.db.PermissionProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, err
	}

	if repo.IsNotFound(err) {
		return s.db.PermissionProfile.Create().
			SetUserID(userID).
			SetPermissionType(entprofile.PermissionType(req.PermissionType)).
			SetCanViewAllPatients(req.CanViewAllPatients).
			SetCanCreateNewPatients(req.CanCreateNewPatients).
			Save(ctx)
	}

	return s.db.PermissionProfile.UpdateOne(existing).
		SetPermissionType(entprofile.PermissionType(req.PermissionType)).
		SetCanViewAllPatients(req.CanViewAllPatients).
		SetCanCreateNewPatients(req.CanCreateNewPatients).
		Save(ctx)
}

func (s *permissionService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.PermissionProfile.Delete().
		Where(entprofile.UserID(userID)).
		Exec(ctx)
	return err
}

func (s *permissionService) ListGrants(ctx context.Context, userID uuid.UUID) ([]*repo.PatientAccessGrant, error) {
	return s.db.PatientAccessGrant.Query().
		Where(entgrant.UserID(userID)).
		Order(entgrant.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *permissionService) GrantAccess(ctx context.Context, userID, grantedBy uuid.UUID, req GrantAccessRequest) (*repo.PatientAccessGrant, error) {
	patientExists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if !patientExists {
		return nil, ErrPatientNotFound
	}

	exists, err := s.db.PatientAccessGrant.Query().
		Where(
			entgrant.UserID(userID),
			entgrant.PatientID(req.PatientID),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyGranted
	}

	return s.db.PatientAccessGrant.Create().
		SetUserID(userID).
		SetPatientID(req.PatientID).
		SetGrantedBy(grantedBy).
		SetCanView(req.CanView).
		SetCanEdit(req.CanEdit).
		Save(ctx)
}

func (s *permissionService) RevokeAccess(ctx context.Context, userID, patientID uuid.UUID) error {
	n, err := s.db.PatientAccessGrant.Delete().
		Where(
			entgrant.UserID(userID),
			entgrant.PatientID(patientID),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGrantNotFound
	}
	return nil
}
