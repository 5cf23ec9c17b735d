// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PatientUpdate) SetFullName(v string) *PatientUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFullName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PatientUpdate) SetNationalID(v string) *PatientUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNationalID(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PatientUpdate) ClearNationalID() *PatientUpdate {
	_u.mutation.ClearNationalID()
	return _u
}

// SetNationalIDHash sets the "national_id_hash" field.
func (_u *PatientUpdate) SetNationalIDHash(v string) *PatientUpdate {
	_u.mutation.SetNationalIDHash(v)
	return _u
}

// SetNillableNationalIDHash sets the "national_id_hash" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNationalIDHash(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNationalIDHash(*v)
	}
	return _u
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (_u *PatientUpdate) ClearNationalIDHash() *PatientUpdate {
	_u.mutation.ClearNationalIDHash()
	return _u
}

// SetInsuranceNo sets the "insurance_no" field.
func (_u *PatientUpdate) SetInsuranceNo(v string) *PatientUpdate {
	_u.mutation.SetInsuranceNo(v)
	return _u
}

// SetNillableInsuranceNo sets the "insurance_no" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceNo(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceNo(*v)
	}
	return _u
}

// ClearInsuranceNo clears the value of the "insurance_no" field.
func (_u *PatientUpdate) ClearInsuranceNo() *PatientUpdate {
	_u.mutation.ClearInsuranceNo()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdate) SetBirthDate(v time.Time) *PatientUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBirthDate(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdate) ClearBirthDate() *PatientUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetSex sets the "sex" field.
func (_u *PatientUpdate) SetSex(v patient.Sex) *PatientUpdate {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSex(v *patient.Sex) *PatientUpdate {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *PatientUpdate) ClearSex() *PatientUpdate {
	_u.mutation.ClearSex()
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *PatientUpdate) SetBloodGroup(v patient.BloodGroup) *PatientUpdate {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBloodGroup(v *patient.BloodGroup) *PatientUpdate {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (_u *PatientUpdate) ClearBloodGroup() *PatientUpdate {
	_u.mutation.ClearBloodGroup()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdate) ClearPhone() *PatientUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *PatientUpdate) SetEmergencyPhone(v string) *PatientUpdate {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyPhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *PatientUpdate) ClearEmergencyPhone() *PatientUpdate {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientUpdate) SetAddress(v string) *PatientUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAddress(v *string) *PatientUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientUpdate) ClearAddress() *PatientUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetProfession sets the "profession" field.
func (_u *PatientUpdate) SetProfession(v string) *PatientUpdate {
	_u.mutation.SetProfession(v)
	return _u
}

// SetNillableProfession sets the "profession" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableProfession(v *string) *PatientUpdate {
	if v != nil {
		_u.SetProfession(*v)
	}
	return _u
}

// ClearProfession clears the value of the "profession" field.
func (_u *PatientUpdate) ClearProfession() *PatientUpdate {
	_u.mutation.ClearProfession()
	return _u
}

// SetMaritalStatus sets the "marital_status" field.
func (_u *PatientUpdate) SetMaritalStatus(v string) *PatientUpdate {
	_u.mutation.SetMaritalStatus(v)
	return _u
}

// SetNillableMaritalStatus sets the "marital_status" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMaritalStatus(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMaritalStatus(*v)
	}
	return _u
}

// ClearMaritalStatus clears the value of the "marital_status" field.
func (_u *PatientUpdate) ClearMaritalStatus() *PatientUpdate {
	_u.mutation.ClearMaritalStatus()
	return _u
}

// SetType sets the "type" field.
func (_u *PatientUpdate) SetType(v patient.Type) *PatientUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableType(v *patient.Type) *PatientUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PatientUpdate) SetCreatedBy(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableCreatedBy(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PatientUpdate) ClearCreatedBy() *PatientUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_u *PatientUpdate) SetCreatorID(id uuid.UUID) *PatientUpdate {
	_u.mutation.SetCreatorID(id)
	return _u
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_u *PatientUpdate) SetNillableCreatorID(id *uuid.UUID) *PatientUpdate {
	if id != nil {
		_u = _u.SetCreatorID(*id)
	}
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *PatientUpdate) SetCreator(v *User) *PatientUpdate {
	return _u.SetCreatorID(v.ID)
}

// AddAccessGrantIDs adds the "access_grants" edge to the PatientAccessGrant entity by IDs.
func (_u *PatientUpdate) AddAccessGrantIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAccessGrantIDs(ids...)
	return _u
}

// AddAccessGrants adds the "access_grants" edges to the PatientAccessGrant entity.
func (_u *PatientUpdate) AddAccessGrants(v ...*PatientAccessGrant) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccessGrantIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the PatientAttribution entity by IDs.
func (_u *PatientUpdate) AddAttributionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the PatientAttribution entity.
func (_u *PatientUpdate) AddAttributions(v ...*PatientAttribution) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *PatientUpdate) ClearCreator() *PatientUpdate {
	_u.mutation.ClearCreator()
	return _u
}

// ClearAccessGrants clears all "access_grants" edges to the PatientAccessGrant entity.
func (_u *PatientUpdate) ClearAccessGrants() *PatientUpdate {
	_u.mutation.ClearAccessGrants()
	return _u
}

// RemoveAccessGrantIDs removes the "access_grants" edge to PatientAccessGrant entities by IDs.
func (_u *PatientUpdate) RemoveAccessGrantIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAccessGrantIDs(ids...)
	return _u
}

// RemoveAccessGrants removes "access_grants" edges to PatientAccessGrant entities.
func (_u *PatientUpdate) RemoveAccessGrants(v ...*PatientAccessGrant) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccessGrantIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the PatientAttribution entity.
func (_u *PatientUpdate) ClearAttributions() *PatientUpdate {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to PatientAttribution entities by IDs.
func (_u *PatientUpdate) RemoveAttributionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to PatientAttribution entities.
func (_u *PatientUpdate) RemoveAttributions(v ...*PatientAttribution) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalIDHash(); ok {
		if err := patient.NationalIDHashValidator(v); err != nil {
			return &ValidationError{Name: "national_id_hash", err: fmt.Errorf(`repo: validator failed for field "Patient.national_id_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceNo(); ok {
		if err := patient.InsuranceNoValidator(v); err != nil {
			return &ValidationError{Name: "insurance_no", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodGroup(); ok {
		if err := patient.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Profession(); ok {
		if err := patient.ProfessionValidator(v); err != nil {
			return &ValidationError{Name: "profession", err: fmt.Errorf(`repo: validator failed for field "Patient.profession": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaritalStatus(); ok {
		if err := patient.MaritalStatusValidator(v); err != nil {
			return &ValidationError{Name: "marital_status", err: fmt.Errorf(`repo: validator failed for field "Patient.marital_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := patient.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Patient.type": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(patient.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(patient.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDHash(); ok {
		_spec.SetField(patient.FieldNationalIDHash, field.TypeString, value)
	}
	if _u.mutation.NationalIDHashCleared() {
		_spec.ClearField(patient.FieldNationalIDHash, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceNo(); ok {
		_spec.SetField(patient.FieldInsuranceNo, field.TypeString, value)
	}
	if _u.mutation.InsuranceNoCleared() {
		_spec.ClearField(patient.FieldInsuranceNo, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(patient.FieldSex, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(patient.FieldBloodGroup, field.TypeEnum, value)
	}
	if _u.mutation.BloodGroupCleared() {
		_spec.ClearField(patient.FieldBloodGroup, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patient.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Profession(); ok {
		_spec.SetField(patient.FieldProfession, field.TypeString, value)
	}
	if _u.mutation.ProfessionCleared() {
		_spec.ClearField(patient.FieldProfession, field.TypeString)
	}
	if value, ok := _u.mutation.MaritalStatus(); ok {
		_spec.SetField(patient.FieldMaritalStatus, field.TypeString, value)
	}
	if _u.mutation.MaritalStatusCleared() {
		_spec.ClearField(patient.FieldMaritalStatus, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(patient.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.CreatorTable,
			Columns: []string{patient.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.CreatorTable,
			Columns: []string{patient.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccessGrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccessGrantsIDs(); len(nodes) > 0 && !_u.mutation.AccessGrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccessGrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PatientUpdateOne) SetFullName(v string) *PatientUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFullName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PatientUpdateOne) SetNationalID(v string) *PatientUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNationalID(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PatientUpdateOne) ClearNationalID() *PatientUpdateOne {
	_u.mutation.ClearNationalID()
	return _u
}

// SetNationalIDHash sets the "national_id_hash" field.
func (_u *PatientUpdateOne) SetNationalIDHash(v string) *PatientUpdateOne {
	_u.mutation.SetNationalIDHash(v)
	return _u
}

// SetNillableNationalIDHash sets the "national_id_hash" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNationalIDHash(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNationalIDHash(*v)
	}
	return _u
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (_u *PatientUpdateOne) ClearNationalIDHash() *PatientUpdateOne {
	_u.mutation.ClearNationalIDHash()
	return _u
}

// SetInsuranceNo sets the "insurance_no" field.
func (_u *PatientUpdateOne) SetInsuranceNo(v string) *PatientUpdateOne {
	_u.mutation.SetInsuranceNo(v)
	return _u
}

// SetNillableInsuranceNo sets the "insurance_no" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceNo(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceNo(*v)
	}
	return _u
}

// ClearInsuranceNo clears the value of the "insurance_no" field.
func (_u *PatientUpdateOne) ClearInsuranceNo() *PatientUpdateOne {
	_u.mutation.ClearInsuranceNo()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdateOne) SetBirthDate(v time.Time) *PatientUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBirthDate(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdateOne) ClearBirthDate() *PatientUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetSex sets the "sex" field.
func (_u *PatientUpdateOne) SetSex(v patient.Sex) *PatientUpdateOne {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSex(v *patient.Sex) *PatientUpdateOne {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *PatientUpdateOne) ClearSex() *PatientUpdateOne {
	_u.mutation.ClearSex()
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *PatientUpdateOne) SetBloodGroup(v patient.BloodGroup) *PatientUpdateOne {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBloodGroup(v *patient.BloodGroup) *PatientUpdateOne {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (_u *PatientUpdateOne) ClearBloodGroup() *PatientUpdateOne {
	_u.mutation.ClearBloodGroup()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdateOne) ClearPhone() *PatientUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *PatientUpdateOne) SetEmergencyPhone(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyPhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *PatientUpdateOne) ClearEmergencyPhone() *PatientUpdateOne {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientUpdateOne) SetAddress(v string) *PatientUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAddress(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientUpdateOne) ClearAddress() *PatientUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetProfession sets the "profession" field.
func (_u *PatientUpdateOne) SetProfession(v string) *PatientUpdateOne {
	_u.mutation.SetProfession(v)
	return _u
}

// SetNillableProfession sets the "profession" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableProfession(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetProfession(*v)
	}
	return _u
}

// ClearProfession clears the value of the "profession" field.
func (_u *PatientUpdateOne) ClearProfession() *PatientUpdateOne {
	_u.mutation.ClearProfession()
	return _u
}

// SetMaritalStatus sets the "marital_status" field.
func (_u *PatientUpdateOne) SetMaritalStatus(v string) *PatientUpdateOne {
	_u.mutation.SetMaritalStatus(v)
	return _u
}

// SetNillableMaritalStatus sets the "marital_status" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMaritalStatus(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMaritalStatus(*v)
	}
	return _u
}

// ClearMaritalStatus clears the value of the "marital_status" field.
func (_u *PatientUpdateOne) ClearMaritalStatus() *PatientUpdateOne {
	_u.mutation.ClearMaritalStatus()
	return _u
}

// SetType sets the "type" field.
func (_u *PatientUpdateOne) SetType(v patient.Type) *PatientUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableType(v *patient.Type) *PatientUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PatientUpdateOne) SetCreatedBy(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PatientUpdateOne) ClearCreatedBy() *PatientUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_u *PatientUpdateOne) SetCreatorID(id uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetCreatorID(id)
	return _u
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableCreatorID(id *uuid.UUID) *PatientUpdateOne {
	if id != nil {
		_u = _u.SetCreatorID(*id)
	}
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *PatientUpdateOne) SetCreator(v *User) *PatientUpdateOne {
	return _u.SetCreatorID(v.ID)
}

// AddAccessGrantIDs adds the "access_grants" edge to the PatientAccessGrant entity by IDs.
func (_u *PatientUpdateOne) AddAccessGrantIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAccessGrantIDs(ids...)
	return _u
}

// AddAccessGrants adds the "access_grants" edges to the PatientAccessGrant entity.
func (_u *PatientUpdateOne) AddAccessGrants(v ...*PatientAccessGrant) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccessGrantIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the PatientAttribution entity by IDs.
func (_u *PatientUpdateOne) AddAttributionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the PatientAttribution entity.
func (_u *PatientUpdateOne) AddAttributions(v ...*PatientAttribution) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *PatientUpdateOne) ClearCreator() *PatientUpdateOne {
	_u.mutation.ClearCreator()
	return _u
}

// ClearAccessGrants clears all "access_grants" edges to the PatientAccessGrant entity.
func (_u *PatientUpdateOne) ClearAccessGrants() *PatientUpdateOne {
	_u.mutation.ClearAccessGrants()
	return _u
}

// RemoveAccessGrantIDs removes the "access_grants" edge to PatientAccessGrant entities by IDs.
func (_u *PatientUpdateOne) RemoveAccessGrantIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAccessGrantIDs(ids...)
	return _u
}

// RemoveAccessGrants removes "access_grants" edges to PatientAccessGrant entities.
func (_u *PatientUpdateOne) RemoveAccessGrants(v ...*PatientAccessGrant) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccessGrantIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the PatientAttribution entity.
func (_u *PatientUpdateOne) ClearAttributions() *PatientUpdateOne {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to PatientAttribution entities by IDs.
func (_u *PatientUpdateOne) RemoveAttributionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to PatientAttribution entities.
func (_u *PatientUpdateOne) RemoveAttributions(v ...*PatientAttribution) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalIDHash(); ok {
		if err := patient.NationalIDHashValidator(v); err != nil {
			return &ValidationError{Name: "national_id_hash", err: fmt.Errorf(`repo: validator failed for field "Patient.national_id_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceNo(); ok {
		if err := patient.InsuranceNoValidator(v); err != nil {
			return &ValidationError{Name: "insurance_no", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodGroup(); ok {
		if err := patient.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Profession(); ok {
		if err := patient.ProfessionValidator(v); err != nil {
			return &ValidationError{Name: "profession", err: fmt.Errorf(`repo: validator failed for field "Patient.profession": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaritalStatus(); ok {
		if err := patient.MaritalStatusValidator(v); err != nil {
			return &ValidationError{Name: "marital_status", err: fmt.Errorf(`repo: validator failed for field "Patient.marital_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := patient.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Patient.type": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(patient.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(patient.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDHash(); ok {
		_spec.SetField(patient.FieldNationalIDHash, field.TypeString, value)
	}
	if _u.mutation.NationalIDHashCleared() {
		_spec.ClearField(patient.FieldNationalIDHash, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceNo(); ok {
		_spec.SetField(patient.FieldInsuranceNo, field.TypeString, value)
	}
	if _u.mutation.InsuranceNoCleared() {
		_spec.ClearField(patient.FieldInsuranceNo, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(patient.FieldSex, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(patient.FieldBloodGroup, field.TypeEnum, value)
	}
	if _u.mutation.BloodGroupCleared() {
		_spec.ClearField(patient.FieldBloodGroup, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patient.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Profession(); ok {
		_spec.SetField(patient.FieldProfession, field.TypeString, value)
	}
	if _u.mutation.ProfessionCleared() {
		_spec.ClearField(patient.FieldProfession, field.TypeString)
	}
	if value, ok := _u.mutation.MaritalStatus(); ok {
		_spec.SetField(patient.FieldMaritalStatus, field.TypeString, value)
	}
	if _u.mutation.MaritalStatusCleared() {
		_spec.ClearField(patient.FieldMaritalStatus, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(patient.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.CreatorTable,
			Columns: []string{patient.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.CreatorTable,
			Columns: []string{patient.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccessGrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccessGrantsIDs(); len(nodes) > 0 && !_u.mutation.AccessGrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccessGrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AccessGrantsTable,
			Columns: []string{patient.AccessGrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AttributionsTable,
			Columns: []string{patient.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
