// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *PatientCreate) SetFullName(v string) *PatientCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *PatientCreate) SetNationalID(v string) *PatientCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNationalID(v *string) *PatientCreate {
	if v != nil {
		_c.SetNationalID(*v)
	}
	return _c
}

// SetNationalIDHash sets the "national_id_hash" field.
func (_c *PatientCreate) SetNationalIDHash(v string) *PatientCreate {
	_c.mutation.SetNationalIDHash(v)
	return _c
}

// SetNillableNationalIDHash sets the "national_id_hash" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNationalIDHash(v *string) *PatientCreate {
	if v != nil {
		_c.SetNationalIDHash(*v)
	}
	return _c
}

// SetInsuranceNo sets the "insurance_no" field.
func (_c *PatientCreate) SetInsuranceNo(v string) *PatientCreate {
	_c.mutation.SetInsuranceNo(v)
	return _c
}

// SetNillableInsuranceNo sets the "insurance_no" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceNo(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsuranceNo(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientCreate) SetBirthDate(v time.Time) *PatientCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBirthDate(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetSex sets the "sex" field.
func (_c *PatientCreate) SetSex(v patient.Sex) *PatientCreate {
	_c.mutation.SetSex(v)
	return _c
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSex(v *patient.Sex) *PatientCreate {
	if v != nil {
		_c.SetSex(*v)
	}
	return _c
}

// SetBloodGroup sets the "blood_group" field.
func (_c *PatientCreate) SetBloodGroup(v patient.BloodGroup) *PatientCreate {
	_c.mutation.SetBloodGroup(v)
	return _c
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBloodGroup(v *patient.BloodGroup) *PatientCreate {
	if v != nil {
		_c.SetBloodGroup(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_c *PatientCreate) SetEmergencyPhone(v string) *PatientCreate {
	_c.mutation.SetEmergencyPhone(v)
	return _c
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyPhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PatientCreate) SetAddress(v string) *PatientCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAddress(v *string) *PatientCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetProfession sets the "profession" field.
func (_c *PatientCreate) SetProfession(v string) *PatientCreate {
	_c.mutation.SetProfession(v)
	return _c
}

// SetNillableProfession sets the "profession" field if the given value is not nil.
func (_c *PatientCreate) SetNillableProfession(v *string) *PatientCreate {
	if v != nil {
		_c.SetProfession(*v)
	}
	return _c
}

// SetMaritalStatus sets the "marital_status" field.
func (_c *PatientCreate) SetMaritalStatus(v string) *PatientCreate {
	_c.mutation.SetMaritalStatus(v)
	return _c
}

// SetNillableMaritalStatus sets the "marital_status" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMaritalStatus(v *string) *PatientCreate {
	if v != nil {
		_c.SetMaritalStatus(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *PatientCreate) SetType(v patient.Type) *PatientCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableType(v *patient.Type) *PatientCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PatientCreate) SetCreatedBy(v uuid.UUID) *PatientCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedBy(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_c *PatientCreate) SetCreatorID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetCreatorID(id)
	return _c
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatorID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetCreatorID(*id)
	}
	return _c
}

// SetCreator sets the "creator" edge to the User entity.
func (_c *PatientCreate) SetCreator(v *User) *PatientCreate {
	return _c.SetCreatorID(v.ID)
}

// AddAccessGrantIDs adds the "access_grants" edge to the PatientAccessGrant entity by IDs.
func (_c *PatientCreate) AddAccessGrantIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAccessGrantIDs(ids...)
	return _c
}

// AddAccessGrants adds the "access_grants" edges to the PatientAccessGrant entity.
func (_c *PatientCreate) AddAccessGrants(v ...*PatientAccessGrant) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAccessGrantIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the PatientAttribution entity by IDs.
func (_c *PatientCreate) AddAttributionIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAttributionIDs(ids...)
	return _c
}

// AddAttributions adds the "attributions" edges to the PatientAttribution entity.
func (_c *PatientCreate) AddAttributions(v ...*PatientAttribution) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttributionIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.GetType(); !ok {
		v := patient.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Patient.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NationalIDHash(); ok {
		if err := patient.NationalIDHashValidator(v); err != nil {
			return &ValidationError{Name: "national_id_hash", err: fmt.Errorf(`repo: validator failed for field "Patient.national_id_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InsuranceNo(); ok {
		if err := patient.InsuranceNoValidator(v); err != nil {
			return &ValidationError{Name: "insurance_no", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BloodGroup(); ok {
		if err := patient.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_group": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Profession(); ok {
		if err := patient.ProfessionValidator(v); err != nil {
			return &ValidationError{Name: "profession", err: fmt.Errorf(`repo: validator failed for field "Patient.profession": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MaritalStatus(); ok {
		if err := patient.MaritalStatusValidator(v); err != nil {
			return &ValidationError{Name: "marital_status", err: fmt.Errorf(`repo: validator failed for field "Patient.marital_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Patient.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := patient.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Patient.type": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(patient.FieldNationalID, field.TypeString, value)
		_node.NationalID = &value
	}
	if value, ok := _c.mutation.NationalIDHash(); ok {
		_spec.SetField(patient.FieldNationalIDHash, field.TypeString, value)
		_node.NationalIDHash = &value
	}
	if value, ok := _c.mutation.InsuranceNo(); ok {
		_spec.SetField(patient.FieldInsuranceNo, field.TypeString, value)
		_node.InsuranceNo = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
		_node.Sex = &value
	}
	if value, ok := _c.mutation.BloodGroup(); ok {
		_spec.SetField(patient.FieldBloodGroup, field.TypeEnum, value)
		_node.BloodGroup = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
		_node.EmergencyPhone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.Profession(); ok {
		_spec.SetField(patient.FieldProfession, field.TypeString, value)
		_node.Profession = &value
	}
	if value, ok := _c.mutation.MaritalStatus(); ok {
		_spec.SetField(patient.FieldMaritalStatus, field.TypeString, value)
		_node.MaritalStatus = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(patient.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if nodes := _c.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_node.CreatedBy = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccessGrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttributionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsert) SetFullName(v string) *PatientUpsert {
	u.Set(patient.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFullName() *PatientUpsert {
	u.SetExcluded(patient.FieldFullName)
	return u
}

// SetNationalID sets the "national_id" field.
func (u *PatientUpsert) SetNationalID(v string) *PatientUpsert {
	u.Set(patient.FieldNationalID, v)
	return u
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNationalID() *PatientUpsert {
	u.SetExcluded(patient.FieldNationalID)
	return u
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PatientUpsert) ClearNationalID() *PatientUpsert {
	u.SetNull(patient.FieldNationalID)
	return u
}

// SetNationalIDHash sets the "national_id_hash" field.
func (u *PatientUpsert) SetNationalIDHash(v string) *PatientUpsert {
	u.Set(patient.FieldNationalIDHash, v)
	return u
}

// UpdateNationalIDHash sets the "national_id_hash" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNationalIDHash() *PatientUpsert {
	u.SetExcluded(patient.FieldNationalIDHash)
	return u
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (u *PatientUpsert) ClearNationalIDHash() *PatientUpsert {
	u.SetNull(patient.FieldNationalIDHash)
	return u
}

// SetInsuranceNo sets the "insurance_no" field.
func (u *PatientUpsert) SetInsuranceNo(v string) *PatientUpsert {
	u.Set(patient.FieldInsuranceNo, v)
	return u
}

// UpdateInsuranceNo sets the "insurance_no" field to the value that was provided on create.
func (u *PatientUpsert) UpdateInsuranceNo() *PatientUpsert {
	u.SetExcluded(patient.FieldInsuranceNo)
	return u
}

// ClearInsuranceNo clears the value of the "insurance_no" field.
func (u *PatientUpsert) ClearInsuranceNo() *PatientUpsert {
	u.SetNull(patient.FieldInsuranceNo)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsert) SetBirthDate(v time.Time) *PatientUpsert {
	u.Set(patient.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBirthDate() *PatientUpsert {
	u.SetExcluded(patient.FieldBirthDate)
	return u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsert) ClearBirthDate() *PatientUpsert {
	u.SetNull(patient.FieldBirthDate)
	return u
}

// SetSex sets the "sex" field.
func (u *PatientUpsert) SetSex(v patient.Sex) *PatientUpsert {
	u.Set(patient.FieldSex, v)
	return u
}

// UpdateSex sets the "sex" field to the value that was provided on create.
func (u *PatientUpsert) UpdateSex() *PatientUpsert {
	u.SetExcluded(patient.FieldSex)
	return u
}

// ClearSex clears the value of the "sex" field.
func (u *PatientUpsert) ClearSex() *PatientUpsert {
	u.SetNull(patient.FieldSex)
	return u
}

// SetBloodGroup sets the "blood_group" field.
func (u *PatientUpsert) SetBloodGroup(v patient.BloodGroup) *PatientUpsert {
	u.Set(patient.FieldBloodGroup, v)
	return u
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBloodGroup() *PatientUpsert {
	u.SetExcluded(patient.FieldBloodGroup)
	return u
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (u *PatientUpsert) ClearBloodGroup() *PatientUpsert {
	u.SetNull(patient.FieldBloodGroup)
	return u
}

// SetPhone sets the "phone" field.
func (u *PatientUpsert) SetPhone(v string) *PatientUpsert {
	u.Set(patient.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePhone() *PatientUpsert {
	u.SetExcluded(patient.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsert) ClearPhone() *PatientUpsert {
	u.SetNull(patient.FieldPhone)
	return u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsert) SetEmergencyPhone(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyPhone, v)
	return u
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyPhone() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyPhone)
	return u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsert) ClearEmergencyPhone() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *PatientUpsert) SetAddress(v string) *PatientUpsert {
	u.Set(patient.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAddress() *PatientUpsert {
	u.SetExcluded(patient.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsert) ClearAddress() *PatientUpsert {
	u.SetNull(patient.FieldAddress)
	return u
}

// SetProfession sets the "profession" field.
func (u *PatientUpsert) SetProfession(v string) *PatientUpsert {
	u.Set(patient.FieldProfession, v)
	return u
}

// UpdateProfession sets the "profession" field to the value that was provided on create.
func (u *PatientUpsert) UpdateProfession() *PatientUpsert {
	u.SetExcluded(patient.FieldProfession)
	return u
}

// ClearProfession clears the value of the "profession" field.
func (u *PatientUpsert) ClearProfession() *PatientUpsert {
	u.SetNull(patient.FieldProfession)
	return u
}

// SetMaritalStatus sets the "marital_status" field.
func (u *PatientUpsert) SetMaritalStatus(v string) *PatientUpsert {
	u.Set(patient.FieldMaritalStatus, v)
	return u
}

// UpdateMaritalStatus sets the "marital_status" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMaritalStatus() *PatientUpsert {
	u.SetExcluded(patient.FieldMaritalStatus)
	return u
}

// ClearMaritalStatus clears the value of the "marital_status" field.
func (u *PatientUpsert) ClearMaritalStatus() *PatientUpsert {
	u.SetNull(patient.FieldMaritalStatus)
	return u
}

// SetType sets the "type" field.
func (u *PatientUpsert) SetType(v patient.Type) *PatientUpsert {
	u.Set(patient.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PatientUpsert) UpdateType() *PatientUpsert {
	u.SetExcluded(patient.FieldType)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PatientUpsert) SetCreatedBy(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PatientUpsert) UpdateCreatedBy() *PatientUpsert {
	u.SetExcluded(patient.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PatientUpsert) ClearCreatedBy() *PatientUpsert {
	u.SetNull(patient.FieldCreatedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsertOne) SetFullName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFullName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFullName()
	})
}

// SetNationalID sets the "national_id" field.
func (u *PatientUpsertOne) SetNationalID(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNationalID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PatientUpsertOne) ClearNationalID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNationalID()
	})
}

// SetNationalIDHash sets the "national_id_hash" field.
func (u *PatientUpsertOne) SetNationalIDHash(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNationalIDHash(v)
	})
}

// UpdateNationalIDHash sets the "national_id_hash" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNationalIDHash() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNationalIDHash()
	})
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (u *PatientUpsertOne) ClearNationalIDHash() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNationalIDHash()
	})
}

// SetInsuranceNo sets the "insurance_no" field.
func (u *PatientUpsertOne) SetInsuranceNo(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceNo(v)
	})
}

// UpdateInsuranceNo sets the "insurance_no" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateInsuranceNo() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceNo()
	})
}

// ClearInsuranceNo clears the value of the "insurance_no" field.
func (u *PatientUpsertOne) ClearInsuranceNo() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceNo()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertOne) SetBirthDate(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsertOne) ClearBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBirthDate()
	})
}

// SetSex sets the "sex" field.
func (u *PatientUpsertOne) SetSex(v patient.Sex) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetSex(v)
	})
}

// UpdateSex sets the "sex" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateSex() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSex()
	})
}

// ClearSex clears the value of the "sex" field.
func (u *PatientUpsertOne) ClearSex() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearSex()
	})
}

// SetBloodGroup sets the "blood_group" field.
func (u *PatientUpsertOne) SetBloodGroup(v patient.BloodGroup) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodGroup(v)
	})
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBloodGroup() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodGroup()
	})
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (u *PatientUpsertOne) ClearBloodGroup() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodGroup()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertOne) SetPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsertOne) ClearPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPhone()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsertOne) SetEmergencyPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsertOne) ClearEmergencyPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertOne) SetAddress(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertOne) ClearAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetProfession sets the "profession" field.
func (u *PatientUpsertOne) SetProfession(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetProfession(v)
	})
}

// UpdateProfession sets the "profession" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateProfession() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateProfession()
	})
}

// ClearProfession clears the value of the "profession" field.
func (u *PatientUpsertOne) ClearProfession() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearProfession()
	})
}

// SetMaritalStatus sets the "marital_status" field.
func (u *PatientUpsertOne) SetMaritalStatus(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMaritalStatus(v)
	})
}

// UpdateMaritalStatus sets the "marital_status" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMaritalStatus() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMaritalStatus()
	})
}

// ClearMaritalStatus clears the value of the "marital_status" field.
func (u *PatientUpsertOne) ClearMaritalStatus() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMaritalStatus()
	})
}

// SetType sets the "type" field.
func (u *PatientUpsertOne) SetType(v patient.Type) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateType()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PatientUpsertOne) SetCreatedBy(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateCreatedBy() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PatientUpsertOne) ClearCreatedBy() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCreatedBy()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsertBulk) SetFullName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFullName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFullName()
	})
}

// SetNationalID sets the "national_id" field.
func (u *PatientUpsertBulk) SetNationalID(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNationalID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PatientUpsertBulk) ClearNationalID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNationalID()
	})
}

// SetNationalIDHash sets the "national_id_hash" field.
func (u *PatientUpsertBulk) SetNationalIDHash(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNationalIDHash(v)
	})
}

// UpdateNationalIDHash sets the "national_id_hash" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNationalIDHash() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNationalIDHash()
	})
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (u *PatientUpsertBulk) ClearNationalIDHash() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNationalIDHash()
	})
}

// SetInsuranceNo sets the "insurance_no" field.
func (u *PatientUpsertBulk) SetInsuranceNo(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceNo(v)
	})
}

// UpdateInsuranceNo sets the "insurance_no" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateInsuranceNo() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceNo()
	})
}

// ClearInsuranceNo clears the value of the "insurance_no" field.
func (u *PatientUpsertBulk) ClearInsuranceNo() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceNo()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertBulk) SetBirthDate(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsertBulk) ClearBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBirthDate()
	})
}

// SetSex sets the "sex" field.
func (u *PatientUpsertBulk) SetSex(v patient.Sex) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetSex(v)
	})
}

// UpdateSex sets the "sex" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateSex() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSex()
	})
}

// ClearSex clears the value of the "sex" field.
func (u *PatientUpsertBulk) ClearSex() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearSex()
	})
}

// SetBloodGroup sets the "blood_group" field.
func (u *PatientUpsertBulk) SetBloodGroup(v patient.BloodGroup) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodGroup(v)
	})
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBloodGroup() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodGroup()
	})
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (u *PatientUpsertBulk) ClearBloodGroup() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodGroup()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertBulk) SetPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsertBulk) ClearPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPhone()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *PatientUpsertBulk) SetEmergencyPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *PatientUpsertBulk) ClearEmergencyPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertBulk) SetAddress(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertBulk) ClearAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetProfession sets the "profession" field.
func (u *PatientUpsertBulk) SetProfession(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetProfession(v)
	})
}

// UpdateProfession sets the "profession" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateProfession() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateProfession()
	})
}

// ClearProfession clears the value of the "profession" field.
func (u *PatientUpsertBulk) ClearProfession() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearProfession()
	})
}

// SetMaritalStatus sets the "marital_status" field.
func (u *PatientUpsertBulk) SetMaritalStatus(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMaritalStatus(v)
	})
}

// UpdateMaritalStatus sets the "marital_status" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMaritalStatus() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMaritalStatus()
	})
}

// ClearMaritalStatus clears the value of the "marital_status" field.
func (u *PatientUpsertBulk) ClearMaritalStatus() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMaritalStatus()
	})
}

// SetType sets the "type" field.
func (u *PatientUpsertBulk) SetType(v patient.Type) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateType()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PatientUpsertBulk) SetCreatedBy(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateCreatedBy() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PatientUpsertBulk) ClearCreatedBy() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCreatedBy()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
