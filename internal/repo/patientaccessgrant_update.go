// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAccessGrantUpdate is the builder for updating PatientAccessGrant entities.
type PatientAccessGrantUpdate struct {
	config
	hooks    []Hook
	mutation *PatientAccessGrantMutation
}

// Where appends a list predicates to the PatientAccessGrantUpdate builder.
func (_u *PatientAccessGrantUpdate) Where(ps ...predicate.PatientAccessGrant) *PatientAccessGrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientAccessGrantUpdate) SetUserID(v uuid.UUID) *PatientAccessGrantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientAccessGrantUpdate) SetNillableUserID(v *uuid.UUID) *PatientAccessGrantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientAccessGrantUpdate) SetPatientID(v uuid.UUID) *PatientAccessGrantUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientAccessGrantUpdate) SetNillablePatientID(v *uuid.UUID) *PatientAccessGrantUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *PatientAccessGrantUpdate) SetGrantedBy(v uuid.UUID) *PatientAccessGrantUpdate {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *PatientAccessGrantUpdate) SetNillableGrantedBy(v *uuid.UUID) *PatientAccessGrantUpdate {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (_u *PatientAccessGrantUpdate) ClearGrantedBy() *PatientAccessGrantUpdate {
	_u.mutation.ClearGrantedBy()
	return _u
}

// SetCanView sets the "can_view" field.
func (_u *PatientAccessGrantUpdate) SetCanView(v bool) *PatientAccessGrantUpdate {
	_u.mutation.SetCanView(v)
	return _u
}

// SetNillableCanView sets the "can_view" field if the given value is not nil.
func (_u *PatientAccessGrantUpdate) SetNillableCanView(v *bool) *PatientAccessGrantUpdate {
	if v != nil {
		_u.SetCanView(*v)
	}
	return _u
}

// SetCanEdit sets the "can_edit" field.
func (_u *PatientAccessGrantUpdate) SetCanEdit(v bool) *PatientAccessGrantUpdate {
	_u.mutation.SetCanEdit(v)
	return _u
}

// SetNillableCanEdit sets the "can_edit" field if the given value is not nil.
func (_u *PatientAccessGrantUpdate) SetNillableCanEdit(v *bool) *PatientAccessGrantUpdate {
	if v != nil {
		_u.SetCanEdit(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientAccessGrantUpdate) SetUser(v *User) *PatientAccessGrantUpdate {
	return _u.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientAccessGrantUpdate) SetPatient(v *Patient) *PatientAccessGrantUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientAccessGrantMutation object of the builder.
func (_u *PatientAccessGrantUpdate) Mutation() *PatientAccessGrantMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientAccessGrantUpdate) ClearUser() *PatientAccessGrantUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientAccessGrantUpdate) ClearPatient() *PatientAccessGrantUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientAccessGrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientAccessGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientAccessGrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientAccessGrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientAccessGrantUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAccessGrant.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAccessGrant.patient"`)
	}
	return nil
}

func (_u *PatientAccessGrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientaccessgrant.Table, patientaccessgrant.Columns, sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(patientaccessgrant.FieldGrantedBy, field.TypeUUID, value)
	}
	if _u.mutation.GrantedByCleared() {
		_spec.ClearField(patientaccessgrant.FieldGrantedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CanView(); ok {
		_spec.SetField(patientaccessgrant.FieldCanView, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanEdit(); ok {
		_spec.SetField(patientaccessgrant.FieldCanEdit, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.UserTable,
			Columns: []string{patientaccessgrant.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.UserTable,
			Columns: []string{patientaccessgrant.UserColumn},
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
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.PatientTable,
			Columns: []string{patientaccessgrant.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.PatientTable,
			Columns: []string{patientaccessgrant.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientaccessgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientAccessGrantUpdateOne is the builder for updating a single PatientAccessGrant entity.
type PatientAccessGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientAccessGrantMutation
}

// SetUserID sets the "user_id" field.
func (_u *PatientAccessGrantUpdateOne) SetUserID(v uuid.UUID) *PatientAccessGrantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientAccessGrantUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientAccessGrantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientAccessGrantUpdateOne) SetPatientID(v uuid.UUID) *PatientAccessGrantUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientAccessGrantUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientAccessGrantUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *PatientAccessGrantUpdateOne) SetGrantedBy(v uuid.UUID) *PatientAccessGrantUpdateOne {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *PatientAccessGrantUpdateOne) SetNillableGrantedBy(v *uuid.UUID) *PatientAccessGrantUpdateOne {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (_u *PatientAccessGrantUpdateOne) ClearGrantedBy() *PatientAccessGrantUpdateOne {
	_u.mutation.ClearGrantedBy()
	return _u
}

// SetCanView sets the "can_view" field.
func (_u *PatientAccessGrantUpdateOne) SetCanView(v bool) *PatientAccessGrantUpdateOne {
	_u.mutation.SetCanView(v)
	return _u
}

// SetNillableCanView sets the "can_view" field if the given value is not nil.
func (_u *PatientAccessGrantUpdateOne) SetNillableCanView(v *bool) *PatientAccessGrantUpdateOne {
	if v != nil {
		_u.SetCanView(*v)
	}
	return _u
}

// SetCanEdit sets the "can_edit" field.
func (_u *PatientAccessGrantUpdateOne) SetCanEdit(v bool) *PatientAccessGrantUpdateOne {
	_u.mutation.SetCanEdit(v)
	return _u
}

// SetNillableCanEdit sets the "can_edit" field if the given value is not nil.
func (_u *PatientAccessGrantUpdateOne) SetNillableCanEdit(v *bool) *PatientAccessGrantUpdateOne {
	if v != nil {
		_u.SetCanEdit(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientAccessGrantUpdateOne) SetUser(v *User) *PatientAccessGrantUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientAccessGrantUpdateOne) SetPatient(v *Patient) *PatientAccessGrantUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientAccessGrantMutation object of the builder.
func (_u *PatientAccessGrantUpdateOne) Mutation() *PatientAccessGrantMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientAccessGrantUpdateOne) ClearUser() *PatientAccessGrantUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientAccessGrantUpdateOne) ClearPatient() *PatientAccessGrantUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PatientAccessGrantUpdate builder.
func (_u *PatientAccessGrantUpdateOne) Where(ps ...predicate.PatientAccessGrant) *PatientAccessGrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientAccessGrantUpdateOne) Select(field string, fields ...string) *PatientAccessGrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientAccessGrant entity.
func (_u *PatientAccessGrantUpdateOne) Save(ctx context.Context) (*PatientAccessGrant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientAccessGrantUpdateOne) SaveX(ctx context.Context) *PatientAccessGrant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientAccessGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientAccessGrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientAccessGrantUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAccessGrant.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAccessGrant.patient"`)
	}
	return nil
}

func (_u *PatientAccessGrantUpdateOne) sqlSave(ctx context.Context) (_node *PatientAccessGrant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientaccessgrant.Table, patientaccessgrant.Columns, sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientAccessGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientaccessgrant.FieldID)
		for _, f := range fields {
			if !patientaccessgrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientaccessgrant.FieldID {
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
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(patientaccessgrant.FieldGrantedBy, field.TypeUUID, value)
	}
	if _u.mutation.GrantedByCleared() {
		_spec.ClearField(patientaccessgrant.FieldGrantedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CanView(); ok {
		_spec.SetField(patientaccessgrant.FieldCanView, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanEdit(); ok {
		_spec.SetField(patientaccessgrant.FieldCanEdit, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.UserTable,
			Columns: []string{patientaccessgrant.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.UserTable,
			Columns: []string{patientaccessgrant.UserColumn},
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
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.PatientTable,
			Columns: []string{patientaccessgrant.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientaccessgrant.PatientTable,
			Columns: []string{patientaccessgrant.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientAccessGrant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientaccessgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
