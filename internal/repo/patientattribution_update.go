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
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAttributionUpdate is the builder for updating PatientAttribution entities.
type PatientAttributionUpdate struct {
	config
	hooks    []Hook
	mutation *PatientAttributionMutation
}

// Where appends a list predicates to the PatientAttributionUpdate builder.
func (_u *PatientAttributionUpdate) Where(ps ...predicate.PatientAttribution) *PatientAttributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientAttributionUpdate) SetUserID(v uuid.UUID) *PatientAttributionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientAttributionUpdate) SetNillableUserID(v *uuid.UUID) *PatientAttributionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientAttributionUpdate) SetPatientID(v uuid.UUID) *PatientAttributionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientAttributionUpdate) SetNillablePatientID(v *uuid.UUID) *PatientAttributionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientAttributionUpdate) SetUser(v *User) *PatientAttributionUpdate {
	return _u.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientAttributionUpdate) SetPatient(v *Patient) *PatientAttributionUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientAttributionMutation object of the builder.
func (_u *PatientAttributionUpdate) Mutation() *PatientAttributionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientAttributionUpdate) ClearUser() *PatientAttributionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientAttributionUpdate) ClearPatient() *PatientAttributionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientAttributionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientAttributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientAttributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientAttributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientAttributionUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAttribution.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAttribution.patient"`)
	}
	return nil
}

func (_u *PatientAttributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientattribution.Table, patientattribution.Columns, sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientattribution.UserTable,
			Columns: []string{patientattribution.UserColumn},
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
			Table:   patientattribution.UserTable,
			Columns: []string{patientattribution.UserColumn},
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
			Table:   patientattribution.PatientTable,
			Columns: []string{patientattribution.PatientColumn},
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
			Table:   patientattribution.PatientTable,
			Columns: []string{patientattribution.PatientColumn},
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
			err = &NotFoundError{patientattribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientAttributionUpdateOne is the builder for updating a single PatientAttribution entity.
type PatientAttributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientAttributionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PatientAttributionUpdateOne) SetUserID(v uuid.UUID) *PatientAttributionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientAttributionUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientAttributionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientAttributionUpdateOne) SetPatientID(v uuid.UUID) *PatientAttributionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientAttributionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientAttributionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientAttributionUpdateOne) SetUser(v *User) *PatientAttributionUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientAttributionUpdateOne) SetPatient(v *Patient) *PatientAttributionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientAttributionMutation object of the builder.
func (_u *PatientAttributionUpdateOne) Mutation() *PatientAttributionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientAttributionUpdateOne) ClearUser() *PatientAttributionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientAttributionUpdateOne) ClearPatient() *PatientAttributionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PatientAttributionUpdate builder.
func (_u *PatientAttributionUpdateOne) Where(ps ...predicate.PatientAttribution) *PatientAttributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientAttributionUpdateOne) Select(field string, fields ...string) *PatientAttributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientAttribution entity.
func (_u *PatientAttributionUpdateOne) Save(ctx context.Context) (*PatientAttribution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientAttributionUpdateOne) SaveX(ctx context.Context) *PatientAttribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientAttributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientAttributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientAttributionUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAttribution.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientAttribution.patient"`)
	}
	return nil
}

func (_u *PatientAttributionUpdateOne) sqlSave(ctx context.Context) (_node *PatientAttribution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientattribution.Table, patientattribution.Columns, sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientAttribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientattribution.FieldID)
		for _, f := range fields {
			if !patientattribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientattribution.FieldID {
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientattribution.UserTable,
			Columns: []string{patientattribution.UserColumn},
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
			Table:   patientattribution.UserTable,
			Columns: []string{patientattribution.UserColumn},
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
			Table:   patientattribution.PatientTable,
			Columns: []string{patientattribution.PatientColumn},
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
			Table:   patientattribution.PatientTable,
			Columns: []string{patientattribution.PatientColumn},
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
	_node = &PatientAttribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientattribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
