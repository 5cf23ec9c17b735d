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
	"github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PermissionProfileUpdate is the builder for updating PermissionProfile entities.
type PermissionProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PermissionProfileMutation
}

// Where appends a list predicates to the PermissionProfileUpdate builder.
func (_u *PermissionProfileUpdate) Where(ps ...predicate.PermissionProfile) *PermissionProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionProfileUpdate) SetUpdatedAt(v time.Time) *PermissionProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PermissionProfileUpdate) SetUserID(v uuid.UUID) *PermissionProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PermissionProfileUpdate) SetNillableUserID(v *uuid.UUID) *PermissionProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *PermissionProfileUpdate) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileUpdate {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *PermissionProfileUpdate) SetNillablePermissionType(v *permissionprofile.PermissionType) *PermissionProfileUpdate {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (_u *PermissionProfileUpdate) SetCanViewAllPatients(v bool) *PermissionProfileUpdate {
	_u.mutation.SetCanViewAllPatients(v)
	return _u
}

// SetNillableCanViewAllPatients sets the "can_view_all_patients" field if the given value is not nil.
func (_u *PermissionProfileUpdate) SetNillableCanViewAllPatients(v *bool) *PermissionProfileUpdate {
	if v != nil {
		_u.SetCanViewAllPatients(*v)
	}
	return _u
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (_u *PermissionProfileUpdate) SetCanCreateNewPatients(v bool) *PermissionProfileUpdate {
	_u.mutation.SetCanCreateNewPatients(v)
	return _u
}

// SetNillableCanCreateNewPatients sets the "can_create_new_patients" field if the given value is not nil.
func (_u *PermissionProfileUpdate) SetNillableCanCreateNewPatients(v *bool) *PermissionProfileUpdate {
	if v != nil {
		_u.SetCanCreateNewPatients(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PermissionProfileUpdate) SetUser(v *User) *PermissionProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PermissionProfileMutation object of the builder.
func (_u *PermissionProfileUpdate) Mutation() *PermissionProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PermissionProfileUpdate) ClearUser() *PermissionProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PermissionProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PermissionProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissionprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionProfileUpdate) check() error {
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := permissionprofile.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionProfile.permission_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PermissionProfile.user"`)
	}
	return nil
}

func (_u *PermissionProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionprofile.Table, permissionprofile.Columns, sqlgraph.NewFieldSpec(permissionprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(permissionprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(permissionprofile.FieldPermissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CanViewAllPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanViewAllPatients, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanCreateNewPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanCreateNewPatients, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   permissionprofile.UserTable,
			Columns: []string{permissionprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   permissionprofile.UserTable,
			Columns: []string{permissionprofile.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PermissionProfileUpdateOne is the builder for updating a single PermissionProfile entity.
type PermissionProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PermissionProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionProfileUpdateOne) SetUpdatedAt(v time.Time) *PermissionProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PermissionProfileUpdateOne) SetUserID(v uuid.UUID) *PermissionProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PermissionProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *PermissionProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *PermissionProfileUpdateOne) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileUpdateOne {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *PermissionProfileUpdateOne) SetNillablePermissionType(v *permissionprofile.PermissionType) *PermissionProfileUpdateOne {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (_u *PermissionProfileUpdateOne) SetCanViewAllPatients(v bool) *PermissionProfileUpdateOne {
	_u.mutation.SetCanViewAllPatients(v)
	return _u
}

// SetNillableCanViewAllPatients sets the "can_view_all_patients" field if the given value is not nil.
func (_u *PermissionProfileUpdateOne) SetNillableCanViewAllPatients(v *bool) *PermissionProfileUpdateOne {
	if v != nil {
		_u.SetCanViewAllPatients(*v)
	}
	return _u
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (_u *PermissionProfileUpdateOne) SetCanCreateNewPatients(v bool) *PermissionProfileUpdateOne {
	_u.mutation.SetCanCreateNewPatients(v)
	return _u
}

// SetNillableCanCreateNewPatients sets the "can_create_new_patients" field if the given value is not nil.
func (_u *PermissionProfileUpdateOne) SetNillableCanCreateNewPatients(v *bool) *PermissionProfileUpdateOne {
	if v != nil {
		_u.SetCanCreateNewPatients(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PermissionProfileUpdateOne) SetUser(v *User) *PermissionProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PermissionProfileMutation object of the builder.
func (_u *PermissionProfileUpdateOne) Mutation() *PermissionProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PermissionProfileUpdateOne) ClearUser() *PermissionProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the PermissionProfileUpdate builder.
func (_u *PermissionProfileUpdateOne) Where(ps ...predicate.PermissionProfile) *PermissionProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PermissionProfileUpdateOne) Select(field string, fields ...string) *PermissionProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PermissionProfile entity.
func (_u *PermissionProfileUpdateOne) Save(ctx context.Context) (*PermissionProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionProfileUpdateOne) SaveX(ctx context.Context) *PermissionProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PermissionProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissionprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionProfileUpdateOne) check() error {
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := permissionprofile.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionProfile.permission_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PermissionProfile.user"`)
	}
	return nil
}

func (_u *PermissionProfileUpdateOne) sqlSave(ctx context.Context) (_node *PermissionProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionprofile.Table, permissionprofile.Columns, sqlgraph.NewFieldSpec(permissionprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PermissionProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, permissionprofile.FieldID)
		for _, f := range fields {
			if !permissionprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != permissionprofile.FieldID {
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
		_spec.SetField(permissionprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(permissionprofile.FieldPermissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CanViewAllPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanViewAllPatients, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanCreateNewPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanCreateNewPatients, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   permissionprofile.UserTable,
			Columns: []string{permissionprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   permissionprofile.UserTable,
			Columns: []string{permissionprofile.UserColumn},
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
	_node = &PermissionProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
