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
	"github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PermissionProfileCreate is the builder for creating a PermissionProfile entity.
type PermissionProfileCreate struct {
	config
	mutation *PermissionProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PermissionProfileCreate) SetCreatedAt(v time.Time) *PermissionProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillableCreatedAt(v *time.Time) *PermissionProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PermissionProfileCreate) SetUpdatedAt(v time.Time) *PermissionProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillableUpdatedAt(v *time.Time) *PermissionProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PermissionProfileCreate) SetUserID(v uuid.UUID) *PermissionProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPermissionType sets the "permission_type" field.
func (_c *PermissionProfileCreate) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileCreate {
	_c.mutation.SetPermissionType(v)
	return _c
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillablePermissionType(v *permissionprofile.PermissionType) *PermissionProfileCreate {
	if v != nil {
		_c.SetPermissionType(*v)
	}
	return _c
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (_c *PermissionProfileCreate) SetCanViewAllPatients(v bool) *PermissionProfileCreate {
	_c.mutation.SetCanViewAllPatients(v)
	return _c
}

// SetNillableCanViewAllPatients sets the "can_view_all_patients" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillableCanViewAllPatients(v *bool) *PermissionProfileCreate {
	if v != nil {
		_c.SetCanViewAllPatients(*v)
	}
	return _c
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (_c *PermissionProfileCreate) SetCanCreateNewPatients(v bool) *PermissionProfileCreate {
	_c.mutation.SetCanCreateNewPatients(v)
	return _c
}

// SetNillableCanCreateNewPatients sets the "can_create_new_patients" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillableCanCreateNewPatients(v *bool) *PermissionProfileCreate {
	if v != nil {
		_c.SetCanCreateNewPatients(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PermissionProfileCreate) SetID(v uuid.UUID) *PermissionProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PermissionProfileCreate) SetNillableID(v *uuid.UUID) *PermissionProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PermissionProfileCreate) SetUser(v *User) *PermissionProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PermissionProfileMutation object of the builder.
func (_c *PermissionProfileCreate) Mutation() *PermissionProfileMutation {
	return _c.mutation
}

// Save creates the PermissionProfile in the database.
func (_c *PermissionProfileCreate) Save(ctx context.Context) (*PermissionProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PermissionProfileCreate) SaveX(ctx context.Context) *PermissionProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PermissionProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := permissionprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := permissionprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PermissionType(); !ok {
		v := permissionprofile.DefaultPermissionType
		_c.mutation.SetPermissionType(v)
	}
	if _, ok := _c.mutation.CanViewAllPatients(); !ok {
		v := permissionprofile.DefaultCanViewAllPatients
		_c.mutation.SetCanViewAllPatients(v)
	}
	if _, ok := _c.mutation.CanCreateNewPatients(); !ok {
		v := permissionprofile.DefaultCanCreateNewPatients
		_c.mutation.SetCanCreateNewPatients(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := permissionprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PermissionProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PermissionProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PermissionProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PermissionProfile.user_id"`)}
	}
	if _, ok := _c.mutation.PermissionType(); !ok {
		return &ValidationError{Name: "permission_type", err: errors.New(`repo: missing required field "PermissionProfile.permission_type"`)}
	}
	if v, ok := _c.mutation.PermissionType(); ok {
		if err := permissionprofile.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionProfile.permission_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanViewAllPatients(); !ok {
		return &ValidationError{Name: "can_view_all_patients", err: errors.New(`repo: missing required field "PermissionProfile.can_view_all_patients"`)}
	}
	if _, ok := _c.mutation.CanCreateNewPatients(); !ok {
		return &ValidationError{Name: "can_create_new_patients", err: errors.New(`repo: missing required field "PermissionProfile.can_create_new_patients"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "PermissionProfile.user"`)}
	}
	return nil
}

func (_c *PermissionProfileCreate) sqlSave(ctx context.Context) (*PermissionProfile, error) {
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

func (_c *PermissionProfileCreate) createSpec() (*PermissionProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PermissionProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(permissionprofile.Table, sqlgraph.NewFieldSpec(permissionprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(permissionprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(permissionprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PermissionType(); ok {
		_spec.SetField(permissionprofile.FieldPermissionType, field.TypeEnum, value)
		_node.PermissionType = value
	}
	if value, ok := _c.mutation.CanViewAllPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanViewAllPatients, field.TypeBool, value)
		_node.CanViewAllPatients = value
	}
	if value, ok := _c.mutation.CanCreateNewPatients(); ok {
		_spec.SetField(permissionprofile.FieldCanCreateNewPatients, field.TypeBool, value)
		_node.CanCreateNewPatients = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PermissionProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PermissionProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PermissionProfileCreate) OnConflict(opts ...sql.ConflictOption) *PermissionProfileUpsertOne {
	_c.conflict = opts
	return &PermissionProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PermissionProfileCreate) OnConflictColumns(columns ...string) *PermissionProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PermissionProfileUpsertOne{
		create: _c,
	}
}

type (
	// PermissionProfileUpsertOne is the builder for "upsert"-ing
	//  one PermissionProfile node.
	PermissionProfileUpsertOne struct {
		create *PermissionProfileCreate
	}

	// PermissionProfileUpsert is the "OnConflict" setter.
	PermissionProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionProfileUpsert) SetUpdatedAt(v time.Time) *PermissionProfileUpsert {
	u.Set(permissionprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionProfileUpsert) UpdateUpdatedAt() *PermissionProfileUpsert {
	u.SetExcluded(permissionprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PermissionProfileUpsert) SetUserID(v uuid.UUID) *PermissionProfileUpsert {
	u.Set(permissionprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PermissionProfileUpsert) UpdateUserID() *PermissionProfileUpsert {
	u.SetExcluded(permissionprofile.FieldUserID)
	return u
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionProfileUpsert) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileUpsert {
	u.Set(permissionprofile.FieldPermissionType, v)
	return u
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionProfileUpsert) UpdatePermissionType() *PermissionProfileUpsert {
	u.SetExcluded(permissionprofile.FieldPermissionType)
	return u
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (u *PermissionProfileUpsert) SetCanViewAllPatients(v bool) *PermissionProfileUpsert {
	u.Set(permissionprofile.FieldCanViewAllPatients, v)
	return u
}

// UpdateCanViewAllPatients sets the "can_view_all_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsert) UpdateCanViewAllPatients() *PermissionProfileUpsert {
	u.SetExcluded(permissionprofile.FieldCanViewAllPatients)
	return u
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (u *PermissionProfileUpsert) SetCanCreateNewPatients(v bool) *PermissionProfileUpsert {
	u.Set(permissionprofile.FieldCanCreateNewPatients, v)
	return u
}

// UpdateCanCreateNewPatients sets the "can_create_new_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsert) UpdateCanCreateNewPatients() *PermissionProfileUpsert {
	u.SetExcluded(permissionprofile.FieldCanCreateNewPatients)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(permissionprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PermissionProfileUpsertOne) UpdateNewValues() *PermissionProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(permissionprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(permissionprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PermissionProfileUpsertOne) Ignore() *PermissionProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PermissionProfileUpsertOne) DoNothing() *PermissionProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PermissionProfileCreate.OnConflict
// documentation for more info.
func (u *PermissionProfileUpsertOne) Update(set func(*PermissionProfileUpsert)) *PermissionProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PermissionProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionProfileUpsertOne) SetUpdatedAt(v time.Time) *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionProfileUpsertOne) UpdateUpdatedAt() *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PermissionProfileUpsertOne) SetUserID(v uuid.UUID) *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PermissionProfileUpsertOne) UpdateUserID() *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionProfileUpsertOne) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionProfileUpsertOne) UpdatePermissionType() *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdatePermissionType()
	})
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (u *PermissionProfileUpsertOne) SetCanViewAllPatients(v bool) *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetCanViewAllPatients(v)
	})
}

// UpdateCanViewAllPatients sets the "can_view_all_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsertOne) UpdateCanViewAllPatients() *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateCanViewAllPatients()
	})
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (u *PermissionProfileUpsertOne) SetCanCreateNewPatients(v bool) *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetCanCreateNewPatients(v)
	})
}

// UpdateCanCreateNewPatients sets the "can_create_new_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsertOne) UpdateCanCreateNewPatients() *PermissionProfileUpsertOne {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateCanCreateNewPatients()
	})
}

// Exec executes the query.
func (u *PermissionProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PermissionProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PermissionProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PermissionProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PermissionProfileUpsertOne.ID is not supported by MySQL driver. Use PermissionProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PermissionProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PermissionProfileCreateBulk is the builder for creating many PermissionProfile entities in bulk.
type PermissionProfileCreateBulk struct {
	config
	err      error
	builders []*PermissionProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the PermissionProfile entities in the database.
func (_c *PermissionProfileCreateBulk) Save(ctx context.Context) ([]*PermissionProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PermissionProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PermissionProfileMutation)
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
func (_c *PermissionProfileCreateBulk) SaveX(ctx context.Context) []*PermissionProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PermissionProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PermissionProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PermissionProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *PermissionProfileUpsertBulk {
	_c.conflict = opts
	return &PermissionProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PermissionProfileCreateBulk) OnConflictColumns(columns ...string) *PermissionProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PermissionProfileUpsertBulk{
		create: _c,
	}
}

// PermissionProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of PermissionProfile nodes.
type PermissionProfileUpsertBulk struct {
	create *PermissionProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(permissionprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PermissionProfileUpsertBulk) UpdateNewValues() *PermissionProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(permissionprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(permissionprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PermissionProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PermissionProfileUpsertBulk) Ignore() *PermissionProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PermissionProfileUpsertBulk) DoNothing() *PermissionProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PermissionProfileCreateBulk.OnConflict
// documentation for more info.
func (u *PermissionProfileUpsertBulk) Update(set func(*PermissionProfileUpsert)) *PermissionProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PermissionProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionProfileUpsertBulk) SetUpdatedAt(v time.Time) *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionProfileUpsertBulk) UpdateUpdatedAt() *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PermissionProfileUpsertBulk) SetUserID(v uuid.UUID) *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PermissionProfileUpsertBulk) UpdateUserID() *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionProfileUpsertBulk) SetPermissionType(v permissionprofile.PermissionType) *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionProfileUpsertBulk) UpdatePermissionType() *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdatePermissionType()
	})
}

// SetCanViewAllPatients sets the "can_view_all_patients" field.
func (u *PermissionProfileUpsertBulk) SetCanViewAllPatients(v bool) *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetCanViewAllPatients(v)
	})
}

// UpdateCanViewAllPatients sets the "can_view_all_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsertBulk) UpdateCanViewAllPatients() *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateCanViewAllPatients()
	})
}

// SetCanCreateNewPatients sets the "can_create_new_patients" field.
func (u *PermissionProfileUpsertBulk) SetCanCreateNewPatients(v bool) *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.SetCanCreateNewPatients(v)
	})
}

// UpdateCanCreateNewPatients sets the "can_create_new_patients" field to the value that was provided on create.
func (u *PermissionProfileUpsertBulk) UpdateCanCreateNewPatients() *PermissionProfileUpsertBulk {
	return u.Update(func(s *PermissionProfileUpsert) {
		s.UpdateCanCreateNewPatients()
	})
}

// Exec executes the query.
func (u *PermissionProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PermissionProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PermissionProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PermissionProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
