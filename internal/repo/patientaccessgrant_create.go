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
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAccessGrantCreate is the builder for creating a PatientAccessGrant entity.
type PatientAccessGrantCreate struct {
	config
	mutation *PatientAccessGrantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientAccessGrantCreate) SetCreatedAt(v time.Time) *PatientAccessGrantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientAccessGrantCreate) SetNillableCreatedAt(v *time.Time) *PatientAccessGrantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientAccessGrantCreate) SetUserID(v uuid.UUID) *PatientAccessGrantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientAccessGrantCreate) SetPatientID(v uuid.UUID) *PatientAccessGrantCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetGrantedBy sets the "granted_by" field.
func (_c *PatientAccessGrantCreate) SetGrantedBy(v uuid.UUID) *PatientAccessGrantCreate {
	_c.mutation.SetGrantedBy(v)
	return _c
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_c *PatientAccessGrantCreate) SetNillableGrantedBy(v *uuid.UUID) *PatientAccessGrantCreate {
	if v != nil {
		_c.SetGrantedBy(*v)
	}
	return _c
}

// SetCanView sets the "can_view" field.
func (_c *PatientAccessGrantCreate) SetCanView(v bool) *PatientAccessGrantCreate {
	_c.mutation.SetCanView(v)
	return _c
}

// SetNillableCanView sets the "can_view" field if the given value is not nil.
func (_c *PatientAccessGrantCreate) SetNillableCanView(v *bool) *PatientAccessGrantCreate {
	if v != nil {
		_c.SetCanView(*v)
	}
	return _c
}

// SetCanEdit sets the "can_edit" field.
func (_c *PatientAccessGrantCreate) SetCanEdit(v bool) *PatientAccessGrantCreate {
	_c.mutation.SetCanEdit(v)
	return _c
}

// SetNillableCanEdit sets the "can_edit" field if the given value is not nil.
func (_c *PatientAccessGrantCreate) SetNillableCanEdit(v *bool) *PatientAccessGrantCreate {
	if v != nil {
		_c.SetCanEdit(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientAccessGrantCreate) SetID(v uuid.UUID) *PatientAccessGrantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientAccessGrantCreate) SetNillableID(v *uuid.UUID) *PatientAccessGrantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientAccessGrantCreate) SetUser(v *User) *PatientAccessGrantCreate {
	return _c.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientAccessGrantCreate) SetPatient(v *Patient) *PatientAccessGrantCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PatientAccessGrantMutation object of the builder.
func (_c *PatientAccessGrantCreate) Mutation() *PatientAccessGrantMutation {
	return _c.mutation
}

// Save creates the PatientAccessGrant in the database.
func (_c *PatientAccessGrantCreate) Save(ctx context.Context) (*PatientAccessGrant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientAccessGrantCreate) SaveX(ctx context.Context) *PatientAccessGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientAccessGrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientAccessGrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientAccessGrantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientaccessgrant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.CanView(); !ok {
		v := patientaccessgrant.DefaultCanView
		_c.mutation.SetCanView(v)
	}
	if _, ok := _c.mutation.CanEdit(); !ok {
		v := patientaccessgrant.DefaultCanEdit
		_c.mutation.SetCanEdit(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientaccessgrant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientAccessGrantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientAccessGrant.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PatientAccessGrant.user_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientAccessGrant.patient_id"`)}
	}
	if _, ok := _c.mutation.CanView(); !ok {
		return &ValidationError{Name: "can_view", err: errors.New(`repo: missing required field "PatientAccessGrant.can_view"`)}
	}
	if _, ok := _c.mutation.CanEdit(); !ok {
		return &ValidationError{Name: "can_edit", err: errors.New(`repo: missing required field "PatientAccessGrant.can_edit"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "PatientAccessGrant.user"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientAccessGrant.patient"`)}
	}
	return nil
}

func (_c *PatientAccessGrantCreate) sqlSave(ctx context.Context) (*PatientAccessGrant, error) {
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

func (_c *PatientAccessGrantCreate) createSpec() (*PatientAccessGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientAccessGrant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientaccessgrant.Table, sqlgraph.NewFieldSpec(patientaccessgrant.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientaccessgrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.GrantedBy(); ok {
		_spec.SetField(patientaccessgrant.FieldGrantedBy, field.TypeUUID, value)
		_node.GrantedBy = &value
	}
	if value, ok := _c.mutation.CanView(); ok {
		_spec.SetField(patientaccessgrant.FieldCanView, field.TypeBool, value)
		_node.CanView = value
	}
	if value, ok := _c.mutation.CanEdit(); ok {
		_spec.SetField(patientaccessgrant.FieldCanEdit, field.TypeBool, value)
		_node.CanEdit = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientAccessGrant.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientAccessGrantUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientAccessGrantCreate) OnConflict(opts ...sql.ConflictOption) *PatientAccessGrantUpsertOne {
	_c.conflict = opts
	return &PatientAccessGrantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientAccessGrantCreate) OnConflictColumns(columns ...string) *PatientAccessGrantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientAccessGrantUpsertOne{
		create: _c,
	}
}

type (
	// PatientAccessGrantUpsertOne is the builder for "upsert"-ing
	//  one PatientAccessGrant node.
	PatientAccessGrantUpsertOne struct {
		create *PatientAccessGrantCreate
	}

	// PatientAccessGrantUpsert is the "OnConflict" setter.
	PatientAccessGrantUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PatientAccessGrantUpsert) SetUserID(v uuid.UUID) *PatientAccessGrantUpsert {
	u.Set(patientaccessgrant.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsert) UpdateUserID() *PatientAccessGrantUpsert {
	u.SetExcluded(patientaccessgrant.FieldUserID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAccessGrantUpsert) SetPatientID(v uuid.UUID) *PatientAccessGrantUpsert {
	u.Set(patientaccessgrant.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsert) UpdatePatientID() *PatientAccessGrantUpsert {
	u.SetExcluded(patientaccessgrant.FieldPatientID)
	return u
}

// SetGrantedBy sets the "granted_by" field.
func (u *PatientAccessGrantUpsert) SetGrantedBy(v uuid.UUID) *PatientAccessGrantUpsert {
	u.Set(patientaccessgrant.FieldGrantedBy, v)
	return u
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *PatientAccessGrantUpsert) UpdateGrantedBy() *PatientAccessGrantUpsert {
	u.SetExcluded(patientaccessgrant.FieldGrantedBy)
	return u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *PatientAccessGrantUpsert) ClearGrantedBy() *PatientAccessGrantUpsert {
	u.SetNull(patientaccessgrant.FieldGrantedBy)
	return u
}

// SetCanView sets the "can_view" field.
func (u *PatientAccessGrantUpsert) SetCanView(v bool) *PatientAccessGrantUpsert {
	u.Set(patientaccessgrant.FieldCanView, v)
	return u
}

// UpdateCanView sets the "can_view" field to the value that was provided on create.
func (u *PatientAccessGrantUpsert) UpdateCanView() *PatientAccessGrantUpsert {
	u.SetExcluded(patientaccessgrant.FieldCanView)
	return u
}

// SetCanEdit sets the "can_edit" field.
func (u *PatientAccessGrantUpsert) SetCanEdit(v bool) *PatientAccessGrantUpsert {
	u.Set(patientaccessgrant.FieldCanEdit, v)
	return u
}

// UpdateCanEdit sets the "can_edit" field to the value that was provided on create.
func (u *PatientAccessGrantUpsert) UpdateCanEdit() *PatientAccessGrantUpsert {
	u.SetExcluded(patientaccessgrant.FieldCanEdit)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientaccessgrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientAccessGrantUpsertOne) UpdateNewValues() *PatientAccessGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientaccessgrant.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientaccessgrant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientAccessGrantUpsertOne) Ignore() *PatientAccessGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientAccessGrantUpsertOne) DoNothing() *PatientAccessGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientAccessGrantCreate.OnConflict
// documentation for more info.
func (u *PatientAccessGrantUpsertOne) Update(set func(*PatientAccessGrantUpsert)) *PatientAccessGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientAccessGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientAccessGrantUpsertOne) SetUserID(v uuid.UUID) *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertOne) UpdateUserID() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAccessGrantUpsertOne) SetPatientID(v uuid.UUID) *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertOne) UpdatePatientID() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdatePatientID()
	})
}

// SetGrantedBy sets the "granted_by" field.
func (u *PatientAccessGrantUpsertOne) SetGrantedBy(v uuid.UUID) *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetGrantedBy(v)
	})
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertOne) UpdateGrantedBy() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateGrantedBy()
	})
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *PatientAccessGrantUpsertOne) ClearGrantedBy() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.ClearGrantedBy()
	})
}

// SetCanView sets the "can_view" field.
func (u *PatientAccessGrantUpsertOne) SetCanView(v bool) *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetCanView(v)
	})
}

// UpdateCanView sets the "can_view" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertOne) UpdateCanView() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateCanView()
	})
}

// SetCanEdit sets the "can_edit" field.
func (u *PatientAccessGrantUpsertOne) SetCanEdit(v bool) *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetCanEdit(v)
	})
}

// UpdateCanEdit sets the "can_edit" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertOne) UpdateCanEdit() *PatientAccessGrantUpsertOne {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateCanEdit()
	})
}

// Exec executes the query.
func (u *PatientAccessGrantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientAccessGrantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientAccessGrantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientAccessGrantUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientAccessGrantUpsertOne.ID is not supported by MySQL driver. Use PatientAccessGrantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientAccessGrantUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientAccessGrantCreateBulk is the builder for creating many PatientAccessGrant entities in bulk.
type PatientAccessGrantCreateBulk struct {
	config
	err      error
	builders []*PatientAccessGrantCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientAccessGrant entities in the database.
func (_c *PatientAccessGrantCreateBulk) Save(ctx context.Context) ([]*PatientAccessGrant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientAccessGrant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientAccessGrantMutation)
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
func (_c *PatientAccessGrantCreateBulk) SaveX(ctx context.Context) []*PatientAccessGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientAccessGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientAccessGrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientAccessGrant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientAccessGrantUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientAccessGrantCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientAccessGrantUpsertBulk {
	_c.conflict = opts
	return &PatientAccessGrantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientAccessGrantCreateBulk) OnConflictColumns(columns ...string) *PatientAccessGrantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientAccessGrantUpsertBulk{
		create: _c,
	}
}

// PatientAccessGrantUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientAccessGrant nodes.
type PatientAccessGrantUpsertBulk struct {
	create *PatientAccessGrantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientaccessgrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientAccessGrantUpsertBulk) UpdateNewValues() *PatientAccessGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientaccessgrant.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientaccessgrant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientAccessGrant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientAccessGrantUpsertBulk) Ignore() *PatientAccessGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientAccessGrantUpsertBulk) DoNothing() *PatientAccessGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientAccessGrantCreateBulk.OnConflict
// documentation for more info.
func (u *PatientAccessGrantUpsertBulk) Update(set func(*PatientAccessGrantUpsert)) *PatientAccessGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientAccessGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientAccessGrantUpsertBulk) SetUserID(v uuid.UUID) *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertBulk) UpdateUserID() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAccessGrantUpsertBulk) SetPatientID(v uuid.UUID) *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertBulk) UpdatePatientID() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdatePatientID()
	})
}

// SetGrantedBy sets the "granted_by" field.
func (u *PatientAccessGrantUpsertBulk) SetGrantedBy(v uuid.UUID) *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetGrantedBy(v)
	})
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertBulk) UpdateGrantedBy() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateGrantedBy()
	})
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *PatientAccessGrantUpsertBulk) ClearGrantedBy() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.ClearGrantedBy()
	})
}

// SetCanView sets the "can_view" field.
func (u *PatientAccessGrantUpsertBulk) SetCanView(v bool) *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetCanView(v)
	})
}

// UpdateCanView sets the "can_view" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertBulk) UpdateCanView() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateCanView()
	})
}

// SetCanEdit sets the "can_edit" field.
func (u *PatientAccessGrantUpsertBulk) SetCanEdit(v bool) *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.SetCanEdit(v)
	})
}

// UpdateCanEdit sets the "can_edit" field to the value that was provided on create.
func (u *PatientAccessGrantUpsertBulk) UpdateCanEdit() *PatientAccessGrantUpsertBulk {
	return u.Update(func(s *PatientAccessGrantUpsert) {
		s.UpdateCanEdit()
	})
}

// Exec executes the query.
func (u *PatientAccessGrantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientAccessGrantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientAccessGrantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientAccessGrantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
