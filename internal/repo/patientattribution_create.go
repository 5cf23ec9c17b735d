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
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAttributionCreate is the builder for creating a PatientAttribution entity.
type PatientAttributionCreate struct {
	config
	mutation *PatientAttributionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientAttributionCreate) SetCreatedAt(v time.Time) *PatientAttributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientAttributionCreate) SetNillableCreatedAt(v *time.Time) *PatientAttributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientAttributionCreate) SetUserID(v uuid.UUID) *PatientAttributionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PatientAttributionCreate) SetSessionID(v string) *PatientAttributionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientAttributionCreate) SetPatientID(v uuid.UUID) *PatientAttributionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PatientAttributionCreate) SetID(v uuid.UUID) *PatientAttributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientAttributionCreate) SetNillableID(v *uuid.UUID) *PatientAttributionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientAttributionCreate) SetUser(v *User) *PatientAttributionCreate {
	return _c.SetUserID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientAttributionCreate) SetPatient(v *Patient) *PatientAttributionCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PatientAttributionMutation object of the builder.
func (_c *PatientAttributionCreate) Mutation() *PatientAttributionMutation {
	return _c.mutation
}

// Save creates the PatientAttribution in the database.
func (_c *PatientAttributionCreate) Save(ctx context.Context) (*PatientAttribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientAttributionCreate) SaveX(ctx context.Context) *PatientAttribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientAttributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientAttributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientAttributionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientattribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientattribution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientAttributionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientAttribution.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PatientAttribution.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "PatientAttribution.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := patientattribution.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "PatientAttribution.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientAttribution.patient_id"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "PatientAttribution.user"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientAttribution.patient"`)}
	}
	return nil
}

func (_c *PatientAttributionCreate) sqlSave(ctx context.Context) (*PatientAttribution, error) {
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

func (_c *PatientAttributionCreate) createSpec() (*PatientAttribution, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientAttribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientattribution.Table, sqlgraph.NewFieldSpec(patientattribution.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientattribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(patientattribution.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientAttribution.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientAttributionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientAttributionCreate) OnConflict(opts ...sql.ConflictOption) *PatientAttributionUpsertOne {
	_c.conflict = opts
	return &PatientAttributionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientAttributionCreate) OnConflictColumns(columns ...string) *PatientAttributionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientAttributionUpsertOne{
		create: _c,
	}
}

type (
	// PatientAttributionUpsertOne is the builder for "upsert"-ing
	//  one PatientAttribution node.
	PatientAttributionUpsertOne struct {
		create *PatientAttributionCreate
	}

	// PatientAttributionUpsert is the "OnConflict" setter.
	PatientAttributionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PatientAttributionUpsert) SetUserID(v uuid.UUID) *PatientAttributionUpsert {
	u.Set(patientattribution.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAttributionUpsert) UpdateUserID() *PatientAttributionUpsert {
	u.SetExcluded(patientattribution.FieldUserID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAttributionUpsert) SetPatientID(v uuid.UUID) *PatientAttributionUpsert {
	u.Set(patientattribution.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAttributionUpsert) UpdatePatientID() *PatientAttributionUpsert {
	u.SetExcluded(patientattribution.FieldPatientID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientattribution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientAttributionUpsertOne) UpdateNewValues() *PatientAttributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientattribution.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientattribution.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(patientattribution.FieldSessionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientAttributionUpsertOne) Ignore() *PatientAttributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientAttributionUpsertOne) DoNothing() *PatientAttributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientAttributionCreate.OnConflict
// documentation for more info.
func (u *PatientAttributionUpsertOne) Update(set func(*PatientAttributionUpsert)) *PatientAttributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientAttributionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientAttributionUpsertOne) SetUserID(v uuid.UUID) *PatientAttributionUpsertOne {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAttributionUpsertOne) UpdateUserID() *PatientAttributionUpsertOne {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAttributionUpsertOne) SetPatientID(v uuid.UUID) *PatientAttributionUpsertOne {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAttributionUpsertOne) UpdatePatientID() *PatientAttributionUpsertOne {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.UpdatePatientID()
	})
}

// Exec executes the query.
func (u *PatientAttributionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientAttributionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientAttributionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientAttributionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientAttributionUpsertOne.ID is not supported by MySQL driver. Use PatientAttributionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientAttributionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientAttributionCreateBulk is the builder for creating many PatientAttribution entities in bulk.
type PatientAttributionCreateBulk struct {
	config
	err      error
	builders []*PatientAttributionCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientAttribution entities in the database.
func (_c *PatientAttributionCreateBulk) Save(ctx context.Context) ([]*PatientAttribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientAttribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientAttributionMutation)
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
func (_c *PatientAttributionCreateBulk) SaveX(ctx context.Context) []*PatientAttribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientAttributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientAttributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientAttribution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientAttributionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientAttributionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientAttributionUpsertBulk {
	_c.conflict = opts
	return &PatientAttributionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientAttributionCreateBulk) OnConflictColumns(columns ...string) *PatientAttributionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientAttributionUpsertBulk{
		create: _c,
	}
}

// PatientAttributionUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientAttribution nodes.
type PatientAttributionUpsertBulk struct {
	create *PatientAttributionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientattribution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientAttributionUpsertBulk) UpdateNewValues() *PatientAttributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientattribution.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientattribution.FieldCreatedAt)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(patientattribution.FieldSessionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientAttribution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientAttributionUpsertBulk) Ignore() *PatientAttributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientAttributionUpsertBulk) DoNothing() *PatientAttributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientAttributionCreateBulk.OnConflict
// documentation for more info.
func (u *PatientAttributionUpsertBulk) Update(set func(*PatientAttributionUpsert)) *PatientAttributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientAttributionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientAttributionUpsertBulk) SetUserID(v uuid.UUID) *PatientAttributionUpsertBulk {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientAttributionUpsertBulk) UpdateUserID() *PatientAttributionUpsertBulk {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientAttributionUpsertBulk) SetPatientID(v uuid.UUID) *PatientAttributionUpsertBulk {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientAttributionUpsertBulk) UpdatePatientID() *PatientAttributionUpsertBulk {
	return u.Update(func(s *PatientAttributionUpsert) {
		s.UpdatePatientID()
	})
}

// Exec executes the query.
func (u *PatientAttributionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientAttributionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientAttributionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientAttributionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
