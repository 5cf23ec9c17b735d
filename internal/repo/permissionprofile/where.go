// Code generated by ent, DO NOT EDIT.

package permissionprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldUserID, v))
}

// CanViewAllPatients applies equality check predicate on the "can_view_all_patients" field. It's identical to CanViewAllPatientsEQ.
func CanViewAllPatients(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCanViewAllPatients, v))
}

// CanCreateNewPatients applies equality check predicate on the "can_create_new_patients" field. It's identical to CanCreateNewPatientsEQ.
func CanCreateNewPatients(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCanCreateNewPatients, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// PermissionTypeEQ applies the EQ predicate on the "permission_type" field.
func PermissionTypeEQ(v PermissionType) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldPermissionType, v))
}

// PermissionTypeNEQ applies the NEQ predicate on the "permission_type" field.
func PermissionTypeNEQ(v PermissionType) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldPermissionType, v))
}

// PermissionTypeIn applies the In predicate on the "permission_type" field.
func PermissionTypeIn(vs ...PermissionType) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldIn(FieldPermissionType, vs...))
}

// PermissionTypeNotIn applies the NotIn predicate on the "permission_type" field.
func PermissionTypeNotIn(vs ...PermissionType) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNotIn(FieldPermissionType, vs...))
}

// CanViewAllPatientsEQ applies the EQ predicate on the "can_view_all_patients" field.
func CanViewAllPatientsEQ(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCanViewAllPatients, v))
}

// CanViewAllPatientsNEQ applies the NEQ predicate on the "can_view_all_patients" field.
func CanViewAllPatientsNEQ(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldCanViewAllPatients, v))
}

// CanCreateNewPatientsEQ applies the EQ predicate on the "can_create_new_patients" field.
func CanCreateNewPatientsEQ(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldEQ(FieldCanCreateNewPatients, v))
}

// CanCreateNewPatientsNEQ applies the NEQ predicate on the "can_create_new_patients" field.
func CanCreateNewPatientsNEQ(v bool) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.FieldNEQ(FieldCanCreateNewPatients, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PermissionProfile {
	return predicate.PermissionProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PermissionProfile {
	return predicate.PermissionProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PermissionProfile) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PermissionProfile) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PermissionProfile) predicate.PermissionProfile {
	return predicate.PermissionProfile(sql.NotPredicates(p))
}
