// Code generated by ent, DO NOT EDIT.

package patientaccessgrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldUserID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldPatientID, v))
}

// GrantedBy applies equality check predicate on the "granted_by" field. It's identical to GrantedByEQ.
func GrantedBy(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldGrantedBy, v))
}

// CanView applies equality check predicate on the "can_view" field. It's identical to CanViewEQ.
func CanView(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCanView, v))
}

// CanEdit applies equality check predicate on the "can_edit" field. It's identical to CanEditEQ.
func CanEdit(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCanEdit, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotIn(FieldUserID, vs...))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotIn(FieldPatientID, vs...))
}

// GrantedByEQ applies the EQ predicate on the "granted_by" field.
func GrantedByEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldGrantedBy, v))
}

// GrantedByNEQ applies the NEQ predicate on the "granted_by" field.
func GrantedByNEQ(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldGrantedBy, v))
}

// GrantedByIn applies the In predicate on the "granted_by" field.
func GrantedByIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIn(FieldGrantedBy, vs...))
}

// GrantedByNotIn applies the NotIn predicate on the "granted_by" field.
func GrantedByNotIn(vs ...uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotIn(FieldGrantedBy, vs...))
}

// GrantedByGT applies the GT predicate on the "granted_by" field.
func GrantedByGT(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGT(FieldGrantedBy, v))
}

// GrantedByGTE applies the GTE predicate on the "granted_by" field.
func GrantedByGTE(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldGTE(FieldGrantedBy, v))
}

// GrantedByLT applies the LT predicate on the "granted_by" field.
func GrantedByLT(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLT(FieldGrantedBy, v))
}

// GrantedByLTE applies the LTE predicate on the "granted_by" field.
func GrantedByLTE(v uuid.UUID) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldLTE(FieldGrantedBy, v))
}

// GrantedByIsNil applies the IsNil predicate on the "granted_by" field.
func GrantedByIsNil() predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldIsNull(FieldGrantedBy))
}

// GrantedByNotNil applies the NotNil predicate on the "granted_by" field.
func GrantedByNotNil() predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNotNull(FieldGrantedBy))
}

// CanViewEQ applies the EQ predicate on the "can_view" field.
func CanViewEQ(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCanView, v))
}

// CanViewNEQ applies the NEQ predicate on the "can_view" field.
func CanViewNEQ(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldCanView, v))
}

// CanEditEQ applies the EQ predicate on the "can_edit" field.
func CanEditEQ(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldEQ(FieldCanEdit, v))
}

// CanEditNEQ applies the NEQ predicate on the "can_edit" field.
func CanEditNEQ(v bool) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.FieldNEQ(FieldCanEdit, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientAccessGrant) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientAccessGrant) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientAccessGrant) predicate.PatientAccessGrant {
	return predicate.PatientAccessGrant(sql.NotPredicates(p))
}
