// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAccessGrant is the model entity for the PatientAccessGrant schema.
type PatientAccessGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id (grantee)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → users.id (admin who granted)
	GrantedBy *uuid.UUID `json:"granted_by,omitempty"`
	// CanView holds the value of the "can_view" field.
	CanView bool `json:"can_view,omitempty"`
	// CanEdit holds the value of the "can_edit" field.
	CanEdit bool `json:"can_edit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientAccessGrantQuery when eager-loading is set.
	Edges        PatientAccessGrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientAccessGrantEdges holds the relations/edges for other nodes in the graph.
type PatientAccessGrantEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientAccessGrantEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientAccessGrantEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientAccessGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientaccessgrant.FieldGrantedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case patientaccessgrant.FieldCanView, patientaccessgrant.FieldCanEdit:
			values[i] = new(sql.NullBool)
		case patientaccessgrant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case patientaccessgrant.FieldID, patientaccessgrant.FieldUserID, patientaccessgrant.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientAccessGrant fields.
func (_m *PatientAccessGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientaccessgrant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientaccessgrant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientaccessgrant.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patientaccessgrant.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case patientaccessgrant.FieldGrantedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by", values[i])
			} else if value.Valid {
				_m.GrantedBy = new(uuid.UUID)
				*_m.GrantedBy = *value.S.(*uuid.UUID)
			}
		case patientaccessgrant.FieldCanView:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_view", values[i])
			} else if value.Valid {
				_m.CanView = value.Bool
			}
		case patientaccessgrant.FieldCanEdit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_edit", values[i])
			} else if value.Valid {
				_m.CanEdit = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientAccessGrant.
// This includes values selected through modifiers, order, etc.
func (_m *PatientAccessGrant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PatientAccessGrant entity.
func (_m *PatientAccessGrant) QueryUser() *UserQuery {
	return NewPatientAccessGrantClient(_m.config).QueryUser(_m)
}

// QueryPatient queries the "patient" edge of the PatientAccessGrant entity.
func (_m *PatientAccessGrant) QueryPatient() *PatientQuery {
	return NewPatientAccessGrantClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this PatientAccessGrant.
// Note that you need to call PatientAccessGrant.Unwrap() before calling this method if this PatientAccessGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientAccessGrant) Update() *PatientAccessGrantUpdateOne {
	return NewPatientAccessGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientAccessGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientAccessGrant) Unwrap() *PatientAccessGrant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientAccessGrant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientAccessGrant) String() string {
	var builder strings.Builder
	builder.WriteString("PatientAccessGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.GrantedBy; v != nil {
		builder.WriteString("granted_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("can_view=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanView))
	builder.WriteString(", ")
	builder.WriteString("can_edit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanEdit))
	builder.WriteByte(')')
	return builder.String()
}

// PatientAccessGrants is a parsable slice of PatientAccessGrant.
type PatientAccessGrants []*PatientAccessGrant
