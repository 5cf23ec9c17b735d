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
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PatientAttribution is the model entity for the PatientAttribution schema.
type PatientAttribution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id (creator)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Session id active when the patient was created
	SessionID string `json:"session_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientAttributionQuery when eager-loading is set.
	Edges        PatientAttributionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientAttributionEdges holds the relations/edges for other nodes in the graph.
type PatientAttributionEdges struct {
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
func (e PatientAttributionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientAttributionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientAttribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientattribution.FieldSessionID:
			values[i] = new(sql.NullString)
		case patientattribution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case patientattribution.FieldID, patientattribution.FieldUserID, patientattribution.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientAttribution fields.
func (_m *PatientAttribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientattribution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientattribution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientattribution.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patientattribution.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case patientattribution.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientAttribution.
// This includes values selected through modifiers, order, etc.
func (_m *PatientAttribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PatientAttribution entity.
func (_m *PatientAttribution) QueryUser() *UserQuery {
	return NewPatientAttributionClient(_m.config).QueryUser(_m)
}

// QueryPatient queries the "patient" edge of the PatientAttribution entity.
func (_m *PatientAttribution) QueryPatient() *PatientQuery {
	return NewPatientAttributionClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this PatientAttribution.
// Note that you need to call PatientAttribution.Unwrap() before calling this method if this PatientAttribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientAttribution) Update() *PatientAttributionUpdateOne {
	return NewPatientAttributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientAttribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientAttribution) Unwrap() *PatientAttribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientAttribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientAttribution) String() string {
	var builder strings.Builder
	builder.WriteString("PatientAttribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteByte(')')
	return builder.String()
}

// PatientAttributions is a parsable slice of PatientAttribution.
type PatientAttributions []*PatientAttribution
