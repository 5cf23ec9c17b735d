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
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// NationalID holds the value of the "national_id" field.
	NationalID *string `json:"-"`
	// NationalIDHash holds the value of the "national_id_hash" field.
	NationalIDHash *string `json:"national_id_hash,omitempty"`
	// CNSS insurance number
	InsuranceNo *string `json:"insurance_no,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// Sex holds the value of the "sex" field.
	Sex *patient.Sex `json:"sex,omitempty"`
	// BloodGroup holds the value of the "blood_group" field.
	BloodGroup *patient.BloodGroup `json:"blood_group,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// EmergencyPhone holds the value of the "emergency_phone" field.
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// Profession holds the value of the "profession" field.
	Profession *string `json:"profession,omitempty"`
	// MaritalStatus holds the value of the "marital_status" field.
	MaritalStatus *string `json:"marital_status,omitempty"`
	// Type holds the value of the "type" field.
	Type patient.Type `json:"type,omitempty"`
	// FK → users.id (creating account)
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// Creator holds the value of the creator edge.
	Creator *User `json:"creator,omitempty"`
	// AccessGrants holds the value of the access_grants edge.
	AccessGrants []*PatientAccessGrant `json:"access_grants,omitempty"`
	// Attributions holds the value of the attributions edge.
	Attributions []*PatientAttribution `json:"attributions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) CreatorOrErr() (*User, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// AccessGrantsOrErr returns the AccessGrants value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AccessGrantsOrErr() ([]*PatientAccessGrant, error) {
	if e.loadedTypes[1] {
		return e.AccessGrants, nil
	}
	return nil, &NotLoadedError{edge: "access_grants"}
}

// AttributionsOrErr returns the Attributions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AttributionsOrErr() ([]*PatientAttribution, error) {
	if e.loadedTypes[2] {
		return e.Attributions, nil
	}
	return nil, &NotLoadedError{edge: "attributions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldCreatedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case patient.FieldFullName, patient.FieldNationalID, patient.FieldNationalIDHash, patient.FieldInsuranceNo, patient.FieldSex, patient.FieldBloodGroup, patient.FieldPhone, patient.FieldEmergencyPhone, patient.FieldAddress, patient.FieldProfession, patient.FieldMaritalStatus, patient.FieldType:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDeletedAt, patient.FieldBirthDate:
			values[i] = new(sql.NullTime)
		case patient.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patient.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case patient.FieldNationalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id", values[i])
			} else if value.Valid {
				_m.NationalID = new(string)
				*_m.NationalID = value.String
			}
		case patient.FieldNationalIDHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id_hash", values[i])
			} else if value.Valid {
				_m.NationalIDHash = new(string)
				*_m.NationalIDHash = value.String
			}
		case patient.FieldInsuranceNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_no", values[i])
			} else if value.Valid {
				_m.InsuranceNo = new(string)
				*_m.InsuranceNo = value.String
			}
		case patient.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case patient.FieldSex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sex", values[i])
			} else if value.Valid {
				_m.Sex = new(patient.Sex)
				*_m.Sex = patient.Sex(value.String)
			}
		case patient.FieldBloodGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_group", values[i])
			} else if value.Valid {
				_m.BloodGroup = new(patient.BloodGroup)
				*_m.BloodGroup = patient.BloodGroup(value.String)
			}
		case patient.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case patient.FieldEmergencyPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_phone", values[i])
			} else if value.Valid {
				_m.EmergencyPhone = new(string)
				*_m.EmergencyPhone = value.String
			}
		case patient.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case patient.FieldProfession:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profession", values[i])
			} else if value.Valid {
				_m.Profession = new(string)
				*_m.Profession = value.String
			}
		case patient.FieldMaritalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marital_status", values[i])
			} else if value.Valid {
				_m.MaritalStatus = new(string)
				*_m.MaritalStatus = value.String
			}
		case patient.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = patient.Type(value.String)
			}
		case patient.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(uuid.UUID)
				*_m.CreatedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCreator queries the "creator" edge of the Patient entity.
func (_m *Patient) QueryCreator() *UserQuery {
	return NewPatientClient(_m.config).QueryCreator(_m)
}

// QueryAccessGrants queries the "access_grants" edge of the Patient entity.
func (_m *Patient) QueryAccessGrants() *PatientAccessGrantQuery {
	return NewPatientClient(_m.config).QueryAccessGrants(_m)
}

// QueryAttributions queries the "attributions" edge of the Patient entity.
func (_m *Patient) QueryAttributions() *PatientAttributionQuery {
	return NewPatientClient(_m.config).QueryAttributions(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("national_id=<sensitive>")
	builder.WriteString(", ")
	if v := _m.NationalIDHash; v != nil {
		builder.WriteString("national_id_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InsuranceNo; v != nil {
		builder.WriteString("insurance_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Sex; v != nil {
		builder.WriteString("sex=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BloodGroup; v != nil {
		builder.WriteString("blood_group=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyPhone; v != nil {
		builder.WriteString("emergency_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Profession; v != nil {
		builder.WriteString("profession=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MaritalStatus; v != nil {
		builder.WriteString("marital_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
