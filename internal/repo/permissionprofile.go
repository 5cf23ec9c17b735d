// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
)

// PermissionProfile is the model entity for the PermissionProfile schema.
type PermissionProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// PermissionType holds the value of the "permission_type" field.
	PermissionType permissionprofile.PermissionType `json:"permission_type,omitempty"`
	// CanViewAllPatients holds the value of the "can_view_all_patients" field.
	CanViewAllPatients bool `json:"can_view_all_patients,omitempty"`
	// CanCreateNewPatients holds the value of the "can_create_new_patients" field.
	CanCreateNewPatients bool `json:"can_create_new_patients,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PermissionProfileQuery when eager-loading is set.
	Edges        PermissionProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PermissionProfileEdges holds the relations/edges for other nodes in the graph.
type PermissionProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PermissionProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PermissionProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case permissionprofile.FieldCanViewAllPatients, permissionprofile.FieldCanCreateNewPatients:
			values[i] = new(sql.NullBool)
		case permissionprofile.FieldPermissionType:
			values[i] = new(sql.NullString)
		case permissionprofile.FieldCreatedAt, permissionprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case permissionprofile.FieldID, permissionprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PermissionProfile fields.
func (_m *PermissionProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case permissionprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case permissionprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case permissionprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case permissionprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case permissionprofile.FieldPermissionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission_type", values[i])
			} else if value.Valid {
				_m.PermissionType = permissionprofile.PermissionType(value.String)
			}
		case permissionprofile.FieldCanViewAllPatients:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_view_all_patients", values[i])
			} else if value.Valid {
				_m.CanViewAllPatients = value.Bool
			}
		case permissionprofile.FieldCanCreateNewPatients:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_create_new_patients", values[i])
			} else if value.Valid {
				_m.CanCreateNewPatients = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PermissionProfile.
// This includes values selected through modifiers, order, etc.
func (_m *PermissionProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PermissionProfile entity.
func (_m *PermissionProfile) QueryUser() *UserQuery {
	return NewPermissionProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this PermissionProfile.
// Note that you need to call PermissionProfile.Unwrap() before calling this method if this PermissionProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PermissionProfile) Update() *PermissionProfileUpdateOne {
	return NewPermissionProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PermissionProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PermissionProfile) Unwrap() *PermissionProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PermissionProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PermissionProfile) String() string {
	var builder strings.Builder
	builder.WriteString("PermissionProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("permission_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PermissionType))
	builder.WriteString(", ")
	builder.WriteString("can_view_all_patients=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanViewAllPatients))
	builder.WriteString(", ")
	builder.WriteString("can_create_new_patients=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanCreateNewPatients))
	builder.WriteByte(')')
	return builder.String()
}

// PermissionProfiles is a parsable slice of PermissionProfile.
type PermissionProfiles []*PermissionProfile
