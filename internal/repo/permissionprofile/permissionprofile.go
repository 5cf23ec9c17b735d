// Code generated by ent, DO NOT EDIT.

package permissionprofile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the permissionprofile type in the database.
	Label = "permission_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPermissionType holds the string denoting the permission_type field in the database.
	FieldPermissionType = "permission_type"
	// FieldCanViewAllPatients holds the string denoting the can_view_all_patients field in the database.
	FieldCanViewAllPatients = "can_view_all_patients"
	// FieldCanCreateNewPatients holds the string denoting the can_create_new_patients field in the database.
	FieldCanCreateNewPatients = "can_create_new_patients"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the permissionprofile in the database.
	Table = "permission_profiles"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "permission_profiles"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for permissionprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldPermissionType,
	FieldCanViewAllPatients,
	FieldCanCreateNewPatients,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCanViewAllPatients holds the default value on creation for the "can_view_all_patients" field.
	DefaultCanViewAllPatients bool
	// DefaultCanCreateNewPatients holds the default value on creation for the "can_create_new_patients" field.
	DefaultCanCreateNewPatients bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// PermissionType defines the type for the "permission_type" enum field.
type PermissionType string

// PermissionTypeViewer is the default value of the PermissionType enum.
const DefaultPermissionType = PermissionTypeViewer

// PermissionType values.
const (
	PermissionTypeViewer  PermissionType = "viewer"
	PermissionTypeCreator PermissionType = "creator"
)

func (pt PermissionType) String() string {
	return string(pt)
}

// PermissionTypeValidator is a validator for the "permission_type" field enum values. It is called by the builders before save.
func PermissionTypeValidator(pt PermissionType) error {
	switch pt {
	case PermissionTypeViewer, PermissionTypeCreator:
		return nil
	default:
		return fmt.Errorf("permissionprofile: invalid enum value for permission_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the PermissionProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPermissionType orders the results by the permission_type field.
func ByPermissionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermissionType, opts...).ToFunc()
}

// ByCanViewAllPatients orders the results by the can_view_all_patients field.
func ByCanViewAllPatients(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanViewAllPatients, opts...).ToFunc()
}

// ByCanCreateNewPatients orders the results by the can_create_new_patients field.
func ByCanCreateNewPatients(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanCreateNewPatients, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
