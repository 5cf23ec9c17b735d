// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldNationalID holds the string denoting the national_id field in the database.
	FieldNationalID = "national_id"
	// FieldNationalIDHash holds the string denoting the national_id_hash field in the database.
	FieldNationalIDHash = "national_id_hash"
	// FieldInsuranceNo holds the string denoting the insurance_no field in the database.
	FieldInsuranceNo = "insurance_no"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldSex holds the string denoting the sex field in the database.
	FieldSex = "sex"
	// FieldBloodGroup holds the string denoting the blood_group field in the database.
	FieldBloodGroup = "blood_group"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmergencyPhone holds the string denoting the emergency_phone field in the database.
	FieldEmergencyPhone = "emergency_phone"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldProfession holds the string denoting the profession field in the database.
	FieldProfession = "profession"
	// FieldMaritalStatus holds the string denoting the marital_status field in the database.
	FieldMaritalStatus = "marital_status"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeCreator holds the string denoting the creator edge name in mutations.
	EdgeCreator = "creator"
	// EdgeAccessGrants holds the string denoting the access_grants edge name in mutations.
	EdgeAccessGrants = "access_grants"
	// EdgeAttributions holds the string denoting the attributions edge name in mutations.
	EdgeAttributions = "attributions"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// CreatorTable is the table that holds the creator relation/edge.
	CreatorTable = "patients"
	// CreatorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CreatorInverseTable = "users"
	// CreatorColumn is the table column denoting the creator relation/edge.
	CreatorColumn = "created_by"
	// AccessGrantsTable is the table that holds the access_grants relation/edge.
	AccessGrantsTable = "patient_access_grants"
	// AccessGrantsInverseTable is the table name for the PatientAccessGrant entity.
	// It exists in this package in order to avoid circular dependency with the "patientaccessgrant" package.
	AccessGrantsInverseTable = "patient_access_grants"
	// AccessGrantsColumn is the table column denoting the access_grants relation/edge.
	AccessGrantsColumn = "patient_id"
	// AttributionsTable is the table that holds the attributions relation/edge.
	AttributionsTable = "patient_attributions"
	// AttributionsInverseTable is the table name for the PatientAttribution entity.
	// It exists in this package in order to avoid circular dependency with the "patientattribution" package.
	AttributionsInverseTable = "patient_attributions"
	// AttributionsColumn is the table column denoting the attributions relation/edge.
	AttributionsColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldFullName,
	FieldNationalID,
	FieldNationalIDHash,
	FieldInsuranceNo,
	FieldBirthDate,
	FieldSex,
	FieldBloodGroup,
	FieldPhone,
	FieldEmergencyPhone,
	FieldAddress,
	FieldProfession,
	FieldMaritalStatus,
	FieldType,
	FieldCreatedBy,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// NationalIDHashValidator is a validator for the "national_id_hash" field. It is called by the builders before save.
	NationalIDHashValidator func(string) error
	// InsuranceNoValidator is a validator for the "insurance_no" field. It is called by the builders before save.
	InsuranceNoValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	EmergencyPhoneValidator func(string) error
	// ProfessionValidator is a validator for the "profession" field. It is called by the builders before save.
	ProfessionValidator func(string) error
	// MaritalStatusValidator is a validator for the "marital_status" field. It is called by the builders before save.
	MaritalStatusValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Sex defines the type for the "sex" enum field.
type Sex string

// Sex values.
const (
	SexM Sex = "M"
	SexF Sex = "F"
)

func (s Sex) String() string {
	return string(s)
}

// SexValidator is a validator for the "sex" field enum values. It is called by the builders before save.
func SexValidator(s Sex) error {
	switch s {
	case SexM, SexF:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for sex field: %q", s)
	}
}

// BloodGroup defines the type for the "blood_group" enum field.
type BloodGroup string

// BloodGroup values.
const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

func (bg BloodGroup) String() string {
	return string(bg)
}

// BloodGroupValidator is a validator for the "blood_group" field enum values. It is called by the builders before save.
func BloodGroupValidator(bg BloodGroup) error {
	switch bg {
	case BloodGroupAPos, BloodGroupANeg, BloodGroupBPos, BloodGroupBNeg, BloodGroupABPos, BloodGroupABNeg, BloodGroupOPos, BloodGroupONeg:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for blood_group field: %q", bg)
	}
}

// Type defines the type for the "type" enum field.
type Type string

// TypePermanent is the default value of the Type enum.
const DefaultType = TypePermanent

// Type values.
const (
	TypePermanent    Type = "permanent"
	TypeVacationer   Type = "vacationer"
	TypeTransferred  Type = "transferred"
	TypeDeceased     Type = "deceased"
	TypeTransplanted Type = "transplanted"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePermanent, TypeVacationer, TypeTransferred, TypeDeceased, TypeTransplanted:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Patient queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByNationalID orders the results by the national_id field.
func ByNationalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationalID, opts...).ToFunc()
}

// ByNationalIDHash orders the results by the national_id_hash field.
func ByNationalIDHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationalIDHash, opts...).ToFunc()
}

// ByInsuranceNo orders the results by the insurance_no field.
func ByInsuranceNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceNo, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// BySex orders the results by the sex field.
func BySex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSex, opts...).ToFunc()
}

// ByBloodGroup orders the results by the blood_group field.
func ByBloodGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodGroup, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmergencyPhone orders the results by the emergency_phone field.
func ByEmergencyPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyPhone, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByProfession orders the results by the profession field.
func ByProfession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfession, opts...).ToFunc()
}

// ByMaritalStatus orders the results by the marital_status field.
func ByMaritalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaritalStatus, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatorField orders the results by creator field.
func ByCreatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatorStep(), sql.OrderByField(field, opts...))
	}
}

// ByAccessGrantsCount orders the results by access_grants count.
func ByAccessGrantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAccessGrantsStep(), opts...)
	}
}

// ByAccessGrants orders the results by access_grants terms.
func ByAccessGrants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccessGrantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttributionsCount orders the results by attributions count.
func ByAttributionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttributionsStep(), opts...)
	}
}

// ByAttributions orders the results by attributions terms.
func ByAttributions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttributionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCreatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
	)
}
func newAccessGrantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccessGrantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AccessGrantsTable, AccessGrantsColumn),
	)
}
func newAttributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
	)
}
