// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFullName, v))
}

// NationalID applies equality check predicate on the "national_id" field. It's identical to NationalIDEQ.
func NationalID(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDHash applies equality check predicate on the "national_id_hash" field. It's identical to NationalIDHashEQ.
func NationalIDHash(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNationalIDHash, v))
}

// InsuranceNo applies equality check predicate on the "insurance_no" field. It's identical to InsuranceNoEQ.
func InsuranceNo(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNo, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// EmergencyPhone applies equality check predicate on the "emergency_phone" field. It's identical to EmergencyPhoneEQ.
func EmergencyPhone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAddress, v))
}

// Profession applies equality check predicate on the "profession" field. It's identical to ProfessionEQ.
func Profession(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldProfession, v))
}

// MaritalStatus applies equality check predicate on the "marital_status" field. It's identical to MaritalStatusEQ.
func MaritalStatus(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMaritalStatus, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDeletedAt))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFullName, v))
}

// NationalIDEQ applies the EQ predicate on the "national_id" field.
func NationalIDEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDNEQ applies the NEQ predicate on the "national_id" field.
func NationalIDNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldNationalID, v))
}

// NationalIDIn applies the In predicate on the "national_id" field.
func NationalIDIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldNationalID, vs...))
}

// NationalIDNotIn applies the NotIn predicate on the "national_id" field.
func NationalIDNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldNationalID, vs...))
}

// NationalIDGT applies the GT predicate on the "national_id" field.
func NationalIDGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldNationalID, v))
}

// NationalIDGTE applies the GTE predicate on the "national_id" field.
func NationalIDGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldNationalID, v))
}

// NationalIDLT applies the LT predicate on the "national_id" field.
func NationalIDLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldNationalID, v))
}

// NationalIDLTE applies the LTE predicate on the "national_id" field.
func NationalIDLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldNationalID, v))
}

// NationalIDContains applies the Contains predicate on the "national_id" field.
func NationalIDContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldNationalID, v))
}

// NationalIDHasPrefix applies the HasPrefix predicate on the "national_id" field.
func NationalIDHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldNationalID, v))
}

// NationalIDHasSuffix applies the HasSuffix predicate on the "national_id" field.
func NationalIDHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldNationalID, v))
}

// NationalIDIsNil applies the IsNil predicate on the "national_id" field.
func NationalIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldNationalID))
}

// NationalIDNotNil applies the NotNil predicate on the "national_id" field.
func NationalIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldNationalID))
}

// NationalIDEqualFold applies the EqualFold predicate on the "national_id" field.
func NationalIDEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldNationalID, v))
}

// NationalIDContainsFold applies the ContainsFold predicate on the "national_id" field.
func NationalIDContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldNationalID, v))
}

// NationalIDHashEQ applies the EQ predicate on the "national_id_hash" field.
func NationalIDHashEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNationalIDHash, v))
}

// NationalIDHashNEQ applies the NEQ predicate on the "national_id_hash" field.
func NationalIDHashNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldNationalIDHash, v))
}

// NationalIDHashIn applies the In predicate on the "national_id_hash" field.
func NationalIDHashIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldNationalIDHash, vs...))
}

// NationalIDHashNotIn applies the NotIn predicate on the "national_id_hash" field.
func NationalIDHashNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldNationalIDHash, vs...))
}

// NationalIDHashGT applies the GT predicate on the "national_id_hash" field.
func NationalIDHashGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldNationalIDHash, v))
}

// NationalIDHashGTE applies the GTE predicate on the "national_id_hash" field.
func NationalIDHashGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldNationalIDHash, v))
}

// NationalIDHashLT applies the LT predicate on the "national_id_hash" field.
func NationalIDHashLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldNationalIDHash, v))
}

// NationalIDHashLTE applies the LTE predicate on the "national_id_hash" field.
func NationalIDHashLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldNationalIDHash, v))
}

// NationalIDHashContains applies the Contains predicate on the "national_id_hash" field.
func NationalIDHashContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldNationalIDHash, v))
}

// NationalIDHashHasPrefix applies the HasPrefix predicate on the "national_id_hash" field.
func NationalIDHashHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldNationalIDHash, v))
}

// NationalIDHashHasSuffix applies the HasSuffix predicate on the "national_id_hash" field.
func NationalIDHashHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldNationalIDHash, v))
}

// NationalIDHashIsNil applies the IsNil predicate on the "national_id_hash" field.
func NationalIDHashIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldNationalIDHash))
}

// NationalIDHashNotNil applies the NotNil predicate on the "national_id_hash" field.
func NationalIDHashNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldNationalIDHash))
}

// NationalIDHashEqualFold applies the EqualFold predicate on the "national_id_hash" field.
func NationalIDHashEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldNationalIDHash, v))
}

// NationalIDHashContainsFold applies the ContainsFold predicate on the "national_id_hash" field.
func NationalIDHashContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldNationalIDHash, v))
}

// InsuranceNoEQ applies the EQ predicate on the "insurance_no" field.
func InsuranceNoEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNo, v))
}

// InsuranceNoNEQ applies the NEQ predicate on the "insurance_no" field.
func InsuranceNoNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceNo, v))
}

// InsuranceNoIn applies the In predicate on the "insurance_no" field.
func InsuranceNoIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceNo, vs...))
}

// InsuranceNoNotIn applies the NotIn predicate on the "insurance_no" field.
func InsuranceNoNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceNo, vs...))
}

// InsuranceNoGT applies the GT predicate on the "insurance_no" field.
func InsuranceNoGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceNo, v))
}

// InsuranceNoGTE applies the GTE predicate on the "insurance_no" field.
func InsuranceNoGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceNo, v))
}

// InsuranceNoLT applies the LT predicate on the "insurance_no" field.
func InsuranceNoLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceNo, v))
}

// InsuranceNoLTE applies the LTE predicate on the "insurance_no" field.
func InsuranceNoLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceNo, v))
}

// InsuranceNoContains applies the Contains predicate on the "insurance_no" field.
func InsuranceNoContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsuranceNo, v))
}

// InsuranceNoHasPrefix applies the HasPrefix predicate on the "insurance_no" field.
func InsuranceNoHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsuranceNo, v))
}

// InsuranceNoHasSuffix applies the HasSuffix predicate on the "insurance_no" field.
func InsuranceNoHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsuranceNo, v))
}

// InsuranceNoIsNil applies the IsNil predicate on the "insurance_no" field.
func InsuranceNoIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceNo))
}

// InsuranceNoNotNil applies the NotNil predicate on the "insurance_no" field.
func InsuranceNoNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceNo))
}

// InsuranceNoEqualFold applies the EqualFold predicate on the "insurance_no" field.
func InsuranceNoEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsuranceNo, v))
}

// InsuranceNoContainsFold applies the ContainsFold predicate on the "insurance_no" field.
func InsuranceNoContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsuranceNo, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBirthDate))
}

// SexEQ applies the EQ predicate on the "sex" field.
func SexEQ(v Sex) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSex, v))
}

// SexNEQ applies the NEQ predicate on the "sex" field.
func SexNEQ(v Sex) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSex, v))
}

// SexIn applies the In predicate on the "sex" field.
func SexIn(vs ...Sex) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSex, vs...))
}

// SexNotIn applies the NotIn predicate on the "sex" field.
func SexNotIn(vs ...Sex) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSex, vs...))
}

// SexIsNil applies the IsNil predicate on the "sex" field.
func SexIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldSex))
}

// SexNotNil applies the NotNil predicate on the "sex" field.
func SexNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldSex))
}

// BloodGroupEQ applies the EQ predicate on the "blood_group" field.
func BloodGroupEQ(v BloodGroup) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodGroup, v))
}

// BloodGroupNEQ applies the NEQ predicate on the "blood_group" field.
func BloodGroupNEQ(v BloodGroup) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBloodGroup, v))
}

// BloodGroupIn applies the In predicate on the "blood_group" field.
func BloodGroupIn(vs ...BloodGroup) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBloodGroup, vs...))
}

// BloodGroupNotIn applies the NotIn predicate on the "blood_group" field.
func BloodGroupNotIn(vs ...BloodGroup) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBloodGroup, vs...))
}

// BloodGroupIsNil applies the IsNil predicate on the "blood_group" field.
func BloodGroupIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBloodGroup))
}

// BloodGroupNotNil applies the NotNil predicate on the "blood_group" field.
func BloodGroupNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBloodGroup))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPhone, v))
}

// EmergencyPhoneEQ applies the EQ predicate on the "emergency_phone" field.
func EmergencyPhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneNEQ applies the NEQ predicate on the "emergency_phone" field.
func EmergencyPhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneIn applies the In predicate on the "emergency_phone" field.
func EmergencyPhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneNotIn applies the NotIn predicate on the "emergency_phone" field.
func EmergencyPhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneGT applies the GT predicate on the "emergency_phone" field.
func EmergencyPhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyPhone, v))
}

// EmergencyPhoneGTE applies the GTE predicate on the "emergency_phone" field.
func EmergencyPhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneLT applies the LT predicate on the "emergency_phone" field.
func EmergencyPhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyPhone, v))
}

// EmergencyPhoneLTE applies the LTE predicate on the "emergency_phone" field.
func EmergencyPhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneContains applies the Contains predicate on the "emergency_phone" field.
func EmergencyPhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasPrefix applies the HasPrefix predicate on the "emergency_phone" field.
func EmergencyPhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasSuffix applies the HasSuffix predicate on the "emergency_phone" field.
func EmergencyPhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyPhone, v))
}

// EmergencyPhoneIsNil applies the IsNil predicate on the "emergency_phone" field.
func EmergencyPhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyPhone))
}

// EmergencyPhoneNotNil applies the NotNil predicate on the "emergency_phone" field.
func EmergencyPhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyPhone))
}

// EmergencyPhoneEqualFold applies the EqualFold predicate on the "emergency_phone" field.
func EmergencyPhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyPhone, v))
}

// EmergencyPhoneContainsFold applies the ContainsFold predicate on the "emergency_phone" field.
func EmergencyPhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldAddress, v))
}

// ProfessionEQ applies the EQ predicate on the "profession" field.
func ProfessionEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldProfession, v))
}

// ProfessionNEQ applies the NEQ predicate on the "profession" field.
func ProfessionNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldProfession, v))
}

// ProfessionIn applies the In predicate on the "profession" field.
func ProfessionIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldProfession, vs...))
}

// ProfessionNotIn applies the NotIn predicate on the "profession" field.
func ProfessionNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldProfession, vs...))
}

// ProfessionGT applies the GT predicate on the "profession" field.
func ProfessionGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldProfession, v))
}

// ProfessionGTE applies the GTE predicate on the "profession" field.
func ProfessionGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldProfession, v))
}

// ProfessionLT applies the LT predicate on the "profession" field.
func ProfessionLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldProfession, v))
}

// ProfessionLTE applies the LTE predicate on the "profession" field.
func ProfessionLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldProfession, v))
}

// ProfessionContains applies the Contains predicate on the "profession" field.
func ProfessionContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldProfession, v))
}

// ProfessionHasPrefix applies the HasPrefix predicate on the "profession" field.
func ProfessionHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldProfession, v))
}

// ProfessionHasSuffix applies the HasSuffix predicate on the "profession" field.
func ProfessionHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldProfession, v))
}

// ProfessionIsNil applies the IsNil predicate on the "profession" field.
func ProfessionIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldProfession))
}

// ProfessionNotNil applies the NotNil predicate on the "profession" field.
func ProfessionNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldProfession))
}

// ProfessionEqualFold applies the EqualFold predicate on the "profession" field.
func ProfessionEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldProfession, v))
}

// ProfessionContainsFold applies the ContainsFold predicate on the "profession" field.
func ProfessionContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldProfession, v))
}

// MaritalStatusEQ applies the EQ predicate on the "marital_status" field.
func MaritalStatusEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMaritalStatus, v))
}

// MaritalStatusNEQ applies the NEQ predicate on the "marital_status" field.
func MaritalStatusNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMaritalStatus, v))
}

// MaritalStatusIn applies the In predicate on the "marital_status" field.
func MaritalStatusIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMaritalStatus, vs...))
}

// MaritalStatusNotIn applies the NotIn predicate on the "marital_status" field.
func MaritalStatusNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMaritalStatus, vs...))
}

// MaritalStatusGT applies the GT predicate on the "marital_status" field.
func MaritalStatusGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMaritalStatus, v))
}

// MaritalStatusGTE applies the GTE predicate on the "marital_status" field.
func MaritalStatusGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMaritalStatus, v))
}

// MaritalStatusLT applies the LT predicate on the "marital_status" field.
func MaritalStatusLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMaritalStatus, v))
}

// MaritalStatusLTE applies the LTE predicate on the "marital_status" field.
func MaritalStatusLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMaritalStatus, v))
}

// MaritalStatusContains applies the Contains predicate on the "marital_status" field.
func MaritalStatusContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMaritalStatus, v))
}

// MaritalStatusHasPrefix applies the HasPrefix predicate on the "marital_status" field.
func MaritalStatusHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMaritalStatus, v))
}

// MaritalStatusHasSuffix applies the HasSuffix predicate on the "marital_status" field.
func MaritalStatusHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMaritalStatus, v))
}

// MaritalStatusIsNil applies the IsNil predicate on the "marital_status" field.
func MaritalStatusIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMaritalStatus))
}

// MaritalStatusNotNil applies the NotNil predicate on the "marital_status" field.
func MaritalStatusNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMaritalStatus))
}

// MaritalStatusEqualFold applies the EqualFold predicate on the "marital_status" field.
func MaritalStatusEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMaritalStatus, v))
}

// MaritalStatusContainsFold applies the ContainsFold predicate on the "marital_status" field.
func MaritalStatusContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMaritalStatus, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldType, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldCreatedBy))
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAccessGrants applies the HasEdge predicate on the "access_grants" edge.
func HasAccessGrants() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AccessGrantsTable, AccessGrantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccessGrantsWith applies the HasEdge predicate on the "access_grants" edge with a given conditions (other predicates).
func HasAccessGrantsWith(preds ...predicate.PatientAccessGrant) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAccessGrantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttributions applies the HasEdge predicate on the "attributions" edge.
func HasAttributions() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttributionsWith applies the HasEdge predicate on the "attributions" edge with a given conditions (other predicates).
func HasAttributionsWith(preds ...predicate.PatientAttribution) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAttributionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
