// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
	"github.com/nephrocare/dialyse_backend/internal/repo/usersession"
	"github.com/nephrocare/dialyse_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFullName is the schema descriptor for full_name field.
	patientDescFullName := patientFields[0].Descriptor()
	// patient.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	patient.FullNameValidator = func() func(string) error {
		validators := patientDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescNationalIDHash is the schema descriptor for national_id_hash field.
	patientDescNationalIDHash := patientFields[2].Descriptor()
	// patient.NationalIDHashValidator is a validator for the "national_id_hash" field. It is called by the builders before save.
	patient.NationalIDHashValidator = patientDescNationalIDHash.Validators[0].(func(string) error)
	// patientDescInsuranceNo is the schema descriptor for insurance_no field.
	patientDescInsuranceNo := patientFields[3].Descriptor()
	// patient.InsuranceNoValidator is a validator for the "insurance_no" field. It is called by the builders before save.
	patient.InsuranceNoValidator = patientDescInsuranceNo.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[7].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmergencyPhone is the schema descriptor for emergency_phone field.
	patientDescEmergencyPhone := patientFields[8].Descriptor()
	// patient.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	patient.EmergencyPhoneValidator = patientDescEmergencyPhone.Validators[0].(func(string) error)
	// patientDescProfession is the schema descriptor for profession field.
	patientDescProfession := patientFields[10].Descriptor()
	// patient.ProfessionValidator is a validator for the "profession" field. It is called by the builders before save.
	patient.ProfessionValidator = patientDescProfession.Validators[0].(func(string) error)
	// patientDescMaritalStatus is the schema descriptor for marital_status field.
	patientDescMaritalStatus := patientFields[11].Descriptor()
	// patient.MaritalStatusValidator is a validator for the "marital_status" field. It is called by the builders before save.
	patient.MaritalStatusValidator = patientDescMaritalStatus.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientaccessgrantMixin := schema.PatientAccessGrant{}.Mixin()
	patientaccessgrantMixinFields0 := patientaccessgrantMixin[0].Fields()
	_ = patientaccessgrantMixinFields0
	patientaccessgrantMixinFields1 := patientaccessgrantMixin[1].Fields()
	_ = patientaccessgrantMixinFields1
	patientaccessgrantFields := schema.PatientAccessGrant{}.Fields()
	_ = patientaccessgrantFields
	// patientaccessgrantDescCreatedAt is the schema descriptor for created_at field.
	patientaccessgrantDescCreatedAt := patientaccessgrantMixinFields1[0].Descriptor()
	// patientaccessgrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientaccessgrant.DefaultCreatedAt = patientaccessgrantDescCreatedAt.Default.(func() time.Time)
	// patientaccessgrantDescCanView is the schema descriptor for can_view field.
	patientaccessgrantDescCanView := patientaccessgrantFields[3].Descriptor()
	// patientaccessgrant.DefaultCanView holds the default value on creation for the can_view field.
	patientaccessgrant.DefaultCanView = patientaccessgrantDescCanView.Default.(bool)
	// patientaccessgrantDescCanEdit is the schema descriptor for can_edit field.
	patientaccessgrantDescCanEdit := patientaccessgrantFields[4].Descriptor()
	// patientaccessgrant.DefaultCanEdit holds the default value on creation for the can_edit field.
	patientaccessgrant.DefaultCanEdit = patientaccessgrantDescCanEdit.Default.(bool)
	// patientaccessgrantDescID is the schema descriptor for id field.
	patientaccessgrantDescID := patientaccessgrantMixinFields0[0].Descriptor()
	// patientaccessgrant.DefaultID holds the default value on creation for the id field.
	patientaccessgrant.DefaultID = patientaccessgrantDescID.Default.(func() uuid.UUID)
	patientattributionMixin := schema.PatientAttribution{}.Mixin()
	patientattributionMixinFields0 := patientattributionMixin[0].Fields()
	_ = patientattributionMixinFields0
	patientattributionMixinFields1 := patientattributionMixin[1].Fields()
	_ = patientattributionMixinFields1
	patientattributionFields := schema.PatientAttribution{}.Fields()
	_ = patientattributionFields
	// patientattributionDescCreatedAt is the schema descriptor for created_at field.
	patientattributionDescCreatedAt := patientattributionMixinFields1[0].Descriptor()
	// patientattribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientattribution.DefaultCreatedAt = patientattributionDescCreatedAt.Default.(func() time.Time)
	// patientattributionDescSessionID is the schema descriptor for session_id field.
	patientattributionDescSessionID := patientattributionFields[1].Descriptor()
	// patientattribution.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	patientattribution.SessionIDValidator = func() func(string) error {
		validators := patientattributionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientattributionDescID is the schema descriptor for id field.
	patientattributionDescID := patientattributionMixinFields0[0].Descriptor()
	// patientattribution.DefaultID holds the default value on creation for the id field.
	patientattribution.DefaultID = patientattributionDescID.Default.(func() uuid.UUID)
	permissionprofileMixin := schema.PermissionProfile{}.Mixin()
	permissionprofileMixinFields0 := permissionprofileMixin[0].Fields()
	_ = permissionprofileMixinFields0
	permissionprofileMixinFields1 := permissionprofileMixin[1].Fields()
	_ = permissionprofileMixinFields1
	permissionprofileFields := schema.PermissionProfile{}.Fields()
	_ = permissionprofileFields
	// permissionprofileDescCreatedAt is the schema descriptor for created_at field.
	permissionprofileDescCreatedAt := permissionprofileMixinFields1[0].Descriptor()
	// permissionprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	permissionprofile.DefaultCreatedAt = permissionprofileDescCreatedAt.Default.(func() time.Time)
	// permissionprofileDescUpdatedAt is the schema descriptor for updated_at field.
	permissionprofileDescUpdatedAt := permissionprofileMixinFields1[1].Descriptor()
	// permissionprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	permissionprofile.DefaultUpdatedAt = permissionprofileDescUpdatedAt.Default.(func() time.Time)
	// permissionprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	permissionprofile.UpdateDefaultUpdatedAt = permissionprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// permissionprofileDescCanViewAllPatients is the schema descriptor for can_view_all_patients field.
	permissionprofileDescCanViewAllPatients := permissionprofileFields[2].Descriptor()
	// permissionprofile.DefaultCanViewAllPatients holds the default value on creation for the can_view_all_patients field.
	permissionprofile.DefaultCanViewAllPatients = permissionprofileDescCanViewAllPatients.Default.(bool)
	// permissionprofileDescCanCreateNewPatients is the schema descriptor for can_create_new_patients field.
	permissionprofileDescCanCreateNewPatients := permissionprofileFields[3].Descriptor()
	// permissionprofile.DefaultCanCreateNewPatients holds the default value on creation for the can_create_new_patients field.
	permissionprofile.DefaultCanCreateNewPatients = permissionprofileDescCanCreateNewPatients.Default.(bool)
	// permissionprofileDescID is the schema descriptor for id field.
	permissionprofileDescID := permissionprofileMixinFields0[0].Descriptor()
	// permissionprofile.DefaultID holds the default value on creation for the id field.
	permissionprofile.DefaultID = permissionprofileDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[6].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
