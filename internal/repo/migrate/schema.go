// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "national_id_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "insurance_no", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "sex", Type: field.TypeEnum, Nullable: true, Enums: []string{"M", "F"}},
		{Name: "blood_group", Type: field.TypeEnum, Nullable: true, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "profession", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "marital_status", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"permanent", "vacationer", "transferred", "deceased", "transplanted"}, Default: "permanent"},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_created_patients",
				Columns:    []*schema.Column{PatientsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_type",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[16]},
			},
			{
				Name:    "patient_full_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_created_by",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[17]},
			},
		},
	}
	// PatientAccessGrantsColumns holds the columns for the "patient_access_grants" table.
	PatientAccessGrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "granted_by", Type: field.TypeUUID, Nullable: true},
		{Name: "can_view", Type: field.TypeBool, Default: true},
		{Name: "can_edit", Type: field.TypeBool, Default: false},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientAccessGrantsTable holds the schema information for the "patient_access_grants" table.
	PatientAccessGrantsTable = &schema.Table{
		Name:       "patient_access_grants",
		Columns:    PatientAccessGrantsColumns,
		PrimaryKey: []*schema.Column{PatientAccessGrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_access_grants_patients_access_grants",
				Columns:    []*schema.Column{PatientAccessGrantsColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_access_grants_users_access_grants",
				Columns:    []*schema.Column{PatientAccessGrantsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientaccessgrant_user_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{PatientAccessGrantsColumns[6], PatientAccessGrantsColumns[5]},
			},
			{
				Name:    "patientaccessgrant_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientAccessGrantsColumns[6]},
			},
			{
				Name:    "patientaccessgrant_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientAccessGrantsColumns[5]},
			},
		},
	}
	// PatientAttributionsColumns holds the columns for the "patient_attributions" table.
	PatientAttributionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Size: 36},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientAttributionsTable holds the schema information for the "patient_attributions" table.
	PatientAttributionsTable = &schema.Table{
		Name:       "patient_attributions",
		Columns:    PatientAttributionsColumns,
		PrimaryKey: []*schema.Column{PatientAttributionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_attributions_patients_attributions",
				Columns:    []*schema.Column{PatientAttributionsColumns[3]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_attributions_users_attributions",
				Columns:    []*schema.Column{PatientAttributionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientattribution_user_id_session_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{PatientAttributionsColumns[4], PatientAttributionsColumns[2], PatientAttributionsColumns[3]},
			},
			{
				Name:    "patientattribution_user_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{PatientAttributionsColumns[4], PatientAttributionsColumns[2]},
			},
			{
				Name:    "patientattribution_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientAttributionsColumns[3]},
			},
		},
	}
	// PermissionProfilesColumns holds the columns for the "permission_profiles" table.
	PermissionProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "permission_type", Type: field.TypeEnum, Enums: []string{"viewer", "creator"}, Default: "viewer"},
		{Name: "can_view_all_patients", Type: field.TypeBool, Default: false},
		{Name: "can_create_new_patients", Type: field.TypeBool, Default: false},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PermissionProfilesTable holds the schema information for the "permission_profiles" table.
	PermissionProfilesTable = &schema.Table{
		Name:       "permission_profiles",
		Columns:    PermissionProfilesColumns,
		PrimaryKey: []*schema.Column{PermissionProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "permission_profiles_users_permission_profile",
				Columns:    []*schema.Column{PermissionProfilesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "permissionprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{PermissionProfilesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "user"}, Default: "user"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PatientsTable,
		PatientAccessGrantsTable,
		PatientAttributionsTable,
		PermissionProfilesTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PatientAccessGrantsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientAccessGrantsTable.ForeignKeys[1].RefTable = UsersTable
	PatientAttributionsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientAttributionsTable.ForeignKeys[1].RefTable = UsersTable
	PermissionProfilesTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
