// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientAccessGrant is the predicate function for patientaccessgrant builders.
type PatientAccessGrant func(*sql.Selector)

// PatientAttribution is the predicate function for patientattribution builders.
type PatientAttribution func(*sql.Selector)

// PermissionProfile is the predicate function for permissionprofile builders.
type PermissionProfile func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
