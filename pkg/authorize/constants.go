package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionGrant:  {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"

	// Clinical records
	ResourcePatient Resource = "patient"

	// Permission artifacts managed through the admin console
	ResourcePermissionProfile Resource = "permission_profile"
	ResourcePatientAccess     Resource = "patient_access"

	// Aggregates
	ResourceStats Resource = "stats"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourcePatient:           {},
	ResourcePermissionProfile: {}, ResourcePatientAccess: {},
	ResourceStats:  {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Center roles (the application is single-tenant: one treatment center)
	RoleCenterAdmin Role = "role:center:admin"
	RoleCenterStaff Role = "role:center:staff"
)

var KnownRoles = map[Role]struct{}{
	RoleCenterAdmin: {},
	RoleCenterStaff: {},
}

// User role strings (stored in DB users.role column)
const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "user"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin: RoleCenterAdmin,
	UserRoleStaff: RoleCenterStaff,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys    Domain = "sys"
	DomainCenter Domain = "center"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainSys || d == DomainCenter || d == WildcardDomain
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
