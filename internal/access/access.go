// Package access decides what a signed-in user may do with patient
// records. It is pure: callers load the user's profile, grants and
// session attributions and pass them in; nothing here touches the
// database. Handlers enforce these decisions, and the same results are
// returned to clients as capability flags so the UI can mirror them.
package access

import "github.com/google/uuid"

type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ProfileType selects which capability flag of a Profile is meaningful.
type ProfileType string

const (
	ProfileViewer  ProfileType = "viewer"
	ProfileCreator ProfileType = "creator"
)

// Profile is the coarse per-user capability profile. A nil *Profile means
// the default: viewer with no blanket visibility.
type Profile struct {
	Type         ProfileType
	CanViewAll   bool
	CanCreateNew bool
}

// Grant is a per-patient visibility record for viewer-type users.
type Grant struct {
	PatientID uuid.UUID
	CanView   bool
	CanEdit   bool
}

// Input carries everything the resolver needs about one user.
// SessionPatientIDs are the patients the user created during the current
// login session; they scope the creator edit rule.
type Input struct {
	Role              Role
	Profile           *Profile
	Grants            []Grant
	SessionPatientIDs []uuid.UUID
}

// RosterScope says which roster query to issue for a user: the full table
// or only the patients with a view grant. This is a query-shape decision,
// not a display filter.
type RosterScope int

const (
	ScopeGranted RosterScope = iota
	ScopeAll
)

// Capabilities are the per-patient affordances surfaced to clients.
type Capabilities struct {
	CanView   bool `json:"can_view"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

func (in Input) profile() Profile {
	if in.Profile == nil {
		return Profile{Type: ProfileViewer}
	}
	return *in.Profile
}

// Decide answers "may this user perform action on patientID".
// ActionView here means viewing the single given patient; list scoping
// goes through Scope. patientID is ignored for ActionCreate.
func Decide(in Input, action Action, patientID uuid.UUID) bool {
	if in.Role == RoleAdmin {
		return true
	}

	p := in.profile()

	switch action {
	case ActionCreate:
		return p.Type == ProfileCreator && p.CanCreateNew

	case ActionView:
		if p.CanViewAll || p.Type == ProfileCreator {
			return true
		}
		for _, g := range in.Grants {
			if g.PatientID == patientID && g.CanView {
				return true
			}
		}
		return false

	case ActionEdit:
		// Creators edit only patients they created in the current session.
		// Grant can_edit is recorded data, never consulted here.
		if p.Type != ProfileCreator {
			return false
		}
		for _, id := range in.SessionPatientIDs {
			if id == patientID {
				return true
			}
		}
		return false

	case ActionDelete:
		return false
	}

	return false
}

// Scope decides whether the roster query is a full scan or a join through
// view grants.
func Scope(in Input) RosterScope {
	if in.Role == RoleAdmin {
		return ScopeAll
	}
	p := in.profile()
	if p.CanViewAll || p.Type == ProfileCreator {
		return ScopeAll
	}
	return ScopeGranted
}

// CanCreate is Decide(ActionCreate) without a patient id.
func CanCreate(in Input) bool {
	return Decide(in, ActionCreate, uuid.Nil)
}

// For returns the full capability set for one patient.
func For(in Input, patientID uuid.UUID) Capabilities {
	return Capabilities{
		CanView:   Decide(in, ActionView, patientID),
		CanEdit:   Decide(in, ActionEdit, patientID),
		CanDelete: Decide(in, ActionDelete, patientID),
	}
}
