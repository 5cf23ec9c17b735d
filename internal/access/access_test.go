package access

import (
	"testing"

	"github.com/google/uuid"
)

func mustV7(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestAdminAllowsEverything(t *testing.T) {
	pid := uuid.New()
	in := Input{Role: RoleAdmin} // no profile, no grants

	for _, action := range []Action{ActionView, ActionEdit, ActionCreate, ActionDelete} {
		if !Decide(in, action, pid) {
			t.Errorf("admin denied %s", action)
		}
	}
	if Scope(in) != ScopeAll {
		t.Error("admin roster scope should be full")
	}
}

func TestNonAdminDeleteAlwaysDenied(t *testing.T) {
	pid := uuid.New()
	inputs := []Input{
		{Role: RoleUser},
		{Role: RoleUser, Profile: &Profile{Type: ProfileCreator, CanCreateNew: true}, SessionPatientIDs: []uuid.UUID{pid}},
		{Role: RoleUser, Profile: &Profile{Type: ProfileViewer, CanViewAll: true}, Grants: []Grant{{PatientID: pid, CanView: true, CanEdit: true}}},
	}
	for i, in := range inputs {
		if Decide(in, ActionDelete, pid) {
			t.Errorf("input %d: non-admin delete allowed", i)
		}
	}
}

func TestCreateDecision(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    bool
	}{
		{"no profile", nil, false},
		{"viewer", &Profile{Type: ProfileViewer, CanViewAll: true}, false},
		{"creator without flag", &Profile{Type: ProfileCreator, CanCreateNew: false}, false},
		{"creator with flag", &Profile{Type: ProfileCreator, CanCreateNew: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Role: RoleUser, Profile: tt.profile}
			if got := CanCreate(in); got != tt.want {
				t.Errorf("CanCreate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEditIsSessionScoped(t *testing.T) {
	pid := mustV7(t)
	other := mustV7(t)
	creator := &Profile{Type: ProfileCreator, CanCreateNew: true}

	// Created in the current session: edit allowed.
	in := Input{Role: RoleUser, Profile: creator, SessionPatientIDs: []uuid.UUID{pid}}
	if !Decide(in, ActionEdit, pid) {
		t.Error("creator denied edit of own session patient")
	}
	if Decide(in, ActionEdit, other) {
		t.Error("creator allowed edit of foreign patient")
	}

	// After a sign-out/sign-in cycle the attribution list for the new
	// session is empty; edit rights are gone even for the same patient.
	relogged := Input{Role: RoleUser, Profile: creator, SessionPatientIDs: nil}
	if Decide(relogged, ActionEdit, pid) {
		t.Error("edit right survived a session change")
	}
}

func TestEditIgnoresGrantCanEdit(t *testing.T) {
	pid := uuid.New()
	in := Input{
		Role:    RoleUser,
		Profile: &Profile{Type: ProfileViewer, CanViewAll: true},
		Grants:  []Grant{{PatientID: pid, CanView: true, CanEdit: true}},
	}
	if Decide(in, ActionEdit, pid) {
		t.Error("grant can_edit must not confer edit capability")
	}
}

func TestViewDecision(t *testing.T) {
	granted := uuid.New()
	hidden := uuid.New()

	tests := []struct {
		name string
		in   Input
		pid  uuid.UUID
		want bool
	}{
		{"viewer with blanket view", Input{Role: RoleUser, Profile: &Profile{Type: ProfileViewer, CanViewAll: true}}, hidden, true},
		{"creator sees everything", Input{Role: RoleUser, Profile: &Profile{Type: ProfileCreator}}, hidden, true},
		{"granted patient", Input{Role: RoleUser, Grants: []Grant{{PatientID: granted, CanView: true}}}, granted, true},
		{"grant without can_view", Input{Role: RoleUser, Grants: []Grant{{PatientID: granted, CanView: false}}}, granted, false},
		{"ungranted patient", Input{Role: RoleUser, Grants: []Grant{{PatientID: granted, CanView: true}}}, hidden, false},
		{"no profile no grants", Input{Role: RoleUser}, hidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.in, ActionView, tt.pid); got != tt.want {
				t.Errorf("view = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScope(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want RosterScope
	}{
		{"admin", Input{Role: RoleAdmin}, ScopeAll},
		{"creator", Input{Role: RoleUser, Profile: &Profile{Type: ProfileCreator}}, ScopeAll},
		{"viewer blanket", Input{Role: RoleUser, Profile: &Profile{Type: ProfileViewer, CanViewAll: true}}, ScopeAll},
		{"viewer restricted", Input{Role: RoleUser, Profile: &Profile{Type: ProfileViewer}}, ScopeGranted},
		{"no profile", Input{Role: RoleUser}, ScopeGranted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scope(tt.in); got != tt.want {
				t.Errorf("scope = %v, want %v", got, tt.want)
			}
		})
	}
}

// Scenario: a creator account makes a patient in session A, signs out and
// back in. The roster still lists the patient but the edit affordance is
// gone.
func TestCreatorReloginScenario(t *testing.T) {
	jean := mustV7(t)
	profile := &Profile{Type: ProfileCreator, CanCreateNew: true}

	sessionA := Input{Role: RoleUser, Profile: profile, SessionPatientIDs: []uuid.UUID{jean}}
	if !CanCreate(sessionA) {
		t.Fatal("creator cannot create")
	}
	if Scope(sessionA) != ScopeAll {
		t.Error("creator should see the full roster")
	}
	capsA := For(sessionA, jean)
	if !capsA.CanView || !capsA.CanEdit || capsA.CanDelete {
		t.Errorf("session A capabilities = %+v", capsA)
	}

	sessionB := Input{Role: RoleUser, Profile: profile}
	if Scope(sessionB) != ScopeAll {
		t.Error("roster visibility should survive re-login")
	}
	capsB := For(sessionB, jean)
	if !capsB.CanView || capsB.CanEdit || capsB.CanDelete {
		t.Errorf("session B capabilities = %+v", capsB)
	}
}

// Scenario: a viewer granted exactly one patient sees only that patient
// and gets no create/edit/delete affordances.
func TestRestrictedViewerScenario(t *testing.T) {
	p1 := mustV7(t)
	p2 := mustV7(t)
	in := Input{Role: RoleUser, Grants: []Grant{{PatientID: p1, CanView: true}}}

	if Scope(in) != ScopeGranted {
		t.Fatal("restricted viewer should get the grant-scoped query")
	}
	if CanCreate(in) {
		t.Error("viewer must not create")
	}
	if !Decide(in, ActionView, p1) {
		t.Error("granted patient not viewable")
	}
	if Decide(in, ActionView, p2) {
		t.Error("ungranted patient viewable")
	}
	caps := For(in, p1)
	if caps.CanEdit || caps.CanDelete {
		t.Errorf("viewer capabilities = %+v", caps)
	}
}
