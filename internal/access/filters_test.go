package access

import (
	"reflect"
	"testing"
)

var roster = []PatientFacts{
	{FullName: "Jean Dupont", Sex: "M", BloodGroup: "A+", Type: "permanent"},
	{FullName: "Fatima Alaoui", Sex: "F", BloodGroup: "O-", Type: "vacationer"},
	{FullName: "Jean-Pierre Martin", Sex: "M", BloodGroup: "B+", Type: "transferred"},
	{FullName: "Amina Dupont", Sex: "F", BloodGroup: "A+", Type: "permanent"},
}

func names(in []PatientFacts) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = p.FullName
	}
	return out
}

func ident(p PatientFacts) PatientFacts { return p }

func TestFilters(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want []string
	}{
		{"no filters", Filters{}, []string{"Jean Dupont", "Fatima Alaoui", "Jean-Pierre Martin", "Amina Dupont"}},
		{"all sentinels", Filters{Name: "all", Sex: "all", BloodGroup: "all", Type: "all"}, []string{"Jean Dupont", "Fatima Alaoui", "Jean-Pierre Martin", "Amina Dupont"}},
		{"name substring case-insensitive", Filters{Name: "jean"}, []string{"Jean Dupont", "Jean-Pierre Martin"}},
		{"sex", Filters{Sex: "F"}, []string{"Fatima Alaoui", "Amina Dupont"}},
		{"blood group", Filters{BloodGroup: "A+"}, []string{"Jean Dupont", "Amina Dupont"}},
		{"type", Filters{Type: "vacationer"}, []string{"Fatima Alaoui"}},
		{"conjunction", Filters{Name: "dupont", Sex: "F", BloodGroup: "A+"}, []string{"Amina Dupont"}},
		{"conjunction with no match", Filters{Name: "dupont", Type: "deceased"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(roster, ident, tt.f)
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("got %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestFilterIdempotence(t *testing.T) {
	f := Filters{Name: "jean", Sex: "M"}
	once := Apply(roster, ident, f)
	twice := Apply(once, ident, f)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering is not idempotent: %v vs %v", once, twice)
	}
}
