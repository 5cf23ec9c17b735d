package access

import "strings"

// FilterAll is the sentinel meaning "do not filter on this field".
const FilterAll = "all"

// Filters are the roster filters. They compose conjunctively; an empty or
// "all" field is a no-op. Name matches case-insensitively as a substring,
// the rest are equality matches.
type Filters struct {
	Name       string
	Sex        string
	BloodGroup string
	Type       string
}

// PatientFacts is the filterable projection of one roster row.
type PatientFacts struct {
	FullName   string
	Sex        string
	BloodGroup string
	Type       string
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, FilterAll)
}

// Match reports whether one roster row passes every active filter.
func (f Filters) Match(p PatientFacts) bool {
	if active(f.Name) && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(f.Name)) {
		return false
	}
	if active(f.Sex) && p.Sex != f.Sex {
		return false
	}
	if active(f.BloodGroup) && p.BloodGroup != f.BloodGroup {
		return false
	}
	if active(f.Type) && p.Type != f.Type {
		return false
	}
	return true
}

// Apply filters a fetched roster in place order, returning the rows that
// pass. Applying the same filters again returns an equal slice.
func Apply[T any](items []T, facts func(T) PatientFacts, f Filters) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.Match(facts(it)) {
			out = append(out, it)
		}
	}
	return out
}
