package viewmodel

import (
	"strings"

	"github.com/jacksmith/adminui/internal/model"
)

// Filter returns the records whose name, email or role contains term,
// compared case-insensitively. Order is preserved and an empty term
// matches everything.
func Filter(records []model.Record, term string) []model.Record {
	if term == "" {
		out := make([]model.Record, len(records))
		copy(out, records)
		return out
	}
	needle := strings.ToLower(term)
	var out []model.Record
	for _, r := range records {
		if Matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r matches an already lower-cased term.
func Matches(r model.Record, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(r.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Email), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Role), lowerTerm)
}
