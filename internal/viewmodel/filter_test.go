package viewmodel

import (
	"strings"
	"testing"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"},
		{ID: "2", Name: "Aishwarya Naik", Email: "aishwarya@mailinator.com", Role: "member"},
		{ID: "3", Name: "Arvind Kumar", Email: "arvind@mailinator.com", Role: "admin"},
		{ID: "4", Name: "Caterina Binotto", Email: "caterina@mailinator.com", Role: "member"},
		{ID: "5", Name: "Chetan Kumar", Email: "chetan@MAILINATOR.com", Role: "Admin"},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term matches all", "", []string{"1", "2", "3", "4", "5"}},
		{"name match", "kumar", []string{"3", "5"}},
		{"case insensitive", "KUMAR", []string{"3", "5"}},
		{"role match", "admin", []string{"3", "5"}},
		{"email match", "caterina@", []string{"4"}},
		{"mixed case data", "mailinator", []string{"1", "2", "3", "4", "5"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleRecords(), tt.term)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterCorrectness(t *testing.T) {
	records := sampleRecords()
	for _, term := range []string{"a", "Ar", "min", "@", "kumar", "MEMBER", "x", ""} {
		got := Filter(records, term)
		kept := make(map[string]bool)
		for _, r := range got {
			kept[r.ID] = true
		}
		lower := strings.ToLower(term)
		for _, r := range records {
			want := strings.Contains(strings.ToLower(r.Name), lower) ||
				strings.Contains(strings.ToLower(r.Email), lower) ||
				strings.Contains(strings.ToLower(r.Role), lower)
			assert.Equal(t, want, kept[r.ID], "term %q record %s", term, r.ID)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords()
	for _, term := range []string{"a", "kumar", "member", ""} {
		once := Filter(records, term)
		assert.Equal(t, once, Filter(once, term), "term %q", term)
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, "")
	got[0].Name = "changed"
	assert.Equal(t, "Aaron Miles", records[0].Name)
}
