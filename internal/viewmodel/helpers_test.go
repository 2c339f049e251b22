package viewmodel

import (
	"fmt"
	"testing"

	"github.com/jacksmith/adminui/internal/model"
)

// members returns n records named "User 01".."User n" with alternating roles.
func members(n int) []model.Record {
	records := make([]model.Record, n)
	for i := range records {
		role := "member"
		if i%5 == 0 {
			role = "admin"
		}
		records[i] = model.Record{
			ID:    fmt.Sprint(i + 1),
			Name:  fmt.Sprintf("User %02d", i+1),
			Email: fmt.Sprintf("user%02d@mailinator.com", i+1),
			Role:  role,
		}
	}
	return records
}

func ids(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func names(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func rowNames(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

// keyOf resolves a display identifier or fails the test.
func keyOf(t *testing.T, s State, id string) model.Key {
	t.Helper()
	key, ok := s.Resolve(id)
	if !ok {
		t.Fatalf("no record with id %s", id)
	}
	return key
}

// apply reduces every intent in order.
func apply(s State, intents ...Intent) State {
	for _, in := range intents {
		s = Reduce(s, in)
	}
	return s
}
