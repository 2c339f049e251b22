package viewmodel

import (
	"testing"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	a, b := model.NewKey(), model.NewKey()
	var s Selection

	s = s.Toggle(a)
	assert.True(t, s.Contains(a))
	assert.Equal(t, 1, s.Len())

	s2 := s.Toggle(b).Toggle(a)
	assert.False(t, s2.Contains(a))
	assert.True(t, s2.Contains(b))
	assert.True(t, s.Contains(a), "Toggle returns a new selection")
}

func TestSelectionSelectOnlyAndClear(t *testing.T) {
	a, b, c := model.NewKey(), model.NewKey(), model.NewKey()
	s := Selection{}.Toggle(c).SelectOnly([]model.Key{a, b})

	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(b))
	assert.False(t, s.Contains(c))

	s = s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSelectionHeaderConsistency(t *testing.T) {
	a, b, c, other := model.NewKey(), model.NewKey(), model.NewKey(), model.NewKey()
	page := []model.Key{a, b, c}

	tests := []struct {
		name          string
		selected      []model.Key
		page          []model.Key
		checked       bool
		indeterminate bool
	}{
		{"none selected", nil, page, false, false},
		{"some selected", []model.Key{a}, page, false, true},
		{"all selected", []model.Key{a, b, c}, page, true, false},
		{"all plus off-page", []model.Key{a, b, c, other}, page, true, false},
		{"only off-page", []model.Key{other}, page, false, false},
		{"empty page", []model.Key{other}, nil, false, false},
		{"empty page empty selection", nil, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{}.SelectOnly(tt.selected)
			assert.Equal(t, tt.checked, s.IsAllSelected(tt.page))
			assert.Equal(t, tt.indeterminate, s.IsIndeterminate(tt.page))
		})
	}
}

func TestSelectionRetain(t *testing.T) {
	store := NewStore(members(3))
	r1, _ := store.Lookup("1")
	gone := model.NewKey()

	s := Selection{}.SelectOnly([]model.Key{r1.Key, gone}).Retain(store)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(r1.Key))
	assert.False(t, s.Contains(gone))
}
