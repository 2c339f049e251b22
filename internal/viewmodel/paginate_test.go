package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{46, 10, 5},
		{7, 3, 3},
		{5, 0, 1}, // default page size
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestPaginationBounds(t *testing.T) {
	requests := []int{-1 << 30, -5, -1, 0, 1, 2, 3, 4, 100, 1 << 30}
	for count := 0; count <= 31; count++ {
		records := members(count)
		for _, size := range []int{1, 3, 10} {
			total := TotalPages(count, size)
			for _, req := range requests {
				w := Paginate(records, size, req)
				assert.Equal(t, total, w.TotalPages)
				assert.GreaterOrEqual(t, w.Page, 1)
				assert.LessOrEqual(t, w.Page, w.TotalPages)
				assert.LessOrEqual(t, len(w.Items), size)
				assert.Equal(t, count, w.Filtered)
			}
		}
	}
}

func TestPaginateLastPageScenario(t *testing.T) {
	records := members(25)
	target := LastPage()
	page := target.Resolve(1, TotalPages(len(records), 10))

	w := Paginate(records, 10, page)

	assert.Equal(t, 3, w.Page)
	assert.Equal(t, 3, w.TotalPages)
	require.Len(t, w.Items, 5)
	assert.Equal(t, records[20:25], w.Items)
}

func TestPaginateEmpty(t *testing.T) {
	w := Paginate(nil, 10, 4)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 1, w.Page)
	assert.Empty(t, w.Items)
}

func TestPaginateClamps(t *testing.T) {
	records := members(25)

	w := Paginate(records, 10, 9)
	assert.Equal(t, 3, w.Page)
	assert.Equal(t, "User 21", w.Items[0].Name)

	w = Paginate(records, 10, -2)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, "User 01", w.Items[0].Name)
}

func TestPageTargetResolve(t *testing.T) {
	tests := []struct {
		name    string
		target  PageTarget
		current int
		total   int
		want    int
	}{
		{"first", FirstPage(), 3, 5, 1},
		{"previous", PreviousPage(), 3, 5, 2},
		{"previous at start", PreviousPage(), 1, 5, 1},
		{"next", NextPage(), 3, 5, 4},
		{"next at end", NextPage(), 5, 5, 5},
		{"last", LastPage(), 2, 5, 5},
		{"specific", SpecificPage(4), 1, 5, 4},
		{"specific too high", SpecificPage(40), 1, 5, 5},
		{"specific negative", SpecificPage(-3), 2, 5, 1},
		{"stale current", NextPage(), 9, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Resolve(tt.current, tt.total))
		})
	}
}

func TestParsePageTarget(t *testing.T) {
	tests := []struct {
		input string
		want  PageTarget
	}{
		{"first", FirstPage()},
		{"PREV", PreviousPage()},
		{"previous", PreviousPage()},
		{"next", NextPage()},
		{">>", LastPage()},
		{"last", LastPage()},
		{"7", SpecificPage(7)},
		{"-1", SpecificPage(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePageTarget(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePageTarget("middle")
	assert.Error(t, err)
}

func TestPageTargetString(t *testing.T) {
	assert.Equal(t, "first", FirstPage().String())
	assert.Equal(t, "previous", PreviousPage().String())
	assert.Equal(t, "next", NextPage().String())
	assert.Equal(t, "last", LastPage().String())
	assert.Equal(t, "4", SpecificPage(4).String())
}

func TestRecomputeFiltersBeforePaging(t *testing.T) {
	store := NewStore(members(25))

	// "admin" matches users 1, 6, 11, 16, 21: one page
	w := Recompute(store, "admin", 3, 10)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 5, w.Filtered)
	assert.Equal(t, []string{"User 01", "User 06", "User 11", "User 16", "User 21"}, names(w.Items))
}
