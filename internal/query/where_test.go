package query

import (
	"testing"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []model.Record {
	return []model.Record{
		{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"},
		{ID: "2", Name: "Arvind Kumar", Email: "arvind@mailinator.com", Role: "admin"},
		{ID: "3", Name: "Caterina Binotto", Email: "caterina@example.org", Role: "member"},
	}
}

func TestWhereApply(t *testing.T) {
	tests := []struct {
		expression string
		want       []string
	}{
		{`role == "admin"`, []string{"2"}},
		{`role != "admin"`, []string{"1", "3"}},
		{`email endsWith "@mailinator.com"`, []string{"1", "2"}},
		{`name startsWith "A" && role == "member"`, []string{"1"}},
		{`lower(name) contains "kumar"`, []string{"2"}},
		{`id in ["1", "3"]`, []string{"1", "3"}},
		{`false`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			w, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := w.Apply(records())
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expression := range []string{"", `role ==`, `name`, `unknown == "x"`} {
		t.Run(expression, func(t *testing.T) {
			_, err := Compile(expression)
			assert.Error(t, err)
		})
	}
}

func TestNilWhereKeepsAll(t *testing.T) {
	var w *Where
	got, err := w.Apply(records())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestWhereString(t *testing.T) {
	w, err := Compile(`role == "admin"`)
	require.NoError(t, err)
	assert.Equal(t, `role == "admin"`, w.String())
}
