package viewmodel

import (
	"strconv"
	"testing"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplaceAllRenumbers(t *testing.T) {
	s := NewStore([]model.Record{
		{ID: "10", Name: "Al"},
		{ID: "x", Name: "Bo"},
	})

	assert.Equal(t, []string{"1", "2"}, ids(s.Records()))
	for _, r := range s.Records() {
		assert.NotEqual(t, model.NilKey, r.Key)
	}
}

func TestStoreDeleteScenario(t *testing.T) {
	s := NewStore([]model.Record{
		{ID: "1", Name: "Al"},
		{ID: "2", Name: "Bo"},
		{ID: "3", Name: "Cy"},
	})
	cy, _ := s.Lookup("3")

	s = s.Delete("2")

	got := s.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Al", got[0].Name)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "Cy", got[1].Name)
	assert.Equal(t, cy.Key, got[1].Key, "keys survive renumbering")
}

func TestStoreRenumberingInvariant(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for del := 1; del <= n; del++ {
			s := NewStore(members(n)).Delete(strconv.Itoa(del))
			want := make([]string, n-1)
			for i := range want {
				want[i] = strconv.Itoa(i + 1)
			}
			assert.Equal(t, want, ids(s.Records()), "n=%d delete=%d", n, del)

			// relative order of survivors is unchanged
			var wantNames []string
			for _, r := range members(n) {
				if r.ID != strconv.Itoa(del) {
					wantNames = append(wantNames, r.Name)
				}
			}
			if wantNames == nil {
				wantNames = []string{}
			}
			assert.Equal(t, wantNames, names(s.Records()))
		}
	}
}

func TestStoreDeleteUnknownIsNoop(t *testing.T) {
	s := NewStore(members(3))
	before := s.Records()

	assert.Equal(t, before, s.Delete("9").Records())
	assert.Equal(t, before, s.Delete("abc").Records())
	assert.Equal(t, before, s.DeleteKey(model.NewKey()).Records())
}

func TestStoreDeleteManyRenumbers(t *testing.T) {
	s := NewStore(members(5))
	r2, _ := s.Lookup("2")
	r4, _ := s.Lookup("4")

	s = s.DeleteMany(NewKeySet(r2.Key, r4.Key))

	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Records()))
	assert.Equal(t, []string{"User 01", "User 03", "User 05"}, names(s.Records()))
}

func TestStoreDeleteManyEmptySet(t *testing.T) {
	s := NewStore(members(2))
	assert.Equal(t, s.Records(), s.DeleteMany(nil).Records())
	assert.Equal(t, s.Records(), s.DeleteMany(NewKeySet(model.NewKey())).Records())
}

func TestStoreUpdateField(t *testing.T) {
	s := NewStore(members(2))
	r1, _ := s.Lookup("1")

	updated := s.UpdateField(r1.Key, model.FieldEmail, "new@example.com")
	got, ok := updated.Get(r1.Key)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, r1.Name, got.Name)

	orig, _ := s.Get(r1.Key)
	assert.Equal(t, r1.Email, orig.Email, "original store is untouched")

	assert.Equal(t, s.Records(), s.UpdateField(r1.Key, model.Field("id"), "99").Records())
	assert.Equal(t, s.Records(), s.UpdateField(model.NewKey(), model.FieldName, "x").Records())
}

func TestStoreReplaceKeepsIdentity(t *testing.T) {
	s := NewStore(members(3))
	r2, _ := s.Lookup("2")

	s = s.Replace(r2.Key, model.Record{ID: "77", Name: "Zed", Email: "zed@x", Role: "owner"})

	got, ok := s.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, r2.Key, got.Key)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, "Zed", got.Name)
	assert.Equal(t, "owner", got.Role)
}

func TestStoreLookup(t *testing.T) {
	s := NewStore(members(3))

	r, ok := s.Lookup("#3")
	require.True(t, ok)
	assert.Equal(t, "User 03", r.Name)

	_, ok = s.Lookup("4")
	assert.False(t, ok)
	_, ok = s.Lookup("0")
	assert.False(t, ok)
}
