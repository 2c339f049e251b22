// Package viewmodel implements the table view-model for adminui: the record
// store, search filter, paginator, row selection and the inline edit
// transaction, composed behind a pure reducer.
package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// Store is the canonical ordered sequence of records.
//
// A Store is a value: every mutation returns a new Store and leaves the
// receiver untouched. After every mutation the display identifiers are
// exactly "1".."N" in sequence order, while each record keeps its Key.
type Store struct {
	records []model.Record
}

// NewStore returns a Store holding a copy of records.
func NewStore(records []model.Record) Store {
	return Store{}.ReplaceAll(records)
}

// ReplaceAll installs a new canonical sequence. Records without a Key get
// one; identifiers are renumbered.
func (s Store) ReplaceAll(records []model.Record) Store {
	next := make([]model.Record, len(records))
	copy(next, records)
	model.Renumber(next)
	return Store{records: next}
}

// Len returns the number of records.
func (s Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in order.
func (s Store) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup finds a record by display identifier. "007" and "#7" resolve like "7".
func (s Store) Lookup(id string) (model.Record, bool) {
	n, err := model.ParseID(id)
	if err != nil || n > len(s.records) {
		return model.Record{}, false
	}
	return s.records[n-1], true
}

// Get finds a record by key.
func (s Store) Get(key model.Key) (model.Record, bool) {
	if i := s.index(key); i >= 0 {
		return s.records[i], true
	}
	return model.Record{}, false
}

// Contains reports whether a record with key exists.
func (s Store) Contains(key model.Key) bool {
	return s.index(key) >= 0
}

// Delete removes the record with display identifier id and renumbers the
// rest. Unknown identifiers are a no-op.
func (s Store) Delete(id string) Store {
	r, ok := s.Lookup(id)
	if !ok {
		return s
	}
	return s.DeleteKey(r.Key)
}

// DeleteKey removes the record with key and renumbers the rest.
func (s Store) DeleteKey(key model.Key) Store {
	if !s.Contains(key) {
		return s
	}
	return s.DeleteMany(NewKeySet(key))
}

// DeleteMany removes every record whose key is in keys and renumbers the
// survivors, keeping their relative order.
func (s Store) DeleteMany(keys KeySet) Store {
	if len(keys) == 0 {
		return s
	}
	next := make([]model.Record, 0, len(s.records))
	for _, r := range s.records {
		if _, drop := keys[r.Key]; drop {
			continue
		}
		next = append(next, r)
	}
	if len(next) == len(s.records) {
		return s
	}
	model.Renumber(next)
	return Store{records: next}
}

// UpdateField sets one editable field on the record with key.
// Unknown keys and non-editable fields are a no-op.
func (s Store) UpdateField(key model.Key, field model.Field, value string) Store {
	i := s.index(key)
	if i < 0 || !field.Valid() {
		return s
	}
	return s.set(i, s.records[i].With(field, value))
}

// Replace overwrites the editable fields of the record with key from r.
// The record keeps its key and position.
func (s Store) Replace(key model.Key, r model.Record) Store {
	i := s.index(key)
	if i < 0 {
		return s
	}
	cur := s.records[i]
	cur.Name, cur.Email, cur.Role = r.Name, r.Email, r.Role
	return s.set(i, cur)
}

func (s Store) set(i int, r model.Record) Store {
	next := s.Records()
	next[i] = r
	return Store{records: next}
}

func (s Store) index(key model.Key) int {
	for i, r := range s.records {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// KeySet is a set of record keys.
type KeySet map[model.Key]struct{}

// NewKeySet returns a KeySet holding keys.
func NewKeySet(keys ...model.Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
