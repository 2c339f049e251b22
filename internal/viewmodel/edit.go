package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// Edit is the in-progress inline edit of one record. The zero value is Idle.
type Edit struct {
	active bool
	key    model.Key
	draft  model.Record
}

// BeginEdit copies the current values of the record with key into a new
// draft. It returns false if the record does not exist.
func BeginEdit(store Store, key model.Key) (Edit, bool) {
	r, ok := store.Get(key)
	if !ok {
		return Edit{}, false
	}
	return Edit{active: true, key: key, draft: r}, true
}

// Active reports whether an edit is in progress.
func (e Edit) Active() bool {
	return e.active
}

// Key returns the key of the record under edit.
func (e Edit) Key() model.Key {
	return e.key
}

// Draft returns the draft values.
func (e Edit) Draft() model.Record {
	return e.draft
}

// SetField changes one draft field. It never touches the store; it is a
// no-op when idle or when field is not editable.
func (e Edit) SetField(field model.Field, value string) Edit {
	if !e.active || !field.Valid() {
		return e
	}
	e.draft = e.draft.With(field, value)
	return e
}

// Commit writes the draft into store and returns to Idle.
func (e Edit) Commit(store Store) (Store, Edit) {
	if !e.active {
		return store, e
	}
	return store.Replace(e.key, e.draft), Edit{}
}

// Cancel discards the draft.
func (e Edit) Cancel() Edit {
	return Edit{}
}
