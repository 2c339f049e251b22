package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// Selection is the set of checked rows, keyed by stable record key.
// It is independent of the page being displayed. Like Store it is a value;
// methods return a new Selection.
type Selection struct {
	keys KeySet
}

// Contains reports whether key is selected.
func (s Selection) Contains(key model.Key) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of selected keys.
func (s Selection) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the selected keys.
func (s Selection) Keys() KeySet {
	out := make(KeySet, len(s.keys))
	for k := range s.keys {
		out[k] = struct{}{}
	}
	return out
}

// Toggle adds key if absent and removes it if present.
func (s Selection) Toggle(key model.Key) Selection {
	next := s.Keys()
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	return Selection{keys: next}
}

// SelectOnly replaces the selection with exactly keys.
func (s Selection) SelectOnly(keys []model.Key) Selection {
	return Selection{keys: NewKeySet(keys...)}
}

// Clear empties the selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Retain drops keys that no longer exist in store.
func (s Selection) Retain(store Store) Selection {
	if len(s.keys) == 0 {
		return s
	}
	next := make(KeySet, len(s.keys))
	for k := range s.keys {
		if store.Contains(k) {
			next[k] = struct{}{}
		}
	}
	return Selection{keys: next}
}

// IsAllSelected reports whether pageKeys is non-empty and every key in it
// is selected. An empty page is never all-selected.
func (s Selection) IsAllSelected(pageKeys []model.Key) bool {
	if len(pageKeys) == 0 {
		return false
	}
	for _, k := range pageKeys {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// IsIndeterminate reports whether some, but not all, of pageKeys are selected.
func (s Selection) IsIndeterminate(pageKeys []model.Key) bool {
	n := 0
	for _, k := range pageKeys {
		if s.Contains(k) {
			n++
		}
	}
	return n > 0 && n < len(pageKeys)
}
