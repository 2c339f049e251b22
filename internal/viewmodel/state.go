package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// State is the complete view-model: the store plus every input the derived
// page depends on. It is a value; Reduce returns a new State.
type State struct {
	store     Store
	term      string
	page      int
	pageSize  int
	selection Selection
	edit      Edit
	loadErr   error

	// window is recomputed after every transition.
	window Window
}

// New returns an empty State. A non-positive pageSize uses DefaultPageSize.
func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := State{page: 1, pageSize: pageSize}
	return s.recompute()
}

// Store returns the current record store.
func (s State) Store() Store { return s.store }

// Term returns the current search term.
func (s State) Term() string { return s.term }

// Page returns the current clamped page.
func (s State) Page() int { return s.window.Page }

// PageSize returns the number of rows per page.
func (s State) PageSize() int { return s.pageSize }

// Selection returns the current selection.
func (s State) Selection() Selection { return s.selection }

// Edit returns the current edit transaction.
func (s State) Edit() Edit { return s.edit }

// Err returns the pending load error, if any.
func (s State) Err() error { return s.loadErr }

// Window returns the current page window.
func (s State) Window() Window { return s.window }

// Resolve maps a display identifier to a record key.
func (s State) Resolve(id string) (model.Key, bool) {
	r, ok := s.store.Lookup(id)
	if !ok {
		return model.NilKey, false
	}
	return r.Key, true
}

// Reduce applies one intent and recomputes the page. Intents that reference
// missing records or non-editable fields leave the state unchanged.
func Reduce(s State, in Intent) State {
	switch in := in.(type) {
	case Loaded:
		s.store = NewStore(in.Records)
		s.selection = Selection{}
		s.edit = Edit{}
		s.loadErr = nil
		s.page = 1

	case LoadFailed:
		s.loadErr = in.Err

	case DismissError:
		s.loadErr = nil

	case SetSearch:
		if in.Term != s.term {
			// a stale draft could point at a row that leaves the view
			s.edit = Edit{}
			s.term = in.Term
		}

	case RequestPage:
		s.page = in.Target.Resolve(s.window.Page, s.window.TotalPages)

	case ToggleRow:
		if s.store.Contains(in.Key) {
			s.selection = s.selection.Toggle(in.Key)
		}

	case SelectAll:
		s.selection = s.selection.SelectOnly(s.pageKeys())

	case ToggleAll:
		keys := s.pageKeys()
		if s.selection.IsAllSelected(keys) {
			s.selection = s.selection.Clear()
		} else {
			s.selection = s.selection.SelectOnly(keys)
		}

	case ClearSelection:
		s.selection = s.selection.Clear()

	case DeleteOne:
		if !s.store.Contains(in.Key) {
			return s
		}
		s.store = s.store.DeleteKey(in.Key)
		s.selection = s.selection.Retain(s.store)
		if s.edit.Active() && s.edit.Key() == in.Key {
			s.edit = s.edit.Cancel()
		}

	case DeleteSelected:
		if s.selection.Len() == 0 {
			return s
		}
		s.store = s.store.DeleteMany(s.selection.Keys())
		s.selection = s.selection.Clear()
		if s.edit.Active() && !s.store.Contains(s.edit.Key()) {
			s.edit = s.edit.Cancel()
		}

	case StartEdit:
		if e, ok := BeginEdit(s.store, in.Key); ok {
			s.edit = e
		}

	case SetDraftField:
		s.edit = s.edit.SetField(in.Field, in.Value)

	case SaveEdit:
		s.store, s.edit = s.edit.Commit(s.store)

	case CancelEdit:
		s.edit = s.edit.Cancel()

	default:
		return s
	}
	return s.recompute()
}

// recompute refreshes the window from the latest store and term and stores
// the clamped page back.
func (s State) recompute() State {
	s.window = Recompute(s.store, s.term, s.page, s.pageSize)
	s.page = s.window.Page
	return s
}

func (s State) pageKeys() []model.Key {
	keys := make([]model.Key, len(s.window.Items))
	for i, r := range s.window.Items {
		keys[i] = r.Key
	}
	return keys
}
