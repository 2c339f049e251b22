package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// Row is one displayed record with its per-row UI flags.
type Row struct {
	model.Record
	Selected bool
	Editing  bool
}

// EditSnapshot describes the active edit transaction.
type EditSnapshot struct {
	Key   model.Key
	ID    string // current display identifier of the record under edit
	Draft model.Record
}

// View is the read-only snapshot a renderer draws from.
type View struct {
	Rows       []Row
	Page       int
	TotalPages int
	PageSize   int
	Filtered   int
	Total      int
	Term       string

	// Selected lists the selected keys in store order.
	Selected []model.Key

	Edit *EditSnapshot

	// HeaderChecked and HeaderIndeterminate drive the select-all checkbox.
	HeaderChecked       bool
	HeaderIndeterminate bool

	Err error
}

// CanPrev reports whether there is a page before the current one.
func (v View) CanPrev() bool { return v.Page > 1 }

// CanNext reports whether there is a page after the current one.
func (v View) CanNext() bool { return v.Page < v.TotalPages }

// View builds the render snapshot for the current state.
func (s State) View() View {
	editing := s.edit.Active()
	rows := make([]Row, len(s.window.Items))
	for i, r := range s.window.Items {
		rows[i] = Row{
			Record:   r,
			Selected: s.selection.Contains(r.Key),
			Editing:  editing && s.edit.Key() == r.Key,
		}
	}

	var selected []model.Key
	for _, r := range s.store.records {
		if s.selection.Contains(r.Key) {
			selected = append(selected, r.Key)
		}
	}

	v := View{
		Rows:       rows,
		Page:       s.window.Page,
		TotalPages: s.window.TotalPages,
		PageSize:   s.pageSize,
		Filtered:   s.window.Filtered,
		Total:      s.store.Len(),
		Term:       s.term,
		Selected:   selected,
		Err:        s.loadErr,
	}

	if editing {
		snap := &EditSnapshot{Key: s.edit.Key(), Draft: s.edit.Draft()}
		if r, ok := s.store.Get(s.edit.Key()); ok {
			snap.ID = r.ID
		}
		v.Edit = snap
	}

	pageKeys := s.pageKeys()
	v.HeaderChecked = s.selection.IsAllSelected(pageKeys)
	v.HeaderIndeterminate = s.selection.IsIndeterminate(pageKeys)
	return v
}
