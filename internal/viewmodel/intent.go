package viewmodel

import "github.com/jacksmith/adminui/internal/model"

// Intent is a user or collaborator command accepted by Reduce.
type Intent interface {
	intent()
}

// Loaded installs the result of a successful fetch.
type Loaded struct{ Records []model.Record }

// LoadFailed records a failed fetch. The store is left as it was.
type LoadFailed struct{ Err error }

// DismissError clears the pending load error.
type DismissError struct{}

// SetSearch changes the search term.
type SetSearch struct{ Term string }

// RequestPage navigates to a page.
type RequestPage struct{ Target PageTarget }

// ToggleRow flips the selection of one row.
type ToggleRow struct{ Key model.Key }

// SelectAll selects exactly the rows of the current page.
type SelectAll struct{}

// ToggleAll is a click on the header checkbox: clear when every row on the
// page is selected, otherwise select the page.
type ToggleAll struct{}

// ClearSelection empties the selection.
type ClearSelection struct{}

// DeleteOne removes one row.
type DeleteOne struct{ Key model.Key }

// DeleteSelected removes every selected row.
type DeleteSelected struct{}

// StartEdit opens an edit on a row, abandoning any other draft.
type StartEdit struct{ Key model.Key }

// SetDraftField changes one draft field.
type SetDraftField struct {
	Field model.Field
	Value string
}

// SaveEdit commits the draft.
type SaveEdit struct{}

// CancelEdit discards the draft.
type CancelEdit struct{}

func (Loaded) intent()         {}
func (LoadFailed) intent()     {}
func (DismissError) intent()   {}
func (SetSearch) intent()      {}
func (RequestPage) intent()    {}
func (ToggleRow) intent()      {}
func (SelectAll) intent()      {}
func (ToggleAll) intent()      {}
func (ClearSelection) intent() {}
func (DeleteOne) intent()      {}
func (DeleteSelected) intent() {}
func (StartEdit) intent()      {}
func (SetDraftField) intent()  {}
func (SaveEdit) intent()       {}
func (CancelEdit) intent()     {}
