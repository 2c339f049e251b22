// Package tui is the interactive terminal front end. It renders a
// viewmodel.View and turns key presses into view-model intents.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/jacksmith/adminui/internal/viewmodel"
)

// LoadFunc fetches the initial record set.
type LoadFunc func(ctx context.Context) ([]model.Record, error)

// Params configures a new App.
type Params struct {
	Load     LoadFunc // nil starts with an empty table
	PageSize int
	Logger   *slog.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
)

// loadedMsg and loadFailedMsg carry the result of a fetch back into Update.
type loadedMsg struct{ records []model.Record }

type loadFailedMsg struct{ err error }

// App is the bubbletea model. It is a value; Update returns a new App.
type App struct {
	state  viewmodel.State
	load   LoadFunc
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	mode    mode
	cursor  int // row index on the current page
	field   int // focused input in edit mode
	search  textinput.Model
	inputs  []textinput.Model
	loading bool
	width   int
}

// NewApp returns an App with an empty table. Init starts the first fetch.
func NewApp(p Params) App {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search name, email or role"
	search.CharLimit = 256

	inputs := make([]textinput.Model, len(model.EditableFields))
	for i, f := range model.EditableFields {
		ti := textinput.New()
		ti.Prompt = string(f) + ": "
		ti.CharLimit = 256
		inputs[i] = ti
	}

	return App{
		state:   viewmodel.New(p.PageSize),
		load:    p.Load,
		logger:  logger,
		keys:    keys,
		help:    help.New(),
		search:  search,
		inputs:  inputs,
		loading: p.Load != nil,
	}
}

// State returns the current view-model state.
func (a App) State() viewmodel.State { return a.state }

// Cursor returns the highlighted row index on the current page.
func (a App) Cursor() int { return a.cursor }

// Searching reports whether the search box has focus.
func (a App) Searching() bool { return a.mode == modeSearch }

// Editing reports whether a row edit is open.
func (a App) Editing() bool { return a.mode == modeEdit }

// SearchText returns the contents of the search box.
func (a App) SearchText() string { return a.search.Value() }

// Loading reports whether a fetch is in flight.
func (a App) Loading() bool { return a.loading }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.fetch()
}

func (a App) fetch() tea.Cmd {
	if a.load == nil {
		return nil
	}
	load := a.load
	return func() tea.Msg {
		records, err := load(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{records: records}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil

	case loadedMsg:
		a.loading = false
		a.logger.Info("records loaded", "count", len(msg.records))
		a = a.dispatch(viewmodel.Loaded{Records: msg.records})
		// the term survives a reload, so the box keeps showing it
		a.search.SetValue(a.state.Term())
		return a, nil

	case loadFailedMsg:
		a.loading = false
		a.logger.Warn("load failed", "error", msg.err)
		a = a.dispatch(viewmodel.LoadFailed{Err: msg.err})
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeSearch:
			return a.updateSearch(msg)
		case modeEdit:
			return a.updateEdit(msg)
		default:
			return a.updateBrowse(msg)
		}
	}
	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.state.Window().Items

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Dismiss):
		if a.state.Err() != nil {
			a = a.dispatch(viewmodel.DismissError{})
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.PrevPage):
		a = a.page(viewmodel.PreviousPage())
	case key.Matches(msg, a.keys.NextPage):
		a = a.page(viewmodel.NextPage())
	case key.Matches(msg, a.keys.FirstPage):
		a = a.page(viewmodel.FirstPage())
	case key.Matches(msg, a.keys.LastPage):
		a = a.page(viewmodel.LastPage())

	case key.Matches(msg, a.keys.Toggle):
		if k, ok := a.current(); ok {
			a = a.dispatch(viewmodel.ToggleRow{Key: k})
		}
	case key.Matches(msg, a.keys.ToggleAll):
		a = a.dispatch(viewmodel.ToggleAll{})
	case key.Matches(msg, a.keys.SelectAll):
		a = a.dispatch(viewmodel.SelectAll{})
	case key.Matches(msg, a.keys.Clear):
		a = a.dispatch(viewmodel.ClearSelection{})

	case key.Matches(msg, a.keys.Delete):
		if k, ok := a.current(); ok {
			a = a.dispatch(viewmodel.DeleteOne{Key: k})
		}
	case key.Matches(msg, a.keys.DeleteSel):
		a = a.dispatch(viewmodel.DeleteSelected{})

	case key.Matches(msg, a.keys.Edit):
		if k, ok := a.current(); ok {
			a = a.dispatch(viewmodel.StartEdit{Key: k})
			cmd := a.openEditor()
			return a, cmd
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.search.SetValue(a.state.Term())
		a.search.CursorEnd()
		cmd := a.search.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Reload):
		if a.load != nil && !a.loading {
			a.loading = true
			return a, a.fetch()
		}

	default:
		// digits jump straight to a page
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if n, err := strconv.Atoi(string(msg.Runes)); err == nil && n > 0 {
				a = a.page(viewmodel.SpecificPage(n))
			}
		}
	}
	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit
	case key.Matches(msg, a.keys.SearchDone):
		a.mode = modeBrowse
		a.search.Blur()
		return a, nil
	case key.Matches(msg, a.keys.SearchReset):
		a.mode = modeBrowse
		a.search.Blur()
		a.search.SetValue("")
		return a.dispatch(viewmodel.SetSearch{Term: ""}), nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if term := a.search.Value(); term != a.state.Term() {
		a = a.dispatch(viewmodel.SetSearch{Term: term})
	}
	return a, cmd
}

func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit
	case key.Matches(msg, a.keys.Save):
		return a.closeEditor(viewmodel.SaveEdit{}), nil
	case key.Matches(msg, a.keys.Cancel):
		return a.closeEditor(viewmodel.CancelEdit{}), nil
	case key.Matches(msg, a.keys.NextField):
		cmd := a.focusField((a.field + 1) % len(a.inputs))
		return a, cmd
	case key.Matches(msg, a.keys.PrevField):
		cmd := a.focusField((a.field + len(a.inputs) - 1) % len(a.inputs))
		return a, cmd
	}

	var cmd tea.Cmd
	a.ownInputs()
	a.inputs[a.field], cmd = a.inputs[a.field].Update(msg)
	f := model.EditableFields[a.field]
	if v := a.inputs[a.field].Value(); v != a.state.Edit().Draft().Get(f) {
		a = a.dispatch(viewmodel.SetDraftField{Field: f, Value: v})
	}
	return a, cmd
}

// openEditor loads the draft into the field inputs and focuses the first.
func (a *App) openEditor() tea.Cmd {
	e := a.state.Edit()
	if !e.Active() {
		return nil
	}
	a.mode = modeEdit
	a.ownInputs()
	for i, f := range model.EditableFields {
		a.inputs[i].SetValue(e.Draft().Get(f))
		a.inputs[i].CursorEnd()
	}
	return a.focusField(0)
}

func (a *App) focusField(i int) tea.Cmd {
	a.ownInputs()
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
	a.field = i
	return a.inputs[i].Focus()
}

func (a App) closeEditor(in viewmodel.Intent) App {
	a = a.dispatch(in)
	a.mode = modeBrowse
	a.ownInputs()
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
	return a
}

// ownInputs copies the input slice so writes do not leak into earlier App
// values that share its backing array.
func (a *App) ownInputs() {
	a.inputs = append([]textinput.Model(nil), a.inputs...)
}

func (a App) page(target viewmodel.PageTarget) App {
	before := a.state.Page()
	a = a.dispatch(viewmodel.RequestPage{Target: target})
	if a.state.Page() != before {
		a.cursor = 0
	}
	return a
}

// current returns the key of the highlighted row.
func (a App) current() (model.Key, bool) {
	rows := a.state.Window().Items
	if a.cursor < 0 || a.cursor >= len(rows) {
		return model.NilKey, false
	}
	return rows[a.cursor].Key, true
}

// dispatch reduces one intent and keeps the cursor and mode consistent with
// the new state.
func (a App) dispatch(in viewmodel.Intent) App {
	a.state = viewmodel.Reduce(a.state, in)
	a.logger.Debug("dispatch", "intent", fmt.Sprintf("%T", in), "page", a.state.Page(), "rows", len(a.state.Window().Items))

	if n := len(a.state.Window().Items); a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
	if a.mode == modeEdit && !a.state.Edit().Active() {
		a.mode = modeBrowse
	}
	return a
}
