package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	SelectAll  key.Binding
	Clear      key.Binding
	Delete     key.Binding
	DeleteSel  key.Binding
	Edit       key.Binding
	Search     key.Binding
	Reload     key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
	Save       key.Binding
	Cancel     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	SearchDone  key.Binding
	SearchReset key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.ToggleAll, k.Delete, k.DeleteSel, k.Edit, k.NextPage, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Toggle, k.ToggleAll, k.SelectAll, k.Clear},
		{k.Delete, k.DeleteSel, k.Edit, k.Search, k.Reload},
		{k.Dismiss, k.Quit},
	}
}

// searchHelp lists the bindings active while the search box has focus.
func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.SearchDone, k.SearchReset}
}

// editHelp lists the bindings active while a row is being edited.
func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Save, k.Cancel}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("←/h", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("→/l", "next page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "select"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle page"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "select page"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear selection"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "delete"),
	),
	DeleteSel: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete selected"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss error"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev field"),
	),
	SearchDone: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "keep search"),
	),
	SearchReset: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}
