package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jacksmith/adminui/internal/viewmodel"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	editStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Column widths in cells.
const (
	boxWidth   = 4
	idWidth    = 5
	nameWidth  = 24
	emailWidth = 32
	roleWidth  = 10
)

// View implements tea.Model.
func (a App) View() string {
	v := a.state.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Users"))
	if a.loading {
		b.WriteString(mutedStyle.Render("  loading..."))
	}
	b.WriteString("\n")

	if v.Err != nil {
		b.WriteString(errorStyle.Render("✗ "+v.Err.Error()) + mutedStyle.Render("  (esc to dismiss)") + "\n")
	}

	switch {
	case a.mode == modeSearch:
		b.WriteString(a.search.View() + "\n")
	case v.Term != "":
		b.WriteString(mutedStyle.Render("/ "+v.Term) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(a.renderTable(v))
	b.WriteString("\n")
	b.WriteString(pager(v) + "  " + mutedStyle.Render(status(v)) + "\n")

	if a.mode == modeEdit && v.Edit != nil {
		b.WriteString("\n" + editStyle.Render("Editing row "+v.Edit.ID) + "\n")
		for i := range a.inputs {
			b.WriteString(a.inputs[i].View() + "\n")
		}
		b.WriteString(a.help.ShortHelpView(a.keys.editHelp()))
	} else if a.mode == modeSearch {
		b.WriteString(a.help.ShortHelpView(a.keys.searchHelp()))
	} else {
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

func (a App) renderTable(v viewmodel.View) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(row(headerBox(v), "ID", "NAME", "EMAIL", "ROLE")) + "\n")

	if len(v.Rows) == 0 {
		msg := "No records."
		if v.Total > 0 {
			msg = "No matching records."
		}
		if a.loading {
			msg = "Loading..."
		}
		b.WriteString(mutedStyle.Render(msg) + "\n")
		return b.String()
	}

	for i, r := range v.Rows {
		box := "[ ]"
		if r.Selected {
			box = "[x]"
		}
		rec := r.Record
		if r.Editing && v.Edit != nil {
			rec = v.Edit.Draft
			rec.ID = r.ID
		}
		line := row(box, rec.ID, rec.Name, rec.Email, rec.Role)

		style := lipgloss.NewStyle()
		switch {
		case r.Editing:
			style = editStyle
		case r.Selected:
			style = selectedStyle
		}
		if i == a.cursor && a.mode != modeSearch {
			style = style.Inherit(cursorStyle)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func row(box, id, name, email, role string) string {
	return cell(box, boxWidth) + cell(id, idWidth) + cell(name, nameWidth) + cell(email, emailWidth) + cell(role, roleWidth)
}

// cell pads or cuts s to exactly width cells, leaving one cell of gap.
func cell(s string, width int) string {
	if lipgloss.Width(s) >= width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+2 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func headerBox(v viewmodel.View) string {
	switch {
	case v.HeaderChecked:
		return "[x]"
	case v.HeaderIndeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// pager draws the first/prev and next/last arrows, dimmed when there is
// nowhere to go.
func pager(v viewmodel.View) string {
	back, forward := "« ‹", "› »"
	if !v.CanPrev() {
		back = mutedStyle.Render(back)
	}
	if !v.CanNext() {
		forward = mutedStyle.Render(forward)
	}
	return back + " " + forward
}

func status(v viewmodel.View) string {
	s := fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages)
	if v.Term != "" {
		s += fmt.Sprintf(" · %d of %d records", v.Filtered, v.Total)
	} else {
		s += fmt.Sprintf(" · %d records", v.Total)
	}
	if n := len(v.Selected); n > 0 {
		s += fmt.Sprintf(" · %d selected", n)
	}
	return s
}
