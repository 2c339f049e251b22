package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/adminui/internal/viewmodel"
)

// Checkbox glyphs for the selection column.
const (
	boxChecked       = "[x]"
	boxUnchecked     = "[ ]"
	boxIndeterminate = "[-]"
)

// RenderView writes v as a table followed by a status line.
// The row under edit shows its draft values.
func RenderView(w io.Writer, v viewmodel.View) {
	if v.Err != nil {
		fmt.Fprintln(w, Red(FormatError(v.Err)))
	}
	if v.Term != "" {
		fmt.Fprintf(w, "Search: %q\n", v.Term)
	}

	if len(v.Rows) == 0 {
		if v.Total == 0 {
			fmt.Fprintln(w, Gray("No records."))
		} else {
			fmt.Fprintln(w, Gray("No matching records."))
		}
	} else {
		table := NewTable()
		table.SetMaxWidth(2, DefaultMaxCellWidth)
		table.SetMaxWidth(3, DefaultMaxCellWidth)
		table.AddRow(Bold(headerBox(v)), Bold("ID"), Bold("NAME"), Bold("EMAIL"), Bold("ROLE"))
		for _, row := range v.Rows {
			box := boxUnchecked
			if row.Selected {
				box = Green(boxChecked)
			}
			rec := row.Record
			id := rec.ID
			if row.Editing && v.Edit != nil {
				rec = v.Edit.Draft
				id = Yellow(id + "*")
				rec.Name, rec.Email, rec.Role = Yellow(rec.Name), Yellow(rec.Email), Yellow(rec.Role)
			}
			table.AddRow(box, id, rec.Name, rec.Email, rec.Role)
		}
		table.Render(w)
	}

	fmt.Fprintln(w, statusLine(v))
}

func headerBox(v viewmodel.View) string {
	switch {
	case v.HeaderChecked:
		return boxChecked
	case v.HeaderIndeterminate:
		return boxIndeterminate
	default:
		return boxUnchecked
	}
}

func statusLine(v viewmodel.View) string {
	parts := []string{fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages)}
	if v.Term != "" {
		parts = append(parts, fmt.Sprintf("%d of %d records", v.Filtered, v.Total))
	} else {
		parts = append(parts, fmt.Sprintf("%d records", v.Total))
	}
	if n := len(v.Selected); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if v.Edit != nil {
		parts = append(parts, fmt.Sprintf("editing %s", v.Edit.ID))
	}
	line := strings.Join(parts, ", ")

	var nav []string
	if v.CanPrev() {
		nav = append(nav, "< prev")
	}
	if v.CanNext() {
		nav = append(nav, "next >")
	}
	if len(nav) > 0 {
		line += "  [" + strings.Join(nav, " | ") + "]"
	}
	return Gray(line)
}
