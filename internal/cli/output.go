package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Color modes accepted by ConfigureColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// colorEnabled tracks whether color output is enabled.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ConfigureColor applies a color mode for output written to w.
// "auto" enables color only when w is a terminal.
func ConfigureColor(mode string, w io.Writer) error {
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	case ColorAuto, "":
		colorEnabled = IsTerminal(w)
	default:
		return &ValidationError{Field: "color", Message: fmt.Sprintf("%q is not one of auto, always, never", mode)}
	}
	return nil
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Bold returns s in bold if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxCellWidth caps free-text columns such as name and email.
const DefaultMaxCellWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with columns separated by two spaces.
// Trailing padding is never written.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

// Truncate returns s cut to maxWidth visible characters. When s is longer,
// "..." is appended within the limit. ANSI codes are kept up to the cut and
// a reset is appended if any were seen.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	if maxWidth < len(ellipsis) {
		out, _ := cut(s, maxWidth)
		return out
	}
	out, hasAnsi := cut(s, maxWidth-len(ellipsis))
	out += ellipsis
	if hasAnsi {
		out += colorReset
	}
	return out
}

// cut keeps the first limit visible runes of s plus any escape sequences
// before the cut point.
func cut(s string, limit int) (string, bool) {
	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case visible >= limit:
			return b.String(), hasAnsi
		default:
			b.WriteRune(r)
			visible++
		}
	}
	return b.String(), hasAnsi
}

// visibleWidth returns the cell width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	return lipgloss.Width(s)
}
