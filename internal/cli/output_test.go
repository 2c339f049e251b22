package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)

	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))
	assert.Equal(t, "\033[90mtest\033[0m", Gray("test"))
	assert.Equal(t, "\033[1mtest\033[0m", Bold("test"))

	SetColorEnabled(false)

	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Red("test"))
	assert.Equal(t, "test", Yellow("test"))
	assert.Equal(t, "test", Gray("test"))
	assert.Equal(t, "test", Bold("test"))
}

func TestConfigureColor(t *testing.T) {
	defer SetColorEnabled(false)
	var buf bytes.Buffer

	require.NoError(t, ConfigureColor(ColorAlways, &buf))
	assert.True(t, ColorEnabled())

	require.NoError(t, ConfigureColor(ColorNever, &buf))
	assert.False(t, ColorEnabled())

	SetColorEnabled(true)
	require.NoError(t, ConfigureColor(ColorAuto, &buf))
	assert.False(t, ColorEnabled(), "a buffer is not a terminal")

	err := ConfigureColor("sometimes", &buf)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "color", verr.Field)
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, table.Len())
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable()
	table.AddRow("1", "Aaron Miles", "aaron@mailinator.com", "member")
	table.AddRow("2", "Aishwarya Naik", "aishwarya@mailinator.com", "admin")
	table.AddRow("10", "Arvind Kumar", "arvind@mailinator.com", "member")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "" +
		"1   Aaron Miles     aaron@mailinator.com      member\n" +
		"2   Aishwarya Naik  aishwarya@mailinator.com  admin\n" +
		"10  Arvind Kumar    arvind@mailinator.com     member\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 3, table.Len())
}

func TestTableOmitsTrailingPadding(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "bb", "")
	table.AddRow("dddd", "e", "ff")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "a     bb\ndddd  e   ff\n", buf.String())
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow(Green("[x]"), "1", "Aaron")
	table.AddRow("[ ]", "22", "Bo")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, visibleWidth(lines[0])-len("Aaron"), visibleWidth(lines[1])-len("Bo"))
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncatePlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"very short max", "hello world", 3, "..."},
		{"max 1", "hello", 1, "h"},
		{"max 0", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"long email", strings.Repeat("x", 100), 20, strings.Repeat("x", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWithANSI(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Green("hello world"), 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasSuffix(got, colorReset), "should end with ANSI reset")

	short := Green("hi")
	assert.Equal(t, short, Truncate(short, 10))
}

func TestTableSetMaxWidth(t *testing.T) {
	table := NewTable()
	table.SetMaxWidth(1, 10)

	table.AddRow("1", strings.Repeat("x", 100), "end")
	table.AddRow("2", "short", "end")

	var buf bytes.Buffer
	table.Render(&buf)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, strings.Repeat("x", 11))
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "end"))
	}
	assert.Equal(t, strings.Index(lines[0], "end"), strings.Index(lines[1], "end"))
}

func TestTableUnevenRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b", "c")
	table.AddRow("d", "e")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "a  b  c\nd  e\n", buf.String())
}
