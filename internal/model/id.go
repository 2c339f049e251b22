package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidID is returned when a display identifier cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// seqIDRegex matches display identifiers like 7, 007 or #7
	seqIDRegex = regexp.MustCompile(`^#?(\d+)$`)
)

// FormatID returns the display identifier for the record at zero-based
// position pos.
func FormatID(pos int) string {
	return strconv.Itoa(pos + 1)
}

// ParseID parses a display identifier and returns its 1-based number.
// Accepts "7", "007" and "#7".
func ParseID(s string) (int, error) {
	matches := seqIDRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a row number", ErrInvalidID, s)
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}
	return n, nil
}

// Renumber assigns identifiers 1..N to records in their current order and
// gives a fresh Key to any record that has none. The slice is modified in place.
func Renumber(records []Record) {
	for i := range records {
		records[i].ID = FormatID(i)
		if records[i].Key == NilKey {
			records[i].Key = NewKey()
		}
	}
}
