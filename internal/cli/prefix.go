// Package cli provides CLI infrastructure for adminui: typed errors, colors,
// table output and the intent script runner.
package cli

import (
	"fmt"
	"strings"
)

// CommandError reports a verb that matched no command or more than one.
type CommandError struct {
	Input   string   // the verb as typed, lower-cased
	Matches []string // commands sharing the prefix; empty when nothing matched
	Known   []string // every command that was accepted
}

func (e *CommandError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("unknown command %q (expected one of: %s)", e.Input, strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("ambiguous command %q matches: %s", e.Input, strings.Join(e.Matches, ", "))
}

// MatchCommand resolves a case-insensitive prefix to one of commands.
// An exact match wins even when it is also a prefix of a longer command,
// so "delete" never collides with "delete-selected". Failures are
// returned as *CommandError.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, cmd := range commands {
		lower := strings.ToLower(cmd)
		if lower == prefix {
			return cmd, nil
		}
		if prefix != "" && strings.HasPrefix(lower, prefix) {
			matches = append(matches, cmd)
		}
	}

	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", &CommandError{Input: prefix, Matches: matches, Known: commands}
}
