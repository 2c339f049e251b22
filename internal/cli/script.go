package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jacksmith/adminui/internal/model"
	"github.com/jacksmith/adminui/internal/viewmodel"
)

// Script verbs. Each accepts any unique prefix.
const (
	VerbSearch         = "search"
	VerbPage           = "page"
	VerbToggle         = "toggle"
	VerbSelectAll      = "select-all"
	VerbToggleAll      = "toggle-all"
	VerbClear          = "clear"
	VerbDelete         = "delete"
	VerbDeleteSelected = "delete-selected"
	VerbEdit           = "edit"
	VerbSet            = "set"
	VerbSave           = "save"
	VerbCancel         = "cancel"
	VerbDismiss        = "dismiss"
	VerbShow           = "show"
)

// Verbs lists every script verb in help order.
var Verbs = []string{
	VerbSearch, VerbPage, VerbToggle, VerbSelectAll, VerbToggleAll, VerbClear,
	VerbDelete, VerbDeleteSelected, VerbEdit, VerbSet, VerbSave, VerbCancel,
	VerbDismiss, VerbShow,
}

// Command is one parsed script line.
type Command struct {
	Line int    // 1-based line number
	Text string // the line as written
	Verb string // canonical verb
	Arg  string // everything after the verb, trimmed
}

// ParseCommand parses a single line. Blank lines and lines starting with
// '#' yield ok == false.
func ParseCommand(line string, n int) (cmd Command, ok bool, err error) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, "#") {
		return Command{}, false, nil
	}
	word, rest, _ := strings.Cut(text, " ")
	verb, err := MatchCommand(word, Verbs)
	if err != nil {
		return Command{}, false, &ParseError{Line: n, Text: text, Err: err}
	}
	return Command{Line: n, Text: text, Verb: verb, Arg: strings.TrimSpace(rest)}, true, nil
}

// ParseScript reads commands from r, one per line.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		cmd, ok, err := ParseCommand(scanner.Text(), n)
		if err != nil {
			return nil, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}

var errNoArgs = errors.New("takes no arguments")

// Intent translates the command into a view-model intent. Row numbers are
// resolved against s, so the same command can address different records
// as the store changes.
func (c Command) Intent(s viewmodel.State) (viewmodel.Intent, error) {
	switch c.Verb {
	case VerbSearch:
		return viewmodel.SetSearch{Term: c.Arg}, nil

	case VerbPage:
		if c.Arg == "" {
			return nil, errors.New("page needs first, prev, next, last or a number")
		}
		target, err := viewmodel.ParsePageTarget(c.Arg)
		if err != nil {
			return nil, err
		}
		return viewmodel.RequestPage{Target: target}, nil

	case VerbToggle, VerbDelete, VerbEdit:
		key, err := c.resolve(s)
		if err != nil {
			return nil, err
		}
		switch c.Verb {
		case VerbToggle:
			return viewmodel.ToggleRow{Key: key}, nil
		case VerbDelete:
			return viewmodel.DeleteOne{Key: key}, nil
		default:
			return viewmodel.StartEdit{Key: key}, nil
		}

	case VerbSet:
		name, value, _ := strings.Cut(c.Arg, " ")
		if name == "" {
			return nil, errors.New("set needs a field and a value")
		}
		field, err := model.ParseField(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		return viewmodel.SetDraftField{Field: field, Value: strings.TrimSpace(value)}, nil
	}

	var in viewmodel.Intent
	switch c.Verb {
	case VerbSelectAll:
		in = viewmodel.SelectAll{}
	case VerbToggleAll:
		in = viewmodel.ToggleAll{}
	case VerbClear:
		in = viewmodel.ClearSelection{}
	case VerbDeleteSelected:
		in = viewmodel.DeleteSelected{}
	case VerbSave:
		in = viewmodel.SaveEdit{}
	case VerbCancel:
		in = viewmodel.CancelEdit{}
	case VerbDismiss:
		in = viewmodel.DismissError{}
	default:
		return nil, fmt.Errorf("%s does not change the table", c.Verb)
	}
	if c.Arg != "" {
		return nil, fmt.Errorf("%s %w", c.Verb, errNoArgs)
	}
	return in, nil
}

func (c Command) resolve(s viewmodel.State) (model.Key, error) {
	if c.Arg == "" {
		return model.NilKey, fmt.Errorf("%s needs a row number", c.Verb)
	}
	if _, err := model.ParseID(c.Arg); err != nil {
		return model.NilKey, err
	}
	key, ok := s.Resolve(c.Arg)
	if !ok {
		return model.NilKey, &NotFoundError{Type: "row", ID: c.Arg}
	}
	return key, nil
}

// RunScript applies cmds to s in order, rendering the table to out on every
// show. A row number that no longer exists skips its command. Any other
// failure stops the run and returns the state reached so far together with
// a *ParseError.
func RunScript(s viewmodel.State, cmds []Command, out io.Writer, logger *slog.Logger) (viewmodel.State, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for _, c := range cmds {
		if c.Verb == VerbShow {
			if c.Arg != "" {
				return s, &ParseError{Line: c.Line, Text: c.Text, Err: fmt.Errorf("show %w", errNoArgs)}
			}
			RenderView(out, s.View())
			continue
		}
		in, err := c.Intent(s)
		var nf *NotFoundError
		if errors.As(err, &nf) {
			// stale row numbers are tolerated like any other missing record
			logger.Warn("skipping command", "line", c.Line, "command", c.Text, "error", err)
			continue
		}
		if err != nil {
			return s, &ParseError{Line: c.Line, Text: c.Text, Err: err}
		}
		logger.Debug("dispatch", "line", c.Line, "intent", fmt.Sprintf("%T", in))
		s = viewmodel.Reduce(s, in)
	}
	return s, nil
}
