package cli

import "fmt"

// NotFoundError indicates a row referenced by number does not exist.
type NotFoundError struct {
	Type string // "row"
	ID   string // the identifier that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// ValidationError indicates a flag or argument failed validation.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ParseError reports a bad line in an intent script.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
