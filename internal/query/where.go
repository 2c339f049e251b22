// Package query compiles --where expressions that pre-filter records before
// they reach the view-model.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/jacksmith/adminui/internal/model"
)

// Where is a compiled boolean expression over a record's id, name, email
// and role, e.g. `role == "admin" && email endsWith "@mailinator.com"`.
type Where struct {
	expression string
	program    *vm.Program
}

// Compile parses and type-checks expression. It must evaluate to a bool.
func Compile(expression string) (*Where, error) {
	if expression == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	program, err := expr.Compile(expression, expr.Env(env(model.Record{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid where expression %q: %w", expression, err)
	}
	return &Where{expression: expression, program: program}, nil
}

func (w *Where) String() string {
	return w.expression
}

// Match evaluates the expression against r.
func (w *Where) Match(r model.Record) (bool, error) {
	out, err := expr.Run(w.program, env(r))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q for record %s: %w", w.expression, r.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the records that match, in order. A nil Where keeps all.
func (w *Where) Apply(records []model.Record) ([]model.Record, error) {
	if w == nil {
		return records, nil
	}
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		ok, err := w.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func env(r model.Record) map[string]any {
	return map[string]any{
		"id":    r.ID,
		"name":  r.Name,
		"email": r.Email,
		"role":  r.Role,
	}
}
