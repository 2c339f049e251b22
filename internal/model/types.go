// Package model defines the core data structures for adminui.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Field names an editable column of a record.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldRole  Field = "role"
)

// EditableFields lists the fields an operator may change, in display order.
// The identifier is deliberately absent.
var EditableFields = []Field{FieldName, FieldEmail, FieldRole}

// ParseField returns the Field named s, or an error if s is not editable.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown field %q (expected name, email or role)", s)
	}
	return f, nil
}

// Valid reports whether f is one of the editable fields.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldRole:
		return true
	}
	return false
}

// Key is the stable identity of a record inside a session. Keys are assigned
// once when a record enters the store and survive every renumbering.
type Key = uuid.UUID

// NilKey is the zero Key.
var NilKey = uuid.Nil

// NewKey returns a fresh random Key.
func NewKey() Key {
	return uuid.New()
}

// Record is a single user row.
type Record struct {
	Key   Key    `json:"-" yaml:"-"`
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// Get returns the value of field f. Unknown fields return "".
func (r Record) Get(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldRole:
		return r.Role
	}
	return ""
}

// With returns a copy of r with field f set to value.
// Unknown fields leave the copy unchanged.
func (r Record) With(f Field, value string) Record {
	switch f {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldRole:
		r.Role = value
	}
	return r
}
