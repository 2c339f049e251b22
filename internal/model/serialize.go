package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a record set.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a Format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ShapeError reports a record set that decoded but does not have the
// expected shape.
type ShapeError struct {
	Index  int    // element index, -1 for the document itself
	Field  string // offending field, empty when the element itself is wrong
	Reason string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Index < 0:
		return "malformed record set: " + e.Reason
	case e.Field == "":
		return fmt.Sprintf("malformed record %d: %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("malformed record %d: field %q %s", e.Index, e.Field, e.Reason)
	}
}

// requiredFields are the keys every element must carry.
var requiredFields = []string{"id", "name", "email", "role"}

// DecodeRecords parses data as an array of record objects.
// Every element must carry id, name, email and role. Name, email and role
// must be strings; id may be a string or a whole number.
// The returned records keep the source order and have no Key yet.
func DecodeRecords(data []byte, format Format) ([]Record, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse records: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse records: %w", err)
		}
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, &ShapeError{Index: -1, Reason: fmt.Sprintf("expected an array, got %s", describe(raw))}
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &ShapeError{Index: i, Reason: fmt.Sprintf("expected an object, got %s", describe(item))}
		}
		values := make(map[string]string, len(requiredFields))
		for _, name := range requiredFields {
			v, present := obj[name]
			if !present {
				return nil, &ShapeError{Index: i, Field: name, Reason: "is missing"}
			}
			s, err := fieldString(name, v)
			if err != nil {
				return nil, &ShapeError{Index: i, Field: name, Reason: err.Error()}
			}
			values[name] = s
		}
		records = append(records, Record{
			ID:    values["id"],
			Name:  values["name"],
			Email: values["email"],
			Role:  values["role"],
		})
	}
	return records, nil
}

// LoadRecords reads and decodes a record file, choosing the format by extension.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	records, err := DecodeRecords(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load record file %s: %w", path, err)
	}
	return records, nil
}

func fieldString(name string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		if name == "id" && t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), nil
		}
	case int:
		if name == "id" {
			return strconv.Itoa(t), nil
		}
	}
	return "", fmt.Errorf("must be a string, got %s", describe(v))
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
