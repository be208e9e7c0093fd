// Package schema converts inbound JSON to validated model values and merges
// partial updates onto existing ones. Validation is schema-driven via
// goskema; every failure is reported per field.
package schema

import (
	"fmt"
	"sort"
	"strings"

	goskema "github.com/reoring/goskema"
)

// ValidationError maps each offending field to its human-readable reasons.
// Problems not attributable to a single field are reported under "_schema".
type ValidationError struct {
	Fields map[string][]string `json:"-"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed for: %s", strings.Join(names, ", "))
}

// fromIssues converts goskema issues into a ValidationError. Non-issue
// errors pass through untouched.
func fromIssues(err error) error {
	iss, ok := goskema.AsIssues(err)
	if !ok {
		return err
	}
	fields := make(map[string][]string, len(iss))
	for _, issue := range iss {
		msg := issue.Message
		if msg == "" {
			msg = issue.Code
		}
		name := fieldName(issue.Path)
		fields[name] = append(fields[name], msg)
	}
	return &ValidationError{Fields: fields}
}

// fieldName reduces a JSON-Pointer path to its top-level field
func fieldName(path string) string {
	p := strings.TrimPrefix(path, "/")
	if p == "" {
		return "_schema"
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// seen reports whether the field at path appeared in the input
func seen(pm goskema.PresenceMap, path string) bool {
	return pm[path]&goskema.PresenceSeen != 0
}

func optString(v any) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

func optInt(v any) *int {
	if v == nil {
		return nil
	}
	n := v.(int)
	return &n
}
