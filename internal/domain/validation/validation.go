package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Violations maps a field name to a human-readable message. A validator
// fills it in a single pass so the caller sees every broken field at once.
type Violations map[string]string

func (v Violations) Add(field, format string, args ...any) {
	v[field] = fmt.Sprintf(format, args...)
}

// Err returns nil when no field was violated, otherwise an *Error
// carrying the full mapping.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &Error{Violations: v}
}

// Error is the structured validation failure surfaced to the boundary.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Violations[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
