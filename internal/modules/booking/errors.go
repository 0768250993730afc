package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid appointment status")

// ValidationErrors collects every violation of one submission keyed by
// field, so the client sees all problems at once instead of the first.
type ValidationErrors struct {
	Fields map[string][]string
}

func newValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

func (e *ValidationErrors) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationErrors) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationErrors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationErrors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
