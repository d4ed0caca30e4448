package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MetaFields holds per-field problems on errors built by ValidationBuilder
const MetaFields = "fields"

// ValidationBuilder collects per-field problems, typically for component
// configs, and builds a single InvalidArgument error
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// PositiveField records a problem when value is not strictly positive
func (vb *ValidationBuilder) PositiveField(field string, value int64) *ValidationBuilder {
	if value <= 0 {
		vb.Field(field, "must be positive")
	}
	return vb
}

// Build returns nil when nothing was recorded. Otherwise the message lists
// fields in sorted order and the map is attached under MetaFields.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + strings.Join(vb.fields[name], ", ")
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(MetaFields, vb.fields)
}
