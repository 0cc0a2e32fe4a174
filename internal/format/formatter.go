// Package format provides output formatting for the contact list printed by
// the line-oriented shells.
package format

import (
	"io"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatPersons writes the displayed persons, numbered from 1, to writer.
	FormatPersons(persons []domain.Person, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one numbered line per person with every field.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays persons in a table format with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays persons in JSON format.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	case FormatterTypeTable:
		return NewTableFormatter()
	default:
		// Default to table formatter for unknown types
		return NewTableFormatter()
	}
}
