package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
)

const emptyListText = "No contacts to show."

// SimpleFormatter writes "N. <person>" lines.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatPersons writes one line per person.
func (f *SimpleFormatter) FormatPersons(persons []domain.Person, writer io.Writer) error {
	if len(persons) == 0 {
		_, err := fmt.Fprintln(writer, emptyListText)
		return err
	}
	for i, p := range persons {
		pin := ""
		if p.Pinned {
			pin = " (pinned)"
		}
		if _, err := fmt.Fprintf(writer, "%d. %s%s\n", i+1, p, pin); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter writes the persons as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatPersons encodes persons in their stored form.
func (f *JSONFormatter) FormatPersons(persons []domain.Person, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(record.FromPersons(persons))
}
