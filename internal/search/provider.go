// Package search provides a unified search abstraction for filtering contacts.
// It supports multiple search strategies (whole-word tokens, substrings)
// through a common Provider interface so the find command and the shells
// share the same matching rules.
package search

import (
	"github.com/cristianoliveira/rolodex/internal/domain"
)

// Field names accepted by WithFields.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldTelegram = "telegram"
	FieldGitHub   = "github"
	FieldTags     = "tags"
)

// AllFields lists every searchable field.
var AllFields = []string{FieldName, FieldPhone, FieldEmail, FieldAddress, FieldTelegram, FieldGitHub, FieldTags}

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the person matches the search query.
	Match(p domain.Person, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in
}

// DefaultOptions returns the default search options: case-insensitive, name only.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldName},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Predicate adapts a provider and query into a domain predicate.
func Predicate(p Provider, query string) domain.Predicate {
	return func(person domain.Person) bool {
		return p.Match(person, query)
	}
}

// fieldValues returns the values of field on person. Tags yield one value per tag.
func fieldValues(person domain.Person, field string) []string {
	switch field {
	case FieldName:
		return []string{string(person.Name)}
	case FieldPhone:
		return []string{string(person.Phone)}
	case FieldEmail:
		return []string{string(person.Email)}
	case FieldAddress:
		return []string{string(person.Address)}
	case FieldTelegram:
		return []string{string(person.Telegram)}
	case FieldGitHub:
		return []string{string(person.GitHub)}
	case FieldTags:
		values := make([]string, len(person.Tags))
		for i, t := range person.Tags {
			values[i] = string(t)
		}
		return values
	default:
		return nil
	}
}
