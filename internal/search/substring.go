package search

import (
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

// SubstringProvider provides substring-based search.
// Matches if any configured field contains the query as a substring.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(person domain.Person, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	// Prepare query based on case sensitivity
	searchQuery := query
	if p.opts.CaseInsensitive {
		searchQuery = strings.ToLower(query)
	}

	for _, field := range p.opts.Fields {
		for _, fieldValue := range fieldValues(person, field) {
			// Skip empty fields
			if fieldValue == "" {
				continue
			}

			if p.opts.CaseInsensitive {
				fieldValue = strings.ToLower(fieldValue)
			}

			if strings.Contains(fieldValue, searchQuery) {
				return true
			}
		}
	}

	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
