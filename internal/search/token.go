package search

import (
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"golang.org/x/text/cases"
)

// TokenProvider provides whole-word search.
// The query is split into whitespace-separated keywords; a person matches
// when any keyword equals any whitespace-separated word of a configured field.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any keyword matches a whole word in any field.
// An empty query matches nothing.
func (p *TokenProvider) Match(person domain.Person, query string) bool {
	keywords := strings.Fields(query)
	if len(keywords) == 0 {
		return false
	}

	normalize := func(s string) string { return s }
	if p.opts.CaseInsensitive {
		folder := cases.Fold()
		normalize = folder.String
	}

	words := make(map[string]bool)
	for _, field := range p.opts.Fields {
		for _, value := range fieldValues(person, field) {
			for _, w := range strings.Fields(value) {
				words[normalize(w)] = true
			}
		}
	}

	for _, k := range keywords {
		if words[normalize(k)] {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
