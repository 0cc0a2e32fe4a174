package search

import (
	"testing"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Test person used across tests
var testPerson = domain.NewPerson(
	"Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6",
	"alice_p", "alicep", []domain.Tag{"friends", "colleagues"},
)

// TestDefaultOptions verifies default option values.
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.CaseInsensitive, "default should be case-insensitive")
	assert.Equal(t, []string{FieldName}, opts.Fields)
}

// TestOptions verifies option application.
func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	WithCaseInsensitive(false)(&opts)
	WithFields([]string{FieldTags})(&opts)

	assert.False(t, opts.CaseInsensitive)
	assert.Equal(t, []string{FieldTags}, opts.Fields)
}

// TestTokenProvider tests whole-word keyword search.
func TestTokenProvider(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		query    string
		expected bool
	}{
		{"single keyword", nil, "Alice", true},
		{"case insensitive", nil, "pAULINE", true},
		{"any keyword matches", nil, "Bob Pauline", true},
		{"partial word does not match", nil, "Ali", false},
		{"empty query matches nothing", nil, "   ", false},
		{"case sensitive miss", []Option{WithCaseInsensitive(false)}, "alice", false},
		{"tags field", []Option{WithFields([]string{FieldTags})}, "FRIENDS", true},
		{"name keyword not in tags", []Option{WithFields([]string{FieldTags})}, "Alice", false},
		{"address words", []Option{WithFields(AllFields)}, "jurong", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTokenProvider(tt.opts...)
			assert.Equal(t, tt.expected, p.Match(testPerson, tt.query))
		})
	}
}

// TestSubstringProvider tests substring-based search.
func TestSubstringProvider(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		query    string
		expected bool
	}{
		{"empty query matches", nil, "", true},
		{"partial name", nil, "pau", true},
		{"phone not searched by default", nil, "9435", false},
		{"phone with all fields", []Option{WithFields(AllFields)}, "9435", true},
		{"email domain", []Option{WithFields(AllFields)}, "example.com", true},
		{"case sensitive miss", []Option{WithCaseInsensitive(false)}, "alice", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSubstringProvider(tt.opts...)
			assert.Equal(t, tt.expected, p.Match(testPerson, tt.query))
		})
	}
}

func TestPredicate(t *testing.T) {
	pred := Predicate(NewTokenProvider(), "alice")
	assert.True(t, pred(testPerson))
	assert.Equal(t, "token", NewTokenProvider().Name())
	assert.Equal(t, "substring", NewSubstringProvider().Name())
}
