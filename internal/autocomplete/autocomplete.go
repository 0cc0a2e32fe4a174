// Package autocomplete suggests command words for partially typed input.
package autocomplete

import (
	"strings"

	"github.com/cristianoliveira/rolodex/internal/trie"
)

// Autocompletor completes command words from a fixed corpus.
type Autocompletor struct {
	trie *trie.Trie
}

// New builds an Autocompletor over words.
func New(words []string) *Autocompletor {
	t := trie.New()
	t.InsertAll(words)
	return &Autocompletor{trie: t}
}

// Hint returns the lexicographically first word starting with input,
// or an empty string when input is empty or nothing matches.
func (a *Autocompletor) Hint(input string) string {
	if input == "" {
		return ""
	}
	matches := a.trie.PrefixMatches(input)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// Suggestions returns every word starting with input.
func (a *Autocompletor) Suggestions(input string) []string {
	return a.trie.PrefixMatches(input)
}

// Do implements readline.AutoCompleter. Only the command word (the text
// before the first space) is completed; candidates are returned as the
// suffix still to be typed.
func (a *Autocompletor) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos > len(line) {
		pos = len(line)
	}
	typed := string(line[:pos])
	if strings.ContainsAny(typed, " \t") {
		return nil, 0
	}
	for _, m := range a.trie.PrefixMatches(typed) {
		newLine = append(newLine, []rune(m[len(typed):]))
	}
	return newLine, len([]rune(typed))
}
