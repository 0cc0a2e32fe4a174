package command

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Argument prefixes.
const (
	PrefixName     = "n/"
	PrefixPhone    = "p/"
	PrefixEmail    = "e/"
	PrefixAddress  = "a/"
	PrefixTelegram = "h/"
	PrefixGitHub   = "g/"
	PrefixTag      = "t/"
	PrefixOldTag   = "o/"
)

// ArgMultimap holds the values found after each prefix in an argument
// string, in order of appearance, plus the text before the first prefix.
type ArgMultimap struct {
	preamble string
	values   map[string][]string
}

type prefixPosition struct {
	prefix string
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// is preceded by whitespace; args normally starts with the space that
// followed the command word.
func Tokenize(args string, prefixes ...string) ArgMultimap {
	var positions []prefixPosition
	for _, prefix := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], prefix)
			if i < 0 {
				break
			}
			at := from + i
			if at > 0 && unicode.IsSpace(rune(args[at-1])) {
				positions = append(positions, prefixPosition{prefix: prefix, start: at})
			}
			from = at + 1
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgMultimap{values: make(map[string][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for prefix.
func (m ArgMultimap) Value(prefix string) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for prefix.
func (m ArgMultimap) All(prefix string) []string {
	return m.values[prefix]
}

// Has reports whether prefix appeared at least once.
func (m ArgMultimap) Has(prefix string) bool {
	return len(m.values[prefix]) > 0
}

// VerifyNoDuplicates fails when any of prefixes appeared more than once.
func (m ArgMultimap) VerifyNoDuplicates(prefixes ...string) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) > 0 {
		return NewParseError(MessageDuplicatePrefixes, strings.Join(dups, " "))
	}
	return nil
}

// ParseIndex parses a one-based index.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || strings.HasPrefix(s, "+") {
		return 0, NewParseError(MessageNonPositiveIndex)
	}
	return n, nil
}
