// Package trie provides a byte-keyed prefix tree used for command-word completion.
package trie

// alphabetSize covers every extended-ASCII byte value.
const alphabetSize = 256

type node struct {
	children [alphabetSize]*node
	terminal bool
}

// Trie is a 256-way prefix tree over raw bytes.
// The zero value is not usable; create one with New.
type Trie struct {
	root *node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds word to the trie. Inserting the same word twice is a no-op.
func (t *Trie) Insert(word string) {
	cur := t.root
	for i := 0; i < len(word); i++ {
		b := word[i]
		if cur.children[b] == nil {
			cur.children[b] = &node{}
		}
		cur = cur.children[b]
	}
	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
}

// InsertAll inserts every word in words.
func (t *Trie) InsertAll(words []string) {
	for _, w := range words {
		t.Insert(w)
	}
}

// PrefixMatches returns every inserted word starting with prefix,
// in ascending byte order. The result is empty, never nil, when nothing matches.
func (t *Trie) PrefixMatches(prefix string) []string {
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		cur = cur.children[prefix[i]]
		if cur == nil {
			return []string{}
		}
	}

	matches := []string{}
	collect(cur, []byte(prefix), &matches)
	return matches
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	cur := t.root
	for i := 0; i < len(word); i++ {
		cur = cur.children[word[i]]
		if cur == nil {
			return false
		}
	}
	return cur.terminal
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.size
}

// Clear removes every word.
func (t *Trie) Clear() {
	t.root = &node{}
	t.size = 0
}

// collect walks n depth-first, visiting children in ascending index order.
// buf is reused across siblings; words are copied out at terminal nodes.
func collect(n *node, buf []byte, out *[]string) {
	if n.terminal {
		*out = append(*out, string(buf))
	}
	for i := 0; i < alphabetSize; i++ {
		child := n.children[i]
		if child == nil {
			continue
		}
		collect(child, append(buf, byte(i)), out)
	}
}
