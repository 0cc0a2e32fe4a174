package command

import (
	"fmt"
	"sort"
	"strings"
)

// Factory parses the argument text that followed a command word.
// args keeps its leading whitespace.
type Factory func(args string) (Command, error)

// HelpEntry documents a command.
type HelpEntry struct {
	Word        string
	Description string
	Usage       string
	Example     string
}

type registration struct {
	factory Factory
	help    HelpEntry
}

// Registry maps command words to argument parsers and help text.
// Create one per session with NewRegistry; it is not shared globally.
type Registry struct {
	entries map[string]registration
}

// NewRegistry returns a registry holding every built-in command.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]registration)}
	r.registerBuiltins()
	return r
}

// Register adds a command word. Panics if word is already registered.
func (r *Registry) Register(help HelpEntry, factory Factory) {
	if _, exists := r.entries[help.Word]; exists {
		panic(fmt.Sprintf("command already registered: %s", help.Word))
	}
	r.entries[help.Word] = registration{factory: factory, help: help}
}

// Lookup returns the factory for word.
func (r *Registry) Lookup(word string) (Factory, bool) {
	reg, ok := r.entries[word]
	return reg.factory, ok
}

// Help returns the help entry for word.
func (r *Registry) Help(word string) (HelpEntry, bool) {
	reg, ok := r.entries[word]
	return reg.help, ok
}

// Words returns every registered command word, sorted.
func (r *Registry) Words() []string {
	words := make([]string, 0, len(r.entries))
	for w := range r.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// AllHelp returns every help entry, sorted by word.
func (r *Registry) AllHelp() []HelpEntry {
	words := r.Words()
	entries := make([]HelpEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, r.entries[w].help)
	}
	return entries
}

// String formats the usage block for one entry.
func (h HelpEntry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", h.Word, h.Description)
	fmt.Fprintf(&sb, "Parameters: %s\n", h.Usage)
	fmt.Fprintf(&sb, "Example: %s", h.Example)
	return sb.String()
}

// HelpText formats the command reference shown by "help".
func (r *Registry) HelpText() string {
	var lines []string
	for _, h := range r.AllHelp() {
		lines = append(lines, fmt.Sprintf("    %-8s %s", h.Word, h.Description))
	}
	return "COMMANDS:\n" + strings.Join(lines, "\n")
}

// formatError builds the invalid-format error carrying word's usage.
func (r *Registry) formatError(word string) error {
	h, ok := r.Help(word)
	if !ok {
		return NewParseError(MessageInvalidCommandFormat, "")
	}
	return NewParseError(MessageInvalidCommandFormat, h.String())
}

func (r *Registry) registerBuiltins() {
	r.Register(HelpEntry{
		Word:        WordAdd,
		Description: "Adds a person to the address book.",
		Usage:       "n/NAME p/PHONE e/EMAIL [a/ADDRESS] [h/TELEGRAM] [g/GITHUB] [t/TAG]...",
		Example:     "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 h/johndoe g/johnd t/friends",
	}, r.parseAdd)
	r.Register(HelpEntry{
		Word:        WordDelete,
		Description: "Deletes the person identified by the index number used in the displayed person list.",
		Usage:       "INDEX (must be a positive integer)",
		Example:     "delete 1",
	}, r.parseDelete)
	r.Register(HelpEntry{
		Word:        WordEdit,
		Description: "Edits the details of the person identified by the index number used in the displayed person list.",
		Usage:       "INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [h/TELEGRAM] [g/GITHUB] [t/TAG]...",
		Example:     "edit 1 p/91234567 e/johndoe@example.com",
	}, r.parseEdit)
	r.Register(HelpEntry{
		Word:        WordFind,
		Description: "Finds all persons whose names contain any of the keywords (-t: tags, -s: text in any field).",
		Usage:       "[-t|-s] KEYWORD [MORE_KEYWORDS]...",
		Example:     "find alice bob",
	}, r.parseFind)
	r.Register(HelpEntry{
		Word:        WordList,
		Description: "Lists all persons in the order they were added.",
		Usage:       "(none)",
		Example:     "list",
	}, r.parseNoArgs(WordList, List{}))
	r.Register(HelpEntry{
		Word:        WordSort,
		Description: "Sorts the displayed persons alphabetically (-a) or by most recently added (-r).",
		Usage:       "-a|-r",
		Example:     "sort -a",
	}, r.parseSort)
	r.Register(HelpEntry{
		Word:        WordPin,
		Description: "Pins the person identified by the index number to the top of the list.",
		Usage:       "INDEX (must be a positive integer)",
		Example:     "pin 2",
	}, r.parseIndexed(WordPin, func(i int) Command { return Pin{Index: i} }))
	r.Register(HelpEntry{
		Word:        WordUnpin,
		Description: "Unpins the person identified by the index number.",
		Usage:       "INDEX (must be a positive integer)",
		Example:     "unpin 1",
	}, r.parseIndexed(WordUnpin, func(i int) Command { return Unpin{Index: i} }))
	r.Register(HelpEntry{
		Word:        WordTag,
		Description: "Renames a tag on every person that has it.",
		Usage:       "o/OLD_TAG n/NEW_TAG",
		Example:     "tag o/colleagues n/work",
	}, r.parseRenameTag)
	r.Register(HelpEntry{
		Word:        WordClear,
		Description: "Clears all persons from the address book.",
		Usage:       "(none)",
		Example:     "clear",
	}, r.parseNoArgs(WordClear, Clear{}))
	r.Register(HelpEntry{
		Word:        WordExport,
		Description: "Exports all persons to a CSV or YAML file.",
		Usage:       "[PATH ending in .csv, .yaml or .yml]",
		Example:     "export contacts.yaml",
	}, r.parseExport)
	r.Register(HelpEntry{
		Word:        WordHelp,
		Description: "Shows the command reference, or the usage of one command.",
		Usage:       "[COMMAND]",
		Example:     "help add",
	}, r.parseHelp)
	r.Register(HelpEntry{
		Word:        WordExit,
		Description: "Exits the program.",
		Usage:       "(none)",
		Example:     "exit",
	}, r.parseNoArgs(WordExit, Exit{}))
}
