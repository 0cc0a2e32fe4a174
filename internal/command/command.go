// Package command defines the commands a user can type, the registry that
// maps command words to argument parsers, and the single dispatch function
// that executes a parsed command against the contacts model.
package command

import (
	"github.com/cristianoliveira/rolodex/internal/domain"
)

// Command words.
const (
	WordAdd     = "add"
	WordDelete  = "delete"
	WordEdit    = "edit"
	WordFind    = "find"
	WordList    = "list"
	WordSort    = "sort"
	WordPin     = "pin"
	WordUnpin   = "unpin"
	WordTag     = "tag"
	WordClear   = "clear"
	WordExport  = "export"
	WordHelp    = "help"
	WordExit    = "exit"
	wordConfirm = "confirm"
)

// Command is a parsed user instruction. The set of implementations is
// closed; Execute dispatches over all of them.
type Command interface {
	// Word returns the command word the command was parsed from.
	Word() string
	// RequiresWrite reports whether contacts must be saved after the command completes.
	RequiresWrite() bool

	sealed()
}

// Add stores a new person.
type Add struct {
	Person domain.Person
}

// Delete removes the person at a one-based view index, after confirmation.
type Delete struct {
	Index int
}

// Edit replaces fields of the person at a one-based view index.
type Edit struct {
	Index  int
	Fields EditFields
}

// EditFields lists the fields to change. A nil field is left untouched.
// Empty optional fields (address, handles) clear them; an empty Tags slice removes every tag.
type EditFields struct {
	Name     *domain.Name
	Phone    *domain.Phone
	Email    *domain.Email
	Address  *domain.Address
	Telegram *domain.Telegram
	GitHub   *domain.GitHub
	Tags     *[]domain.Tag
}

// IsEmpty reports whether no field is set.
func (f EditFields) IsEmpty() bool {
	return f.Name == nil && f.Phone == nil && f.Email == nil && f.Address == nil &&
		f.Telegram == nil && f.GitHub == nil && f.Tags == nil
}

// Apply returns a copy of p with the set fields replaced. Pin state is kept.
func (f EditFields) Apply(p domain.Person) domain.Person {
	edited := p
	if f.Name != nil {
		edited.Name = *f.Name
	}
	if f.Phone != nil {
		edited.Phone = *f.Phone
	}
	if f.Email != nil {
		edited.Email = *f.Email
	}
	if f.Address != nil {
		edited.Address = *f.Address
	}
	if f.Telegram != nil {
		edited.Telegram = *f.Telegram
	}
	if f.GitHub != nil {
		edited.GitHub = *f.GitHub
	}
	if f.Tags != nil {
		edited = edited.WithTags(*f.Tags)
	}
	return edited
}

// FindMode selects how Find matches keywords.
type FindMode int

const (
	// FindByName matches whole words of the name.
	FindByName FindMode = iota
	// FindByTag matches tag names.
	FindByTag
	// FindAnywhere matches a substring of any field.
	FindAnywhere
)

// Find narrows the view to matching persons.
type Find struct {
	Mode     FindMode
	Keywords []string
}

// List shows every person in insertion order.
type List struct{}

// Sort selects the secondary ordering of the view.
type Sort struct {
	Order domain.SortOrder
}

// Pin pins the person at a one-based view index.
type Pin struct {
	Index int
}

// Unpin unpins the person at a one-based view index.
type Unpin struct {
	Index int
}

// RenameTag renames a tag on every person carrying it.
type RenameTag struct {
	Old domain.Tag
	New domain.Tag
}

// Clear removes every person, after confirmation.
type Clear struct{}

// Export writes every person to a file. An empty Path selects the default.
type Export struct {
	Path string
}

// Help shows usage for one command, or for all when Topic is empty.
type Help struct {
	Topic string
}

// Exit ends the session.
type Exit struct{}

// Confirm answers a pending confirmation.
type Confirm struct {
	Input   string
	Pending *Pending

	onComplete func()
}

func (Add) Word() string       { return WordAdd }
func (Delete) Word() string    { return WordDelete }
func (Edit) Word() string      { return WordEdit }
func (Find) Word() string      { return WordFind }
func (List) Word() string      { return WordList }
func (Sort) Word() string      { return WordSort }
func (Pin) Word() string       { return WordPin }
func (Unpin) Word() string     { return WordUnpin }
func (RenameTag) Word() string { return WordTag }
func (Clear) Word() string     { return WordClear }
func (Export) Word() string    { return WordExport }
func (Help) Word() string      { return WordHelp }
func (Exit) Word() string      { return WordExit }
func (Confirm) Word() string   { return wordConfirm }

func (Add) RequiresWrite() bool       { return true }
func (Delete) RequiresWrite() bool    { return true }
func (Edit) RequiresWrite() bool      { return true }
func (Find) RequiresWrite() bool      { return false }
func (List) RequiresWrite() bool      { return false }
func (Sort) RequiresWrite() bool      { return false }
func (Pin) RequiresWrite() bool       { return true }
func (Unpin) RequiresWrite() bool     { return true }
func (RenameTag) RequiresWrite() bool { return true }
func (Clear) RequiresWrite() bool     { return true }
func (Export) RequiresWrite() bool    { return false }
func (Help) RequiresWrite() bool      { return false }
func (Exit) RequiresWrite() bool      { return false }

// RequiresWrite is true for both answers: a cancelled confirmation still
// completes the pending operation's lifecycle and is saved like any other.
func (Confirm) RequiresWrite() bool { return true }

func (Add) sealed()       {}
func (Delete) sealed()    {}
func (Edit) sealed()      {}
func (Find) sealed()      {}
func (List) sealed()      {}
func (Sort) sealed()      {}
func (Pin) sealed()       {}
func (Unpin) sealed()     {}
func (RenameTag) sealed() {}
func (Clear) sealed()     {}
func (Export) sealed()    {}
func (Help) sealed()      {}
func (Exit) sealed()      {}
func (Confirm) sealed()   {}
