package sqlite

import "errors"

var (
	// ErrEmptyPath indicates an empty database path.
	ErrEmptyPath = errors.New("db path cannot be empty")
	// ErrDuplicatePerson indicates two persons with the same case-folded name in one save.
	ErrDuplicatePerson = errors.New("duplicate person")
	// ErrInvalidRow indicates a stored row that no longer decodes into a contact.
	ErrInvalidRow = errors.New("invalid contact row")
)
