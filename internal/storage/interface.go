// Package storage persists the contact list.
package storage

import (
	"errors"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir = 0755
	// FileModeFile is the permission for data files (rw-------)
	FileModeFile = 0600
)

var (
	// ErrInvalidPath indicates an empty or unusable storage location.
	ErrInvalidPath = errors.New("invalid storage path")
	// ErrCorruptData indicates stored data that cannot be decoded into contacts.
	ErrCorruptData = errors.New("corrupt contact data")
)

// Storage defines the interface for contact persistence.
// Save replaces the whole stored list; Load returns it in saved order.
type Storage interface {
	Load() ([]domain.Person, error)
	Save(persons []domain.Person) error
	Close() error
}
