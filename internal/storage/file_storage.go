package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/logging"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
)

const documentVersion = 1

// document is the on-disk JSON layout.
type document struct {
	Version int             `json:"version"`
	Persons []record.Record `json:"persons"`
}

// FileStorage stores contacts in a single JSON file.
type FileStorage struct {
	path    string
	lockDir string
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a JSON file storage at path, creating its directory.
func NewFileStorage(path string) (*FileStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file storage: %w: path cannot be empty", ErrInvalidPath)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create data directory: %w", err)
	}
	return &FileStorage{path: path, lockDir: path + ".lock"}, nil
}

// Path returns the data file location.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads every contact. A missing or empty file is an empty list.
func (s *FileStorage) Load() ([]domain.Person, error) {
	var persons []domain.Person
	err := WithLock(s.lockDir, func() error {
		data, err := os.ReadFile(s.path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", s.path, err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}

		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
		}
		persons, err = record.ToPersons(doc.Persons)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("file storage: load: %w", err)
	}
	logging.Debug("contacts loaded", "backend", "json", "count", len(persons))
	return persons, nil
}

// Save atomically replaces the file with persons.
func (s *FileStorage) Save(persons []domain.Person) error {
	data, err := json.MarshalIndent(document{Version: documentVersion, Persons: record.FromPersons(persons)}, "", "  ")
	if err != nil {
		return fmt.Errorf("file storage: encode: %w", err)
	}
	err = WithLock(s.lockDir, func() error {
		return writeFileAtomic(s.path, append(data, '\n'))
	})
	if err != nil {
		return fmt.Errorf("file storage: save: %w", err)
	}
	logging.Debug("contacts saved", "backend", "json", "count", len(persons))
	return nil
}

// Close is a no-op; the file is opened per operation.
func (s *FileStorage) Close() error {
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
