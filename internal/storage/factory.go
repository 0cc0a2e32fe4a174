package storage

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/config"
	"github.com/cristianoliveira/rolodex/internal/storage/sqlite"
)

const (
	// BackendJSON selects the JSON file storage.
	BackendJSON = "json"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
)

var _ Storage = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig creates a storage backend from the loaded configuration.
func NewFromConfig() (Storage, error) {
	backend := config.Get("storage_backend", BackendJSON)
	return NewForBackend(backend, config.DataFile(), config.SQLitePath())
}

// NewForBackend creates a storage backend for the provided backend name.
// SQLite failures fall back to the JSON file.
func NewForBackend(backend, dataFile, sqlitePath string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewFileStorage(dataFile)
	case BackendSQLite:
		if err := maybeMigrateJSONToSQLite(dataFile, sqlitePath); err != nil {
			colors.Warning(fmt.Sprintf("sqlite migration failed, falling back to json: %v", err))
			return NewFileStorage(dataFile)
		}

		sqliteStorage, err := sqlite.NewSQLiteStorage(sqlitePath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to json: %v", err))
			return NewFileStorage(dataFile)
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to json", backend))
		return NewFileStorage(dataFile)
	}
}
