// Package sqlite provides a SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/logging"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
	_ "modernc.org/sqlite"
)

// SQLiteStorage implements the storage.Storage interface using SQLite.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a SQLite-backed storage at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: %w", ErrEmptyPath)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db, path: dbPath}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Path returns the database file location.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("sqlite storage: enable foreign keys: %w", err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// Load returns every stored person in list order.
func (s *SQLiteStorage) Load() ([]domain.Person, error) {
	ctx := context.Background()

	records, positions, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, records, positions); err != nil {
		return nil, err
	}

	persons, err := record.ToPersons(records)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: %w: %v", ErrInvalidRow, err)
	}
	logging.Debug("contacts loaded", "backend", "sqlite", "count", len(persons))
	return persons, nil
}

func (s *SQLiteStorage) loadRecords(ctx context.Context) ([]record.Record, map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx, selectPersonsSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite storage: list persons: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	positions := make(map[int64]int)
	for rows.Next() {
		var (
			position int64
			pinned   int
			r        record.Record
		)
		if err := rows.Scan(&position, &r.Name, &r.Phone, &r.Email, &r.Address, &r.Telegram, &r.GitHub, &pinned, &r.PinnedAt); err != nil {
			return nil, nil, fmt.Errorf("sqlite storage: scan person: %w", err)
		}
		r.Pinned = pinned == 1
		positions[position] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("sqlite storage: list persons: %w", err)
	}
	return records, positions, nil
}

func (s *SQLiteStorage) loadTags(ctx context.Context, records []record.Record, positions map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, selectTagsSQL)
	if err != nil {
		return fmt.Errorf("sqlite storage: list tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			position int64
			tag      string
		)
		if err := rows.Scan(&position, &tag); err != nil {
			return fmt.Errorf("sqlite storage: scan tag: %w", err)
		}
		i, ok := positions[position]
		if !ok {
			return fmt.Errorf("sqlite storage: %w: tag %q for missing position %d", ErrInvalidRow, tag, position)
		}
		records[i].Tags = append(records[i].Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite storage: list tags: %w", err)
	}
	return nil
}

// Save replaces every stored person inside one transaction.
func (s *SQLiteStorage) Save(persons []domain.Person) (err error) {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM person_tags"); err != nil {
		return fmt.Errorf("sqlite storage: clear tags: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM persons"); err != nil {
		return fmt.Errorf("sqlite storage: clear persons: %w", err)
	}

	seen := make(map[string]bool, len(persons))
	for i, p := range persons {
		if seen[p.Key()] {
			return fmt.Errorf("sqlite storage: %w: %q", ErrDuplicatePerson, p.Name)
		}
		seen[p.Key()] = true

		r := record.FromPerson(p)
		if _, err = tx.ExecContext(ctx, insertPersonSQL,
			i, r.Name, p.Key(), r.Phone, r.Email, r.Address, r.Telegram, r.GitHub, boolToInt(r.Pinned), r.PinnedAt,
		); err != nil {
			return fmt.Errorf("sqlite storage: insert person %q: %w", r.Name, err)
		}
		for _, tag := range r.Tags {
			if _, err = tx.ExecContext(ctx, insertTagSQL, i, tag); err != nil {
				return fmt.Errorf("sqlite storage: insert tag %q: %w", tag, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit save: %w", err)
	}
	logging.Debug("contacts saved", "backend", "sqlite", "count", len(persons))
	return nil
}

// Count returns the number of stored persons.
func (s *SQLiteStorage) Count() (int, error) {
	var n int
	err := s.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM persons").Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: count persons: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
