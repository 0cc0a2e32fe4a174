package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/storage/sqlite"
)

const migrationBackupSuffix = ".sqlite-migration.bak"

// MigrationStats summarises a JSON to SQLite migration.
type MigrationStats struct {
	MigratedRows int
}

// MigrateJSONToSQLite copies every contact of the JSON file into a new
// SQLite database. The JSON file is backed up first and left in place.
func MigrateJSONToSQLite(jsonPath, sqlitePath string) (MigrationStats, error) {
	if err := copyFile(jsonPath, jsonPath+migrationBackupSuffix); err != nil {
		return MigrationStats{}, fmt.Errorf("backup json data: %w", err)
	}

	source, err := NewFileStorage(jsonPath)
	if err != nil {
		return MigrationStats{}, err
	}
	persons, err := source.Load()
	if err != nil {
		return MigrationStats{}, err
	}

	target, err := sqlite.NewSQLiteStorage(sqlitePath)
	if err != nil {
		return MigrationStats{}, err
	}
	defer target.Close()

	if err := target.Save(persons); err != nil {
		return MigrationStats{}, err
	}
	count, err := target.Count()
	if err != nil {
		return MigrationStats{}, err
	}
	if count != len(persons) {
		return MigrationStats{}, fmt.Errorf("verify migration: expected %d rows, found %d", len(persons), count)
	}
	return MigrationStats{MigratedRows: count}, nil
}

// RollbackJSONMigration removes a partially written database and restores
// the JSON file from its backup.
func RollbackJSONMigration(jsonPath, sqlitePath string) error {
	if err := os.Remove(sqlitePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove sqlite database: %w", err)
	}
	backupPath := jsonPath + migrationBackupSuffix
	exists, err := pathExists(backupPath)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := copyFile(backupPath, jsonPath); err != nil {
		return fmt.Errorf("restore json backup: %w", err)
	}
	return nil
}

var migrateJSONToSQLite = MigrateJSONToSQLite
var rollbackJSONMigration = RollbackJSONMigration

func maybeMigrateJSONToSQLite(jsonPath, sqlitePath string) error {
	dbExists, err := pathExists(sqlitePath)
	if err != nil {
		return fmt.Errorf("check sqlite database path: %w", err)
	}
	if dbExists {
		return nil
	}

	hasJSONData, err := fileHasContent(jsonPath)
	if err != nil {
		return fmt.Errorf("check json data: %w", err)
	}
	if !hasJSONData {
		return nil
	}

	colors.Info("Detected JSON contacts. Starting SQLite migration...")
	stats, migrateErr := migrateJSONToSQLite(jsonPath, sqlitePath)
	if migrateErr != nil {
		if rollbackErr := rollbackJSONMigration(jsonPath, sqlitePath); rollbackErr != nil {
			return fmt.Errorf("migrate json to sqlite: %w (rollback failed: %v)", migrateErr, rollbackErr)
		}
		return fmt.Errorf("migrate json to sqlite: %w", migrateErr)
	}

	colors.Success(fmt.Sprintf("SQLite migration complete: %d contacts migrated", stats.MigratedRows))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileModeFile)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
