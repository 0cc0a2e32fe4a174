package storage

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/storage/sqlite"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePersons() []domain.Person {
	return []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29",
			"alexyeoh", "alex-yeoh", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "", "", "",
			[]domain.Tag{"colleagues", "friends"}).WithPin(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
		domain.NewPerson("Charlotte Oliveiro", "93210283", "charlotte@example.com", "", "", "", nil),
	}
}

func quiet(t *testing.T) {
	t.Helper()
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contacts.json")
	s, err := NewFileStorage(path)
	require.NoError(t, err)

	want := samplePersons()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FileModeFile), info.Mode().Perm())
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock should be released")
}

func TestFileStorageMissingAndEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	s, err := NewFileStorage(path)
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStorageSaveReplaces(t *testing.T) {
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "contacts.json"))
	require.NoError(t, err)

	require.NoError(t, s.Save(samplePersons()))
	require.NoError(t, s.Save(samplePersons()[:1]))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Name("Alex Yeoh"), got[0].Name)
}

func TestFileStorageCorruptData(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{persons"},
		{"invalid phone", `{"version":1,"persons":[{"name":"Amy","phone":"x","email":"amy@example.com"}]}`},
		{"duplicate", `{"version":1,"persons":[
			{"name":"Amy","phone":"123","email":"amy@example.com"},
			{"name":"AMY","phone":"456","email":"amy2@example.com"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contacts.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			s, err := NewFileStorage(path)
			require.NoError(t, err)

			_, err = s.Load()
			require.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestNewFileStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewFileStorage("  ")
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestLockIsExclusive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "contacts.json.lock")
	first := NewLock(dir)
	require.NoError(t, first.Acquire())

	second := NewLock(dir)
	second.timeout = 150 * time.Millisecond
	err := second.Acquire()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "held by another process")

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())
}

func TestWithLockSerialisesWriters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lock")
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithLock(dir, func() error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()
				time.Sleep(10 * time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestNewForBackend(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "contacts.json")
	dbPath := filepath.Join(dir, "contacts.db")

	s, err := NewForBackend("json", dataFile, dbPath)
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	s, err = NewForBackend("bogus", dataFile, dbPath)
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	s, err = NewForBackend(" SQLite ", dataFile, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.IsType(t, &sqlite.SQLiteStorage{}, s)
}

func TestSQLiteBackendMigratesJSONData(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "contacts.json")
	dbPath := filepath.Join(dir, "contacts.db")

	jsonStore, err := NewFileStorage(dataFile)
	require.NoError(t, err)
	require.NoError(t, jsonStore.Save(samplePersons()))

	s, err := NewForBackend(BackendSQLite, dataFile, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.IsType(t, &sqlite.SQLiteStorage{}, s)

	got, err := s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(samplePersons(), got); diff != "" {
		t.Errorf("migrated contacts mismatch (-want +got):\n%s", diff)
	}
	_, err = os.Stat(dataFile + migrationBackupSuffix)
	assert.NoError(t, err, "backup should be kept")
}

func TestFailedMigrationRollsBackAndFallsBack(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "contacts.json")
	dbPath := filepath.Join(dir, "contacts.db")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"version":1,"persons":[{"name":"","phone":"1","email":"x"}]}`), 0600))

	s, err := NewForBackend(BackendSQLite, dataFile, dbPath)
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "partial database should be removed")
}

func TestMigrationRollbackIsCalledOnFailure(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "contacts.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"version":1,"persons":[]}`), 0600))

	origMigrate, origRollback := migrateJSONToSQLite, rollbackJSONMigration
	t.Cleanup(func() { migrateJSONToSQLite, rollbackJSONMigration = origMigrate, origRollback })

	rolledBack := false
	migrateJSONToSQLite = func(string, string) (MigrationStats, error) {
		return MigrationStats{}, assert.AnError
	}
	rollbackJSONMigration = func(string, string) error {
		rolledBack = true
		return nil
	}

	err := maybeMigrateJSONToSQLite(dataFile, filepath.Join(dir, "contacts.db"))
	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, rolledBack)
}

func TestMigrationSkippedWhenDatabaseExists(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "contacts.db")
	require.NoError(t, os.WriteFile(dbPath, nil, 0600))

	origMigrate := migrateJSONToSQLite
	t.Cleanup(func() { migrateJSONToSQLite = origMigrate })
	migrateJSONToSQLite = func(string, string) (MigrationStats, error) {
		t.Fatal("migration should not run")
		return MigrationStats{}, nil
	}

	require.NoError(t, maybeMigrateJSONToSQLite(filepath.Join(dir, "contacts.json"), dbPath))
}
