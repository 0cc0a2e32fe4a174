package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixture() []domain.Person {
	return []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40",
			"alexyeoh", "alex-yeoh", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "", "", "",
			[]domain.Tag{"friends", "colleagues"}).WithPin(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"out.csv":        FormatCSV,
		"out.CSV":        FormatCSV,
		"out.yaml":       FormatYAML,
		"dir/out.YML":    FormatYAML,
		"no-extension":   FormatCSV,
		"archive.tar.gz": FormatCSV,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFor(path), path)
	}
}

func TestWriteCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fixture()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "contacts_csv", buf.Bytes())
}

func TestWriteCSVEmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "name,phone,email,address,telegram,github,tags,pinned,pinned_at\n", buf.String())
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, fixture()))

	var got []record.Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(record.FromPersons(fixture()), got); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "- name: Alex Yeoh")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	require.Error(t, Write(&bytes.Buffer{}, Format("xml"), fixture()))
}

func TestFileExporterCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter()

	csvPath := filepath.Join(dir, "a", "b", "contacts.csv")
	require.NoError(t, exporter.Export(csvPath, fixture()))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alex Yeoh,87438807")

	yamlPath := filepath.Join(dir, "contacts.yml")
	require.NoError(t, exporter.Export(yamlPath, fixture()))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pinned_at:")
	assert.Contains(t, string(data), "2024-03-01T09:30:00Z")
}

func TestFileExporterReportsWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := NewFileExporter().Export(filepath.Join(blocker, "contacts.csv"), fixture())
	require.Error(t, err)
}
