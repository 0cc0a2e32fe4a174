// Package export writes contact lists to CSV and YAML files.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/logging"
)

// Format is an export file format.
type Format string

const (
	// FormatCSV writes one header row and one row per person.
	FormatCSV Format = "csv"
	// FormatYAML writes a YAML sequence of contacts.
	FormatYAML Format = "yaml"
)

const (
	fileModeDir  = 0755
	fileModeFile = 0644
)

// FormatFor picks the format from the file extension. Anything but
// .yaml or .yml is CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Write encodes persons to w in the given format.
func Write(w io.Writer, format Format, persons []domain.Person) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, persons)
	case FormatYAML:
		return WriteYAML(w, persons)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// FileExporter writes exports to the filesystem.
type FileExporter struct {
	logger logging.Logger
}

// NewFileExporter returns an exporter logging through the global logger.
func NewFileExporter() *FileExporter {
	return &FileExporter{logger: logging.With("component", "export")}
}

// Export writes persons to path, creating missing parent directories.
func (e *FileExporter) Export(path string, persons []domain.Person) error {
	format := FormatFor(path)

	var buf bytes.Buffer
	if err := Write(&buf, format, persons); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), fileModeDir); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), fileModeFile); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	e.logger.Info("contacts exported", "format", string(format), "count", len(persons), "file", path)
	return nil
}
