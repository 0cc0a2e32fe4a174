package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/domain"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right, center).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"#":     4,
			"Pin":   3,
			"Name":  24,
			"Phone": 14,
			"Email": 30,
			"Tags":  24,
		},
		ColumnAlignments: map[string]string{
			"#":   "right",
			"Pin": "center",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the cell text from a person and its 1-based index.
	Extractor func(index int, p domain.Person) string
}

// TableFormatter writes persons as aligned columns.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a new TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	column := func(name string, extract func(int, domain.Person) string) TableColumn {
		return TableColumn{
			Name:      name,
			Width:     config.ColumnWidths[name],
			Alignment: config.ColumnAlignments[name],
			Extractor: extract,
		}
	}
	columns := []TableColumn{
		column("#", func(i int, _ domain.Person) string { return fmt.Sprintf("%d", i) }),
		column("Pin", func(_ int, p domain.Person) string {
			if p.Pinned {
				return "*"
			}
			return ""
		}),
		column("Name", func(_ int, p domain.Person) string { return string(p.Name) }),
		column("Phone", func(_ int, p domain.Person) string { return string(p.Phone) }),
		column("Email", func(_ int, p domain.Person) string { return string(p.Email) }),
		column("Tags", func(_ int, p domain.Person) string {
			tags := make([]string, 0, len(p.Tags))
			for _, t := range p.Tags {
				tags = append(tags, string(t))
			}
			return strings.Join(tags, ",")
		}),
	}
	return &TableFormatter{
		config:  config,
		columns: columns,
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatPersons formats persons in a table.
func (f *TableFormatter) FormatPersons(persons []domain.Person, writer io.Writer) error {
	if len(persons) == 0 {
		_, err := fmt.Fprintln(writer, emptyListText)
		return err
	}

	if f.config.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
		if err := f.writeSeparator(writer); err != nil {
			return err
		}
	}

	for i, p := range persons {
		if err := f.writeRow(i+1, p, writer); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes the table header.
func (f *TableFormatter) writeHeader(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(col.Name, col.Width, "left"))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.TrimRight(strings.Join(cells, "  "), " "), colors.Reset)
	return err
}

// writeSeparator writes the table separator.
func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, strings.Repeat("-", col.Width))
	}
	_, err := fmt.Fprintln(writer, strings.Join(cells, "  "))
	return err
}

// writeRow writes a single table row.
func (f *TableFormatter) writeRow(index int, p domain.Person, writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(truncateString(col.Extractor(index, p), col.Width), col.Width, col.Alignment))
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

// formatString pads s to width with the given alignment.
func formatString(s string, width int, alignment string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-n) + s
	case "center":
		left := (width - n) / 2
		right := width - n - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-n)
	}
}

// truncateString truncates s to width runes, adding "..." if truncated.
func truncateString(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	if width < 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
