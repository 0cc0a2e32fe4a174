package export

import (
	"io"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes persons as a YAML sequence.
func WriteYAML(w io.Writer, persons []domain.Person) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(record.FromPersons(persons)); err != nil {
		return err
	}
	return enc.Close()
}
