package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/storage/record"
)

// TagSeparator joins tags inside the single CSV tags column.
const TagSeparator = ";"

var csvHeader = []string{"name", "phone", "email", "address", "telegram", "github", "tags", "pinned", "pinned_at"}

// WriteCSV writes a header row followed by one row per person.
func WriteCSV(w io.Writer, persons []domain.Person) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range persons {
		r := record.FromPerson(p)
		row := []string{
			r.Name,
			r.Phone,
			r.Email,
			r.Address,
			r.Telegram,
			r.GitHub,
			strings.Join(r.Tags, TagSeparator),
			strconv.FormatBool(r.Pinned),
			r.PinnedAt,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
