package record

import (
	"errors"
	"testing"
	"time"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	pinnedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	p := domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29",
		"alexyeoh", "alex-yeoh", []domain.Tag{"friends", "colleagues"}).WithPin(pinnedAt)

	r := FromPerson(p)
	assert.Equal(t, []string{"colleagues", "friends"}, r.Tags)
	assert.Equal(t, "2024-03-01T09:30:00Z", r.PinnedAt)

	got, err := r.ToPerson()
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

func TestOptionalFieldsStayEmpty(t *testing.T) {
	got, err := Record{Name: "Bernice Yu", Phone: "99272758", Email: "berniceyu@example.com"}.ToPerson()
	require.NoError(t, err)
	assert.Empty(t, got.Address)
	assert.Empty(t, got.Telegram)
	assert.Empty(t, got.Tags)
	assert.False(t, got.Pinned)
}

func TestToPersonRejectsInvalidFields(t *testing.T) {
	valid := Record{Name: "Bernice Yu", Phone: "99272758", Email: "berniceyu@example.com"}

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"blank name", func(r *Record) { r.Name = " " }},
		{"short phone", func(r *Record) { r.Phone = "12" }},
		{"bad email", func(r *Record) { r.Email = "nope" }},
		{"blank address", func(r *Record) { r.Address = "   " }},
		{"short telegram", func(r *Record) { r.Telegram = "abc" }},
		{"github hyphen", func(r *Record) { r.GitHub = "-abc" }},
		{"bad tag", func(r *Record) { r.Tags = []string{"best friend"} }},
		{"pinned without time", func(r *Record) { r.Pinned = true }},
		{"pinned at zero time", func(r *Record) {
			r.Pinned = true
			r.PinnedAt = "0001-01-01T00:00:00Z"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			_, err := r.ToPerson()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRecord))
		})
	}
}

func TestToPersonsRejectsDuplicates(t *testing.T) {
	records := []Record{
		{Name: "Alex Yeoh", Phone: "87438807", Email: "alex@example.com"},
		{Name: "alex yeoh", Phone: "99272758", Email: "other@example.com"},
	}
	_, err := ToPersons(records)
	require.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "record 1")
}

func TestFromPersonsKeepsOrder(t *testing.T) {
	persons := []domain.Person{
		domain.NewPerson("Zed", "123", "z@example.com", "", "", "", nil),
		domain.NewPerson("Amy", "456", "a@example.com", "", "", "", nil),
	}
	records := FromPersons(persons)
	require.Len(t, records, 2)
	assert.Equal(t, "Zed", records[0].Name)
	assert.Equal(t, "Amy", records[1].Name)
}
