// Package record defines the flat, serialisable form of a contact shared by
// the storage backends and the exporters.
package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

// TimeLayout is the encoding of PinnedAt.
const TimeLayout = time.RFC3339Nano

// ErrInvalidRecord indicates a stored contact that no longer satisfies the
// field rules.
var ErrInvalidRecord = errors.New("invalid contact record")

// Record is a person with every value object flattened to a string.
type Record struct {
	Name     string   `json:"name" yaml:"name"`
	Phone    string   `json:"phone" yaml:"phone"`
	Email    string   `json:"email" yaml:"email"`
	Address  string   `json:"address,omitempty" yaml:"address,omitempty"`
	Telegram string   `json:"telegram,omitempty" yaml:"telegram,omitempty"`
	GitHub   string   `json:"github,omitempty" yaml:"github,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Pinned   bool     `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	PinnedAt string   `json:"pinned_at,omitempty" yaml:"pinned_at,omitempty"`
}

// FromPerson flattens p.
func FromPerson(p domain.Person) Record {
	r := Record{
		Name:     string(p.Name),
		Phone:    string(p.Phone),
		Email:    string(p.Email),
		Address:  string(p.Address),
		Telegram: string(p.Telegram),
		GitHub:   string(p.GitHub),
		Pinned:   p.Pinned,
	}
	for _, t := range p.Tags {
		r.Tags = append(r.Tags, string(t))
	}
	if p.Pinned {
		r.PinnedAt = p.PinnedAt.UTC().Format(TimeLayout)
	}
	return r
}

// FromPersons flattens every person, keeping order.
func FromPersons(persons []domain.Person) []Record {
	records := make([]Record, 0, len(persons))
	for _, p := range persons {
		records = append(records, FromPerson(p))
	}
	return records
}

// ToPerson validates r against the field rules and rebuilds the person.
func (r Record) ToPerson() (domain.Person, error) {
	name, err := domain.ParseName(r.Name)
	if err != nil {
		return domain.Person{}, invalid(r, err)
	}
	phone, err := domain.ParsePhone(r.Phone)
	if err != nil {
		return domain.Person{}, invalid(r, err)
	}
	email, err := domain.ParseEmail(r.Email)
	if err != nil {
		return domain.Person{}, invalid(r, err)
	}

	var address domain.Address
	if r.Address != "" {
		if address, err = domain.ParseAddress(r.Address); err != nil {
			return domain.Person{}, invalid(r, err)
		}
	}
	var telegram domain.Telegram
	if r.Telegram != "" {
		if telegram, err = domain.ParseTelegram(r.Telegram); err != nil {
			return domain.Person{}, invalid(r, err)
		}
	}
	var github domain.GitHub
	if r.GitHub != "" {
		if github, err = domain.ParseGitHub(r.GitHub); err != nil {
			return domain.Person{}, invalid(r, err)
		}
	}
	tags, err := domain.ParseTags(r.Tags)
	if err != nil {
		return domain.Person{}, invalid(r, err)
	}

	p := domain.NewPerson(name, phone, email, address, telegram, github, tags)
	if !r.Pinned {
		return p, nil
	}
	at, err := time.Parse(TimeLayout, r.PinnedAt)
	if err != nil {
		return domain.Person{}, invalid(r, fmt.Errorf("pinned_at: %w", err))
	}
	if at.IsZero() {
		return domain.Person{}, invalid(r, errors.New("pinned_at: zero time"))
	}
	return p.WithPin(at), nil
}

// ToPersons rebuilds every record, rejecting two records for the same person.
func ToPersons(records []Record) ([]domain.Person, error) {
	persons := make([]domain.Person, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		p, err := r.ToPerson()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if seen[p.Key()] {
			return nil, fmt.Errorf("record %d: %w: duplicate person %q", i, ErrInvalidRecord, r.Name)
		}
		seen[p.Key()] = true
		persons = append(persons, p)
	}
	return persons, nil
}

func invalid(r Record, cause error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidRecord, r.Name, cause)
}
