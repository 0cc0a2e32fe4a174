package domain

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Person is a single contact. Values are immutable by convention: every
// mutator returns a modified copy.
type Person struct {
	Name     Name
	Phone    Phone
	Email    Email
	Address  Address
	Telegram Telegram
	GitHub   GitHub
	Tags     []Tag

	// Pinned and PinnedAt change together: PinnedAt is non-zero iff Pinned.
	Pinned   bool
	PinnedAt time.Time
}

// NewPerson builds an unpinned person. Tags are de-duplicated and sorted.
func NewPerson(name Name, phone Phone, email Email, address Address, telegram Telegram, github GitHub, tags []Tag) Person {
	return Person{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Address:  address,
		Telegram: telegram,
		GitHub:   github,
		Tags:     normalizeTags(tags),
	}
}

// Key identifies a person for duplicate detection: the case-folded name.
func (p Person) Key() string {
	return cases.Fold().String(string(p.Name))
}

// IsSamePerson reports whether p and other describe the same contact.
func (p Person) IsSamePerson(other Person) bool {
	return p.Key() == other.Key()
}

// Equal reports whether every field of p and other matches.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		p.Telegram == other.Telegram &&
		p.GitHub == other.GitHub &&
		slices.Equal(p.Tags, other.Tags) &&
		p.Pinned == other.Pinned &&
		p.PinnedAt.Equal(other.PinnedAt)
}

// HasTag reports whether p carries tag.
func (p Person) HasTag(tag Tag) bool {
	return slices.Contains(p.Tags, tag)
}

// WithTags returns a copy of p carrying tags.
func (p Person) WithTags(tags []Tag) Person {
	p.Tags = normalizeTags(tags)
	return p
}

// WithTagRenamed returns a copy of p with old replaced by renamed.
func (p Person) WithTagRenamed(old, renamed Tag) Person {
	if !p.HasTag(old) {
		return p
	}
	tags := make([]Tag, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t == old {
			t = renamed
		}
		tags = append(tags, t)
	}
	return p.WithTags(tags)
}

// WithPin returns a pinned copy of p, pinned at the given time.
func (p Person) WithPin(at time.Time) Person {
	p.Pinned = true
	p.PinnedAt = at
	return p
}

// WithoutPin returns an unpinned copy of p.
func (p Person) WithoutPin() Person {
	p.Pinned = false
	p.PinnedAt = time.Time{}
	return p
}

// String renders every field on one line, for logs and confirmations.
func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.Name))
	sb.WriteString("; Phone: ")
	sb.WriteString(string(p.Phone))
	sb.WriteString("; Email: ")
	sb.WriteString(string(p.Email))
	if p.Address != "" {
		sb.WriteString("; Address: ")
		sb.WriteString(string(p.Address))
	}
	if p.Telegram != "" {
		sb.WriteString("; Telegram: @")
		sb.WriteString(string(p.Telegram))
	}
	if p.GitHub != "" {
		sb.WriteString("; GitHub: ")
		sb.WriteString(string(p.GitHub))
	}
	if len(p.Tags) > 0 {
		sb.WriteString("; Tags: ")
		sb.WriteString(formatTags(p.Tags))
	}
	return sb.String()
}

func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}
