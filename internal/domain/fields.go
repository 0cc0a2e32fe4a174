// Package domain provides the domain layer for contacts.
// It contains value objects, the Person entity and the projection rules
// used to build the displayed contact list.
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation messages shown to the user when a field does not parse.
const (
	NameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints    = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints    = "Emails should be of the format local-part@domain, where the local-part contains alphanumerics and +_.- (not at either end) and the domain ends with a label of at least 2 characters"
	AddressConstraints  = "Addresses can take any values, and it should not be blank"
	TelegramConstraints = "Telegram handles should be 5 to 32 characters of letters, digits or underscores, optionally prefixed with @"
	GitHubConstraints   = "GitHub usernames should be 1 to 39 alphanumeric characters or single hyphens, and cannot start or end with a hyphen"
	TagConstraints      = "Tag names should be alphanumeric"
)

var (
	nameRe     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRe    = regexp.MustCompile(`^\d{3,}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9+_.-]*[A-Za-z0-9])?@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	telegramRe = regexp.MustCompile(`^@?[A-Za-z0-9_]{5,32}$`)
	githubRe   = regexp.MustCompile(`^[A-Za-z0-9](?:-?[A-Za-z0-9]){0,38}$`)
	tagRe      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// FieldError reports a value that does not satisfy a field grammar.
type FieldError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *FieldError) Error() string {
	return e.Constraint
}

func invalid(field, value, constraint string) error {
	return &FieldError{Field: field, Value: value, Constraint: constraint}
}

// Name is a person's display name.
type Name string

// ParseName validates and trims a name.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRe.MatchString(s) {
		return "", invalid("name", s, NameConstraints)
	}
	return Name(s), nil
}

// Phone is a digits-only phone number.
type Phone string

// ParsePhone validates and trims a phone number.
func ParsePhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRe.MatchString(s) {
		return "", invalid("phone", s, PhoneConstraints)
	}
	return Phone(s), nil
}

// Email is an email address.
type Email string

// ParseEmail validates and trims an email address.
func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRe.MatchString(s) {
		return "", invalid("email", s, EmailConstraints)
	}
	// The last domain label must have at least two characters.
	if i := strings.LastIndexAny(s, ".@"); len(s)-i-1 < 2 {
		return "", invalid("email", s, EmailConstraints)
	}
	return Email(s), nil
}

// Address is a free-form postal address. The empty Address means none.
type Address string

// ParseAddress validates and trims an address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("address", s, AddressConstraints)
	}
	return Address(s), nil
}

// Telegram is a Telegram handle stored without the leading @.
type Telegram string

// ParseTelegram validates a handle and strips a leading @.
func ParseTelegram(s string) (Telegram, error) {
	s = strings.TrimSpace(s)
	if !telegramRe.MatchString(s) {
		return "", invalid("telegram", s, TelegramConstraints)
	}
	return Telegram(strings.TrimPrefix(s, "@")), nil
}

// URL returns the t.me profile link.
func (t Telegram) URL() string {
	if t == "" {
		return ""
	}
	return "https://t.me/" + string(t)
}

// GitHub is a GitHub username.
type GitHub string

// ParseGitHub validates a username.
func ParseGitHub(s string) (GitHub, error) {
	s = strings.TrimSpace(s)
	if !githubRe.MatchString(s) {
		return "", invalid("github", s, GitHubConstraints)
	}
	return GitHub(s), nil
}

// URL returns the github.com profile link.
func (g GitHub) URL() string {
	if g == "" {
		return ""
	}
	return "https://github.com/" + string(g)
}

// Tag labels a person.
type Tag string

// ParseTag validates a tag name.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRe.MatchString(s) {
		return "", invalid("tag", s, TagConstraints)
	}
	return Tag(s), nil
}

// ParseTags validates every tag in values.
func ParseTags(values []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// formatTags renders tags as "[a][b]".
func formatTags(tags []Tag) string {
	var sb strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&sb, "[%s]", t)
	}
	return sb.String()
}
