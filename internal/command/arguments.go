package command

import (
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

var personPrefixes = []string{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTelegram, PrefixGitHub, PrefixTag}

var singleValuedPrefixes = []string{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTelegram, PrefixGitHub}

// fieldError converts a value-object validation failure into a parse error.
func fieldError(err error) error {
	return NewParseError("%s", err.Error())
}

func (r *Registry) parseAdd(args string) (Command, error) {
	m := Tokenize(args, personPrefixes...)
	if m.Preamble() != "" || !m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) {
		return nil, r.formatError(WordAdd)
	}
	if err := m.VerifyNoDuplicates(singleValuedPrefixes...); err != nil {
		return nil, err
	}

	nameValue, _ := m.Value(PrefixName)
	name, err := domain.ParseName(nameValue)
	if err != nil {
		return nil, fieldError(err)
	}
	phoneValue, _ := m.Value(PrefixPhone)
	phone, err := domain.ParsePhone(phoneValue)
	if err != nil {
		return nil, fieldError(err)
	}
	emailValue, _ := m.Value(PrefixEmail)
	email, err := domain.ParseEmail(emailValue)
	if err != nil {
		return nil, fieldError(err)
	}

	var address domain.Address
	if v, ok := m.Value(PrefixAddress); ok {
		if address, err = domain.ParseAddress(v); err != nil {
			return nil, fieldError(err)
		}
	}
	var telegram domain.Telegram
	if v, ok := m.Value(PrefixTelegram); ok {
		if telegram, err = domain.ParseTelegram(v); err != nil {
			return nil, fieldError(err)
		}
	}
	var github domain.GitHub
	if v, ok := m.Value(PrefixGitHub); ok {
		if github, err = domain.ParseGitHub(v); err != nil {
			return nil, fieldError(err)
		}
	}
	tags, err := domain.ParseTags(m.All(PrefixTag))
	if err != nil {
		return nil, fieldError(err)
	}

	return Add{Person: domain.NewPerson(name, phone, email, address, telegram, github, tags)}, nil
}

func (r *Registry) parseDelete(args string) (Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, r.formatError(WordDelete)
	}
	return Delete{Index: index}, nil
}

func (r *Registry) parseEdit(args string) (Command, error) {
	m := Tokenize(args, personPrefixes...)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, r.formatError(WordEdit)
	}
	if err := m.VerifyNoDuplicates(singleValuedPrefixes...); err != nil {
		return nil, err
	}

	var fields EditFields
	if v, ok := m.Value(PrefixName); ok {
		name, err := domain.ParseName(v)
		if err != nil {
			return nil, fieldError(err)
		}
		fields.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := domain.ParsePhone(v)
		if err != nil {
			return nil, fieldError(err)
		}
		fields.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := domain.ParseEmail(v)
		if err != nil {
			return nil, fieldError(err)
		}
		fields.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		var address domain.Address
		if v != "" {
			if address, err = domain.ParseAddress(v); err != nil {
				return nil, fieldError(err)
			}
		}
		fields.Address = &address
	}
	if v, ok := m.Value(PrefixTelegram); ok {
		var telegram domain.Telegram
		if v != "" {
			if telegram, err = domain.ParseTelegram(v); err != nil {
				return nil, fieldError(err)
			}
		}
		fields.Telegram = &telegram
	}
	if v, ok := m.Value(PrefixGitHub); ok {
		var github domain.GitHub
		if v != "" {
			if github, err = domain.ParseGitHub(v); err != nil {
				return nil, fieldError(err)
			}
		}
		fields.GitHub = &github
	}
	if m.Has(PrefixTag) {
		values := m.All(PrefixTag)
		tags := []domain.Tag{}
		// A single empty t/ clears every tag.
		if len(values) != 1 || values[0] != "" {
			if tags, err = domain.ParseTags(values); err != nil {
				return nil, fieldError(err)
			}
		}
		fields.Tags = &tags
	}

	if fields.IsEmpty() {
		return nil, NewParseError(MessageNothingToEdit)
	}
	return Edit{Index: index, Fields: fields}, nil
}

func (r *Registry) parseFind(args string) (Command, error) {
	tokens := strings.Fields(args)
	mode := FindByName
	if len(tokens) > 0 {
		switch tokens[0] {
		case "-t":
			mode, tokens = FindByTag, tokens[1:]
		case "-s":
			mode, tokens = FindAnywhere, tokens[1:]
		}
	}
	if len(tokens) == 0 {
		return nil, r.formatError(WordFind)
	}
	return Find{Mode: mode, Keywords: tokens}, nil
}

func (r *Registry) parseSort(args string) (Command, error) {
	switch strings.TrimSpace(args) {
	case "-a":
		return Sort{Order: domain.SortByName}, nil
	case "-r":
		return Sort{Order: domain.SortByRecent}, nil
	default:
		return nil, r.formatError(WordSort)
	}
}

func (r *Registry) parseRenameTag(args string) (Command, error) {
	m := Tokenize(args, PrefixOldTag, PrefixName)
	if m.Preamble() != "" || !m.Has(PrefixOldTag) || !m.Has(PrefixName) {
		return nil, r.formatError(WordTag)
	}
	if err := m.VerifyNoDuplicates(PrefixOldTag, PrefixName); err != nil {
		return nil, err
	}
	oldValue, _ := m.Value(PrefixOldTag)
	old, err := domain.ParseTag(oldValue)
	if err != nil {
		return nil, fieldError(err)
	}
	newValue, _ := m.Value(PrefixName)
	renamed, err := domain.ParseTag(newValue)
	if err != nil {
		return nil, fieldError(err)
	}
	if old == renamed {
		return nil, NewParseError(MessageTagUnchanged)
	}
	return RenameTag{Old: old, New: renamed}, nil
}

func (r *Registry) parseExport(args string) (Command, error) {
	path := strings.TrimSpace(args)
	if path == "" {
		return Export{}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".yaml", ".yml":
		return Export{Path: path}, nil
	default:
		return nil, NewParseError(MessageExportExtension)
	}
}

func (r *Registry) parseHelp(args string) (Command, error) {
	word := strings.TrimSpace(args)
	if word == "" {
		return Help{}, nil
	}
	if _, ok := r.Lookup(word); !ok {
		return nil, NewParseError(MessageUnknownCommand)
	}
	return Help{Topic: word}, nil
}

// parseNoArgs returns a factory for commands that take no arguments.
func (r *Registry) parseNoArgs(word string, cmd Command) Factory {
	return func(args string) (Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, r.formatError(word)
		}
		return cmd, nil
	}
}

// parseIndexed returns a factory for commands whose only argument is an index.
func (r *Registry) parseIndexed(word string, build func(int) Command) Factory {
	return func(args string) (Command, error) {
		index, err := ParseIndex(args)
		if err != nil {
			return nil, r.formatError(word)
		}
		return build(index), nil
	}
}
