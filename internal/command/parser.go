package command

import (
	"regexp"
	"strings"
)

// commandFormat splits a line into the command word and the verbatim remainder.
var commandFormat = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// Parser turns input lines into commands using a Registry.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser over registry.
func NewParser(registry *Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse parses a normal command line.
func (p *Parser) Parse(input string) (Command, error) {
	m := commandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return nil, p.registry.formatError(WordHelp)
	}
	word, args := m[1], m[2]

	factory, ok := p.registry.Lookup(word)
	if !ok {
		return nil, NewParseError(MessageUnknownCommand)
	}
	return factory(args)
}

// ParseConfirmation interprets input as the answer to pending. The
// registry is not consulted: every input becomes a Confirm command.
// onComplete runs once the pending operation is confirmed or cancelled.
func (p *Parser) ParseConfirmation(input string, onComplete func(), pending *Pending) Command {
	return Confirm{Input: input, Pending: pending, onComplete: onComplete}
}
