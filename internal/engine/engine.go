// Package engine runs command lines against the contacts model. It owns the
// confirmation session: a destructive command arms the session with its
// pending operation and the next input line answers it.
package engine

import (
	"errors"
	"time"

	"github.com/cristianoliveira/rolodex/internal/command"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/logging"
)

// Saver persists the full contact list.
type Saver interface {
	Save(persons []domain.Person) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock sets the time source used for pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.env.Now = now
	}
}

// WithExporter enables the export command.
func WithExporter(exporter command.Exporter) Option {
	return func(e *Engine) {
		e.env.Exporter = exporter
	}
}

// WithExportDir sets the directory used when export is given no path.
func WithExportDir(dir string) Option {
	return func(e *Engine) {
		e.env.ExportDir = dir
	}
}

// Engine is the single entry point shells use to execute input lines.
// It is not safe for concurrent use.
type Engine struct {
	model    command.Model
	saver    Saver
	registry *command.Registry
	parser   *command.Parser
	session  Session
	env      *command.Env
	logger   logging.Logger
}

// New returns an idle engine over model that persists through saver.
func New(model command.Model, saver Saver, opts ...Option) *Engine {
	registry := command.NewRegistry()
	e := &Engine{
		model:    model,
		saver:    saver,
		registry: registry,
		parser:   command.NewParser(registry),
		env: &command.Env{
			Model:    model,
			Registry: registry,
			Now:      time.Now,
		},
		logger: logging.With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute parses and runs one line of input.
func (e *Engine) Execute(input string) (command.Result, error) {
	var cmd command.Command
	if e.session.AwaitingConfirmation() {
		cmd = e.parser.ParseConfirmation(input, e.session.Clear, e.session.Pending())
	} else {
		parsed, err := e.parser.Parse(input)
		if err != nil {
			e.logger.Debug("parse failed", "error", err.Error())
			return command.Result{}, err
		}
		cmd = parsed
	}

	e.logger.Debug("executing command", "word", cmd.Word())
	result, err := command.Execute(cmd, e.env)
	if err != nil {
		e.logger.Debug("command failed", "word", cmd.Word(), "error", err.Error(), "awaiting_confirmation", e.session.AwaitingConfirmation())
		return command.Result{}, err
	}

	if result.IsPending() {
		e.session.Arm(result.Pending)
		e.logger.Info("confirmation requested", "word", cmd.Word())
		return result, nil
	}

	if cmd.RequiresWrite() {
		if err := e.save(); err != nil {
			return command.Result{}, err
		}
	}
	return result, nil
}

// save writes the whole contact list. Model changes are kept when it fails.
func (e *Engine) save() error {
	if e.saver == nil {
		return nil
	}
	if err := e.saver.Save(e.model.Persons()); err != nil {
		e.logger.Error("save failed", "error", err.Error())
		return command.WrapCommandError(err, command.MessageSaveFailed)
	}
	return nil
}

// AwaitingConfirmation reports whether the next input answers a prompt.
func (e *Engine) AwaitingConfirmation() bool {
	return e.session.AwaitingConfirmation()
}

// Prompt returns the armed confirmation prompt, or "" when idle.
func (e *Engine) Prompt() string {
	if p := e.session.Pending(); p != nil {
		return p.Prompt
	}
	return ""
}

// Registry returns the engine's command registry.
func (e *Engine) Registry() *command.Registry {
	return e.registry
}

// View returns the displayed contacts.
func (e *Engine) View() []domain.Person {
	return e.model.View()
}

// IsParseError reports whether err came from parsing the input line.
func IsParseError(err error) bool {
	var pe *command.ParseError
	return errors.As(err, &pe)
}
