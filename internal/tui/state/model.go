// Package state holds the bubbletea model of the interactive contact book.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/rolodex/internal/autocomplete"
	"github.com/cristianoliveira/rolodex/internal/command"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/errors"
)

const (
	// header, status line, input and footer
	headerFooterLines     = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	errorClearDuration    = 5 * time.Second
	inputPrompt           = "> "
	confirmPlaceholder    = "y/n"
	commandPlaceholder    = "type a command, or help"
)

// Engine executes command lines against the contact book.
type Engine interface {
	Execute(input string) (command.Result, error)
	AwaitingConfirmation() bool
	Prompt() string
	Registry() *command.Registry
	View() []domain.Person
}

// Model represents the TUI model for bubbletea.
type Model struct {
	engine    Engine
	completer *autocomplete.Autocompletor
	input     textinput.Model
	uiState   *UIState

	errorHandler *errors.TUIHandler
	status       errors.Message
	quitting     bool
}

// NewModel creates a TUI model driving engine.
func NewModel(engine Engine) *Model {
	input := textinput.New()
	input.Prompt = inputPrompt
	input.Placeholder = commandPlaceholder
	input.Focus()

	m := &Model{
		engine:    engine,
		completer: autocomplete.New(engine.Registry().Words()),
		input:     input,
		uiState:   NewUIState(),
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
	})
	m.refresh()
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case errorMsg:
		if m.status.Timestamp.Equal(msg.at) {
			m.status = errors.Message{}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Hint returns the command word Tab would complete to.
func (m *Model) Hint() string {
	if m.engine.AwaitingConfirmation() {
		return ""
	}
	value := m.input.Value()
	for _, r := range value {
		if r == ' ' || r == '\t' {
			return ""
		}
	}
	hint := m.completer.Hint(value)
	if hint == value {
		return ""
	}
	return hint
}

// Quitting reports whether the user ended the session.
func (m *Model) Quitting() bool {
	return m.quitting
}

// refresh re-renders the list after the model changed.
func (m *Model) refresh() {
	persons := m.engine.View()
	m.uiState.AdjustCursorBounds(len(persons))
	m.updateViewportContent(persons)
	m.uiState.EnsureCursorVisible(len(persons))

	if m.engine.AwaitingConfirmation() {
		m.input.Placeholder = confirmPlaceholder
	} else {
		m.input.Placeholder = commandPlaceholder
	}
}
