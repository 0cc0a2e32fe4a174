package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/rolodex/internal/errors"
)

// handleKeyMsg routes key presses. Keys the shell does not use are
// forwarded to the command input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		return m.handleEsc()
	case tea.KeyTab:
		m.acceptHint()
		return m, nil
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyUp:
		m.uiState.MoveCursorUp()
		m.refresh()
		return m, nil
	case tea.KeyDown:
		m.uiState.MoveCursorDown(len(m.engine.View()))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEsc closes the help panel, or clears the input when it is closed.
func (m *Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.uiState.IsHelpShown() {
		m.uiState.SetHelpShown(false)
		return m, nil
	}
	m.input.Reset()
	return m, nil
}

// acceptHint completes the command word to the current hint.
func (m *Model) acceptHint() {
	hint := m.Hint()
	if hint == "" {
		return
	}
	m.input.SetValue(hint + " ")
	m.input.CursorEnd()
}

// handleEnter runs the typed line through the engine.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" && !m.engine.AwaitingConfirmation() {
		return m, nil
	}
	m.input.Reset()

	result, err := m.engine.Execute(line)
	errors.Report(m.errorHandler, result, err)
	m.refresh()

	if err != nil {
		return m, errorMsgAfter(errorClearDuration, m.status.Timestamp)
	}
	if result.ShowHelp {
		m.uiState.SetHelpShown(true)
	}
	if result.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleWindowSizeMsg handles window resize events.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.input.Width = m.uiState.GetWidth() - len(inputPrompt) - 1
	m.refresh()
	return m, nil
}
