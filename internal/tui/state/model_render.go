package state

import (
	"strings"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.uiState.GetWidth()

	var s strings.Builder
	s.WriteString(render.Header(width))
	s.WriteString("\n")
	s.WriteString(m.uiState.GetViewport().View())

	if m.uiState.IsHelpShown() {
		s.WriteString("\n")
		s.WriteString(render.HelpPanel(m.engine.Registry().HelpText(), width))
	}

	s.WriteString("\n")
	s.WriteString(render.Status(m.status, width))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Hint:   m.Hint(),
		Prompt: m.engine.Prompt(),
		Width:  width,
	}))
	return s.String()
}

// updateViewportContent renders persons into the viewport.
func (m *Model) updateViewportContent(persons []domain.Person) {
	content := render.List(persons, m.uiState.GetCursor(), m.uiState.GetWidth())
	m.uiState.GetViewport().SetContent(content)
}
