package state

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/rolodex/internal/command"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/engine"
	"github.com/cristianoliveira/rolodex/internal/errors"
	"github.com/cristianoliveira/rolodex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	persons := []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "", "", "", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "", "", "", nil),
	}
	return NewModel(engine.New(model.New(persons), nil))
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func run(m *Model, line string) tea.Cmd {
	typeText(m, line)
	return press(m, tea.KeyEnter)
}

func TestNewModelRendersContacts(t *testing.T) {
	m := newTestModel(t)
	view := ansiRe.ReplaceAllString(m.View(), "")

	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "Alex Yeoh")
	assert.Contains(t, view, "Bernice Yu")
	assert.NotNil(t, m.Init())
}

func TestTypingUpdatesInputAndHint(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "ed")
	assert.Equal(t, "ed", m.input.Value())
	assert.Equal(t, "edit", m.Hint())

	press(m, tea.KeyTab)
	assert.Equal(t, "edit ", m.input.Value())
	assert.Equal(t, "", m.Hint(), "no hint once the word is complete")
}

func TestTabWithoutHintKeepsInput(t *testing.T) {
	m := newTestModel(t)
	typeText(m, "zzz")
	press(m, tea.KeyTab)
	assert.Equal(t, "zzz", m.input.Value())
}

func TestEnterRunsCommandAndReportsSuccess(t *testing.T) {
	m := newTestModel(t)

	cmd := run(m, "find yu")
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, errors.MessageTypeSuccess, m.status.Type)
	assert.Equal(t, "1 persons listed!", m.status.Text)

	view := ansiRe.ReplaceAllString(m.View(), "")
	assert.Contains(t, view, "Bernice Yu")
	assert.NotContains(t, view, "Alex Yeoh")
}

func TestEnterReportsErrorsAndSchedulesClear(t *testing.T) {
	m := newTestModel(t)

	cmd := run(m, "frobnicate")
	assert.NotNil(t, cmd)
	assert.Equal(t, errors.MessageTypeError, m.status.Type)
	assert.Equal(t, command.MessageUnknownCommand, m.status.Text)

	m.Update(errorMsg{at: m.status.Timestamp})
	assert.Equal(t, "", m.status.Text)
}

func TestStaleClearKeepsNewerStatus(t *testing.T) {
	m := newTestModel(t)
	run(m, "frobnicate")
	stale := m.status.Timestamp

	run(m, "list")
	m.status.Timestamp = stale.Add(1)
	m.Update(errorMsg{at: stale})
	assert.Equal(t, command.MessageListSuccess, m.status.Text)
}

func TestBlankEnterIsIgnored(t *testing.T) {
	m := newTestModel(t)
	typeText(m, "   ")
	assert.Nil(t, press(m, tea.KeyEnter))
	assert.Equal(t, "", m.status.Text)
}

func TestDeleteConfirmationFlow(t *testing.T) {
	m := newTestModel(t)

	run(m, "delete 1")
	assert.Equal(t, errors.MessageTypeWarning, m.status.Type)
	assert.Equal(t, confirmPlaceholder, m.input.Placeholder)
	assert.Equal(t, "", m.Hint(), "no completion while confirming")
	assert.Contains(t, ansiRe.ReplaceAllString(m.View(), ""), "y: confirm")

	run(m, "y")
	assert.Equal(t, errors.MessageTypeSuccess, m.status.Type)
	assert.Contains(t, m.status.Text, "Deleted Person: Alex Yeoh")
	assert.Equal(t, commandPlaceholder, m.input.Placeholder)
	rows := ansiRe.ReplaceAllString(m.uiState.GetViewport().View(), "")
	assert.NotContains(t, rows, "Alex Yeoh")
	assert.Contains(t, rows, "Bernice Yu")
	require.Len(t, m.engine.View(), 1)
	assert.Equal(t, domain.Name("Bernice Yu"), m.engine.View()[0].Name)
}

func TestHelpOpensPanelAndEscClosesIt(t *testing.T) {
	m := newTestModel(t)

	run(m, "help")
	assert.True(t, m.uiState.IsHelpShown())
	assert.Equal(t, errors.MessageTypeInfo, m.status.Type)
	assert.Contains(t, ansiRe.ReplaceAllString(m.View(), ""), "Commands (Esc to close)")

	press(m, tea.KeyEsc)
	assert.False(t, m.uiState.IsHelpShown())

	typeText(m, "li")
	press(m, tea.KeyEsc)
	assert.Equal(t, "", m.input.Value())
}

func TestExitQuits(t *testing.T) {
	m := newTestModel(t)

	cmd := run(m, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Equal(t, "", m.View())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.uiState.GetCursor())
	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.uiState.GetCursor())
	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.uiState.GetCursor())

	press(m, tea.KeyDown)
	run(m, "find alex")
	assert.Equal(t, 0, m.uiState.GetCursor(), "cursor clamps to the shorter view")
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})

	assert.Equal(t, 140, m.uiState.GetWidth())
	assert.Equal(t, 30-headerFooterLines, m.uiState.GetViewport().Height)
	assert.Contains(t, ansiRe.ReplaceAllString(m.View(), ""), "Alex Yeoh")
}
