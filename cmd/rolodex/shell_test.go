package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/command"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/engine"
	"github.com/cristianoliveira/rolodex/internal/format"
	"github.com/cristianoliveira/rolodex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	errors, warnings, infos, successes []string
}

func (h *recordingHandler) Error(msg string)   { h.errors = append(h.errors, msg) }
func (h *recordingHandler) Warning(msg string) { h.warnings = append(h.warnings, msg) }
func (h *recordingHandler) Info(msg string)    { h.infos = append(h.infos, msg) }
func (h *recordingHandler) Success(msg string) { h.successes = append(h.successes, msg) }

type scriptedReader struct {
	lines   []string
	errs    []error
	prompts []string
	closed  bool
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line, err := r.lines[0], r.errs[0]
	r.lines, r.errs = r.lines[1:], r.errs[1:]
	return line, err
}

func (r *scriptedReader) SetPrompt(prompt string) { r.prompts = append(r.prompts, prompt) }
func (r *scriptedReader) Close() error            { r.closed = true; return nil }

func script(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines, errs: make([]error, len(lines))}
}

func newTestSession() *cmd.Session {
	persons := []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "", "", "", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "", "", "", nil),
	}
	return cmd.NewSession(engine.New(model.New(persons), nil), nil)
}

func simplePrinter() (*printer, *bytes.Buffer) {
	var out bytes.Buffer
	return &printer{out: &out, formatter: format.NewSimpleFormatter()}, &out
}

func TestShellRunsUntilEOF(t *testing.T) {
	session := newTestSession()
	h := &recordingHandler{}

	p, out := simplePrinter()

	require.NoError(t, runShell(session, script("list", "", "find yu"), h, p))
	assert.Equal(t, []string{command.MessageListSuccess, "1 persons listed!"}, h.successes)
	assert.Len(t, session.View(), 1)
	assert.Equal(t, "1. Alex Yeoh; Phone: 87438807; Email: alexyeoh@example.com; Tags: [friends]\n"+
		"2. Bernice Yu; Phone: 99272758; Email: berniceyu@example.com\n"+
		"1. Bernice Yu; Phone: 99272758; Email: berniceyu@example.com\n", out.String())
}

func TestShellConfirmationPrompt(t *testing.T) {
	session := newTestSession()
	h := &recordingHandler{}
	rl := script("delete 2", "maybe", "y")
	p, out := simplePrinter()

	require.NoError(t, runShell(session, rl, h, p))
	assert.Equal(t, []string{confirmPrompt, confirmPrompt, replPrompt}, rl.prompts)
	require.Len(t, h.warnings, 1)
	require.Len(t, h.errors, 1)
	assert.Contains(t, h.errors[0], command.MessageInvalidConfirmation)
	require.Len(t, h.successes, 1)
	assert.Contains(t, h.successes[0], "Deleted Person: Bernice Yu")
	assert.Equal(t, "1. Alex Yeoh; Phone: 87438807; Email: alexyeoh@example.com; Tags: [friends]\n", out.String(),
		"the list is printed only once the deletion is applied")
}

func TestShellStopsOnExit(t *testing.T) {
	session := newTestSession()
	h := &recordingHandler{}

	p, out := simplePrinter()

	require.NoError(t, runShell(session, script("exit", "list"), h, p))
	assert.Equal(t, []string{command.MessageExit}, h.infos)
	assert.Empty(t, h.successes, "lines after exit are not read")
	assert.Empty(t, out.String())
}

func TestShellPrintsHelpTable(t *testing.T) {
	session := newTestSession()
	p, out := simplePrinter()

	require.NoError(t, runShell(session, script("help"), &recordingHandler{}, p))
	assert.Equal(t, session.Registry().HelpText()+"\n", out.String())
}

func TestShellPrintsNothingAfterFailure(t *testing.T) {
	p, out := simplePrinter()
	h := &recordingHandler{}

	require.NoError(t, runShell(newTestSession(), script("delete 9"), h, p))
	assert.Equal(t, []string{command.MessageInvalidIndex}, h.errors)
	assert.Empty(t, out.String())
}

func TestShellIgnoresInterrupt(t *testing.T) {
	rl := &scriptedReader{
		lines: []string{"", "list"},
		errs:  []error{readline.ErrInterrupt, nil},
	}
	h := &recordingHandler{}
	p, _ := simplePrinter()
	require.NoError(t, runShell(newTestSession(), rl, h, p))
	assert.Equal(t, []string{command.MessageListSuccess}, h.successes)
}

func TestShellReturnsReadErrors(t *testing.T) {
	rl := &scriptedReader{lines: []string{""}, errs: []error{assert.AnError}}
	p, _ := simplePrinter()
	err := runShell(newTestSession(), rl, &recordingHandler{}, p)
	require.ErrorIs(t, err, assert.AnError)
}
