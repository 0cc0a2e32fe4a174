package command

import "fmt"

// ParseError reports input that could not be turned into a command:
// a malformed command line, an unknown command word or an argument that
// violates the command's grammar. No state changes when it is returned.
type ParseError struct {
	Message string
}

// NewParseError creates a ParseError with a formatted message.
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return e.Message
}

// CommandError reports a well-formed command that cannot be satisfied
// against the current contacts, or a failure while saving them.
type CommandError struct {
	Message string
	Err     error
}

// NewCommandError creates a CommandError with a formatted message.
func NewCommandError(format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...)}
}

// WrapCommandError creates a CommandError whose message ends with err's text.
func WrapCommandError(err error, message string) *CommandError {
	return &CommandError{Message: message + err.Error(), Err: err}
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
