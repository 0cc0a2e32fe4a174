package engine

import "github.com/cristianoliveira/rolodex/internal/command"

// Session records whether the next input answers a confirmation prompt.
// A Session has a pending operation exactly when it is awaiting confirmation.
type Session struct {
	pending *command.Pending
}

// AwaitingConfirmation reports whether a pending operation is armed.
func (s *Session) AwaitingConfirmation() bool {
	return s.pending != nil
}

// Pending returns the armed operation, or nil when idle.
func (s *Session) Pending() *command.Pending {
	return s.pending
}

// Arm stores p as the operation awaiting confirmation. A nil p clears the session.
func (s *Session) Arm(p *command.Pending) {
	s.pending = p
}

// Clear returns the session to idle.
func (s *Session) Clear() {
	s.pending = nil
}
