package command

// Result is the outcome of executing a command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string
	// ShowHelp asks the shell to display the command reference.
	ShowHelp bool
	// Exit asks the shell to end the session.
	Exit bool
	// Pending is set when the command only takes effect after the user
	// confirms it. Feedback then holds the confirmation prompt.
	Pending *Pending
}

// IsPending reports whether the result awaits confirmation.
func (r Result) IsPending() bool {
	return r.Pending != nil
}

// Continuation performs a deferred mutation. It receives the execution
// environment explicitly instead of capturing the model.
type Continuation func(env *Env) (Result, error)

// Pending is a deferred operation awaiting a yes/no answer.
type Pending struct {
	Prompt string

	apply Continuation
}

// NewPendingResult returns a result that defers apply until confirmation.
// apply is not called here.
func NewPendingResult(prompt string, apply Continuation) Result {
	return Result{
		Feedback: prompt,
		Pending:  &Pending{Prompt: prompt, apply: apply},
	}
}

// resolve runs the deferred operation.
func (p *Pending) resolve(env *Env) (Result, error) {
	return p.apply(env)
}
