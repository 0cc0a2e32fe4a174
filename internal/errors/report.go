package errors

import "github.com/cristianoliveira/rolodex/internal/command"

// Report sends the outcome of one executed line to h. Failures go to Error,
// confirmation prompts to Warning, help and exit notices to Info, and
// everything else to Success.
func Report(h ErrorHandler, result command.Result, err error) {
	switch {
	case err != nil:
		h.Error(err.Error())
	case result.IsPending():
		h.Warning(result.Feedback)
	case result.ShowHelp, result.Exit:
		h.Info(result.Feedback)
	case result.Feedback != "":
		h.Success(result.Feedback)
	}
}
