package main

import (
	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/config"
	"github.com/cristianoliveira/rolodex/internal/errors"
)

var openSession cmd.SessionOpener = cmd.OpenSession

// newHandler returns the console feedback sink, honouring the quiet setting.
func newHandler() *errors.CLIHandler {
	h := errors.NewDefaultCLIHandler()
	h.SetQuiet(config.GetBool("quiet", false))
	return h
}
