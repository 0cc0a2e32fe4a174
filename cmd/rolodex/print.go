package main

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/command"
	"github.com/cristianoliveira/rolodex/internal/config"
	"github.com/cristianoliveira/rolodex/internal/format"
)

// printer writes the help table and the displayed contacts for the
// line-oriented shells.
type printer struct {
	out       io.Writer
	formatter format.Formatter
}

// newPrinter uses the configured list_format.
func newPrinter(out io.Writer) *printer {
	return &printer{
		out:       out,
		formatter: format.NewFormatter(format.FormatterType(config.Get("list_format", string(format.FormatterTypeTable)))),
	}
}

// show prints what follows a command: the help table for help, the current
// view after any other completed command, and nothing after a failure, a
// confirmation prompt or exit.
func (p *printer) show(session *cmd.Session, result command.Result, err error) error {
	if err != nil || result.IsPending() || result.Exit {
		return nil
	}
	if result.ShowHelp {
		if result.Feedback != command.MessageHelpWindowOpened {
			return nil
		}
		_, werr := fmt.Fprintln(p.out, session.Registry().HelpText())
		return werr
	}
	return p.formatter.FormatPersons(session.View(), p.out)
}
