package main

import (
	"strings"

	"github.com/cristianoliveira/rolodex/cmd"
	rerrors "github.com/cristianoliveira/rolodex/internal/errors"
	"github.com/spf13/cobra"
)

const notAppliedNotice = "Confirmation is not available in exec mode; nothing was changed."

// NewExecCmd creates the one-shot command runner.
func NewExecCmd(open cmd.SessionOpener, handler rerrors.ErrorHandler) *cobra.Command {
	if open == nil {
		panic("NewExecCmd: session opener cannot be nil")
	}

	return &cobra.Command{
		Use:   "exec TEXT...",
		Short: "Run one command line and exit",
		Long: `Run one command line and exit. Put -- before command text that
starts with a dash so it is not read as a flag.`,
		Example: `  rolodex exec add n/John Doe p/98765432 e/johnd@example.com
  rolodex exec -- find -t friends`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			session, err := open()
			if err != nil {
				return err
			}
			defer session.Close()

			h := handler
			if h == nil {
				h = newHandler()
			}

			result, err := session.Execute(strings.Join(args, " "))
			rerrors.Report(h, result, err)
			if err != nil {
				return cmd.ErrCommandFailed
			}
			if result.IsPending() {
				h.Warning(notAppliedNotice)
				return nil
			}
			return newPrinter(c.OutOrStdout()).show(session, result, nil)
		},
	}
}

var execCmd = NewExecCmd(openSession, nil)

func init() {
	cmd.RootCmd.AddCommand(execCmd)
}
