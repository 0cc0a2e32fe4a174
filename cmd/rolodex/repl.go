package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/autocomplete"
	"github.com/cristianoliveira/rolodex/internal/config"
	rerrors "github.com/cristianoliveira/rolodex/internal/errors"
	"github.com/spf13/cobra"
)

const (
	replPrompt    = "> "
	confirmPrompt = "[y/n] "
	historyFile   = "repl_history"
)

// lineReader is the part of readline.Instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// NewReplCmd creates the line-oriented shell command.
func NewReplCmd(open cmd.SessionOpener) *cobra.Command {
	if open == nil {
		panic("NewReplCmd: session opener cannot be nil")
	}

	return &cobra.Command{
		Use:   "repl",
		Short: "Start a line-oriented shell with command completion",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			session, err := open()
			if err != nil {
				return err
			}
			defer session.Close()

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          replPrompt,
				AutoComplete:    autocomplete.New(session.Registry().Words()),
				HistoryFile:     filepath.Join(config.Get("state_dir", ""), historyFile),
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("start line editor: %w", err)
			}
			defer rl.Close()

			return runShell(session, rl, newHandler(), newPrinter(c.OutOrStdout()))
		},
	}
}

// runShell executes lines until exit or end of input.
func runShell(session *cmd.Session, rl lineReader, handler rerrors.ErrorHandler, p *printer) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" && !session.AwaitingConfirmation() {
			continue
		}

		result, err := session.Execute(line)
		rerrors.Report(handler, result, err)
		if perr := p.show(session, result, err); perr != nil {
			return perr
		}
		if result.Exit {
			return nil
		}

		if session.AwaitingConfirmation() {
			rl.SetPrompt(confirmPrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
}

var replCmd = NewReplCmd(openSession)

func init() {
	cmd.RootCmd.AddCommand(replCmd)
}
