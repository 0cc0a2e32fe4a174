package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/tui/state"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the interactive interface command.
func NewTUICmd(open cmd.SessionOpener) *cobra.Command {
	if open == nil {
		panic("NewTUICmd: session opener cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive interface (default)",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			session, err := open()
			if err != nil {
				return err
			}
			defer session.Close()

			program := tea.NewProgram(state.NewModel(session.Engine), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run interface: %w", err)
			}
			return nil
		},
	}
}

var tuiCmd = NewTUICmd(openSession)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
	cmd.RootCmd.RunE = tuiCmd.RunE
}
