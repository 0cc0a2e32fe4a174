// Package cmd holds the root command and the session wiring shared by the
// rolodex subcommands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/config"
	"github.com/cristianoliveira/rolodex/internal/logging"
	"github.com/cristianoliveira/rolodex/internal/version"
	"github.com/spf13/cobra"
)

// ErrCommandFailed is returned by subcommands that already reported their failure.
var ErrCommandFailed = errors.New("command failed")

var (
	configPath string
	dataDir    string
	backend    string
	debug      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:               "rolodex",
	Short:             "A keyboard-driven address book.",
	Long:              `A keyboard-driven address book for your terminal.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/rolodex/config.toml)")
	RootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the contact data")
	RootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: json or sqlite")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug output")
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", configPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	config.Load()
	applyFlags()

	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Info("rolodex started", "command", cmd.Name(), "version", version.String())
	return nil
}

func applyFlags() {
	if dataDir != "" {
		config.Set("data_dir", dataDir)
	}
	if backend != "" {
		config.Set("storage_backend", backend)
	}
	if debug {
		config.Set("debug", "true")
	}
}

func printHelpText(cmd *cobra.Command) {
	var cmdLines []string
	for _, c := range cmd.Root().Commands() {
		if c.Hidden || !c.IsAvailableCommand() {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", c.Use, c.Short))
	}

	helpText := fmt.Sprintf(`rolodex %s

A keyboard-driven address book for your terminal.

USAGE:
    rolodex [COMMAND] [OPTIONS]

Without a command the interactive interface starts.

COMMANDS:
%s

OPTIONS:
        --config PATH     Configuration file
        --data-dir DIR    Directory holding the contact data
        --backend NAME    Storage backend (json or sqlite)
        --debug           Print debug output
    -h, --help            Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
