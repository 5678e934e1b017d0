package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the oncampus-cli command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oncampus-cli",
		Short: "OnCampus CLI tool",
		Long: `OnCampus CLI inspects and exercises the screen flow of the OnCampus server.

Available commands:
  version      Print the CLI version
  transitions  Print the screen transition table
  topics       Explore the event topics published on the bus
  simulate     Replay triggers against a fresh session and print its state

Use "oncampus-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTransitionsCmd(),
		newTopicsCmd(),
		newSimulateCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
