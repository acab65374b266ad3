// Package cli provides the command-line interface for clflog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clflog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.RunOptions{}

	rootCmd := &cobra.Command{
		Use:   "clflog",
		Short: "Parse, aggregate and filter Common Log Format access logs",
		Long: `clflog reads a Common Log Format (CLF) access log and can:

  - export every entry as JSON (or YAML)
  - count request paths by status class (2XX's, 4XX's, ...)
  - print the raw lines matching a status code and/or request path

Lines with fewer than 11 whitespace-separated fields are skipped.

Examples:
  clflog -s access.log -j
  clflog -s access.log -j -d access.json
  clflog -s access.log -a
  clflog -s access.log -c 200 -r /blog`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Run(cmd, opts)
		},
	}

	commands.AddRunFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
