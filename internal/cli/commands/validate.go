package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clflog/pkg/config"
	"github.com/ccollicutt/clflog/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a clflog configuration file without reading the log.

Checks:
  - YAML syntax
  - Export format and indent
  - Source presence and glob expansion
  - Log source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := config.ValidateFormat(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := config.RequireSource(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	source, err := config.ResolveSource(cfg.Source)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	destination := cfg.Destination
	if destination == "" {
		destination = "stdout"
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Source:      %s\n", source)
	fmt.Fprintf(out, "  Format:      %s (indent %d)\n", cfg.Format, cfg.Indent)
	fmt.Fprintf(out, "  Destination: %s\n", destination)

	// Check the source exists (warning only)
	if source != config.StdinSource && !parser.IsPath(source) {
		fmt.Fprintf(out, "\nWarning: source %q is not an existing file; it will be parsed as log text\n", source)
	}

	return nil
}
