package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clflog/pkg/aggregator"
	"github.com/ccollicutt/clflog/pkg/config"
	"github.com/ccollicutt/clflog/pkg/output"
	"github.com/ccollicutt/clflog/pkg/parser"
	"github.com/ccollicutt/clflog/pkg/query"
)

// RunOptions holds command-line options for the root command.
type RunOptions struct {
	Source      string
	ConfigFile  string
	JSON        bool
	Destination string
	Format      string
	Aggregate   bool
	Request     string
	Status      string
	Verbose     bool
}

// AddRunFlags registers the root command flags on cmd.
func AddRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().StringVarP(&opts.Source, "source", "s", "", "Log file to read (- for stdin)")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "Optional YAML config file")
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "Export the parsed entries (see --format)")
	cmd.Flags().StringVarP(&opts.Destination, "destination", "d", "", "Write the export to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", config.DefaultFormat, "Export format (json|yaml)")
	cmd.Flags().BoolVarP(&opts.Aggregate, "aggregate", "a", false, "Count request paths by status class")
	cmd.Flags().StringVarP(&opts.Request, "request", "r", "", "Print lines whose request path equals this value")
	cmd.Flags().StringVarP(&opts.Status, "status", "c", "", "Print lines whose status code equals this value")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// Run executes the export, aggregate and filter steps selected in opts,
// in that order.
func Run(cmd *cobra.Command, opts *RunOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd.InOrStdin(), cfg.Source, logger)
	if err != nil {
		return err
	}
	logger.Debug("parsed log", "source", in.name, "records", len(in.records))

	if opts.JSON {
		if err := export(ctx, cfg, in.records, out, logger); err != nil {
			return err
		}
	}

	if opts.Aggregate {
		table, err := aggregator.Aggregate(in.records)
		if err != nil {
			return fmt.Errorf("aggregating: %w", err)
		}
		logger.Debug("aggregated", "paths", table.Len(), "classes", table.Classes())

		if err := output.NewAggregateFormatter().Format(ctx, table, out); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	q := query.Query{Status: opts.Status, Request: opts.Request}
	if !q.IsEmpty() {
		lines, err := in.filter(q)
		if err != nil {
			return err
		}
		logger.Debug("filtered", "status", q.Status, "request", q.Request, "matches", len(lines))

		if err := output.WriteLines(out, lines); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	return nil
}

// resolveConfig merges the config file or environment with explicit flags.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *RunOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.FromEnvironment()
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.Source
	}
	if flags.Changed("destination") {
		cfg.Destination = opts.Destination
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if opts.JSON {
		if err := config.ValidateFormat(cfg); err != nil {
			return nil, err
		}
	}
	if err := config.RequireSource(cfg); err != nil {
		return nil, err
	}

	source, err := config.ResolveSource(cfg.Source)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	return cfg, nil
}

// input is the parsed log plus what the filter step needs to re-scan it.
type input struct {
	name    string
	records []parser.LogRecord

	// text is set for stdin, which cannot be read a second time.
	text  string
	stdin bool
}

func loadInput(stdin io.Reader, source string, logger *slog.Logger) (*input, error) {
	if source == config.StdinSource {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text := parser.NormalizeNewlines(string(data))
		return &input{name: "stdin", records: parser.ParseText(text), text: text, stdin: true}, nil
	}

	if parser.IsPath(source) {
		logger.Debug("reading log file", "path", source)
	} else {
		logger.Debug("source is not a file, parsing it as log text")
	}

	records, err := parser.LoadSource(source)
	if err != nil {
		return nil, err
	}
	return &input{name: source, records: records}, nil
}

// filter re-scans the raw log. File sources are read again from disk.
func (in *input) filter(q query.Query) ([]string, error) {
	if in.stdin {
		return query.RunText(in.text, q)
	}
	return query.Run(in.name, q)
}

func export(ctx context.Context, cfg *config.Config, records []parser.LogRecord, out io.Writer, logger *slog.Logger) error {
	opts := output.FormatOptions{
		Indent:              cfg.Indent,
		OmitTrailingNewline: cfg.Destination != "",
	}
	formatter, err := output.NewRecordFormatter(cfg.Format, opts)
	if err != nil {
		return err
	}

	if cfg.Destination == "" {
		if err := formatter.Format(ctx, records, out); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		return nil
	}

	logger.Debug("writing export", "destination", cfg.Destination, "format", formatter.Name(), "records", len(records))
	return output.WriteDestination(cfg.Destination, func(w io.Writer) error {
		return formatter.Format(ctx, records, w)
	})
}
