package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/es-debug/log-analyzer/internal/domain"
	"github.com/es-debug/log-analyzer/internal/parser"
	"github.com/es-debug/log-analyzer/internal/report"
	"github.com/es-debug/log-analyzer/internal/stats"
)

func Start() error {
	return NewCommand().ExecuteContext(context.Background())
}

func NewCommand() *cobra.Command {
	f := &cmdFlags{}

	cmd := &cobra.Command{
		Use:   "parser",
		Short: "Build a report from nginx access logs",
		Long: `Reads nginx access logs from a file, glob, directory or URL, keeps the
records inside the optional time window and field filter, and prints a
markdown or asciidoc report with request counts, response sizes, the most
requested resources and response codes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return Run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	bindFlags(cmd, f)

	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With("run_id", uuid.NewString())
}

// Run parses the configured sources and writes the report to the configured
// output file, or to stdout when none is set.
func Run(ctx context.Context, cfg *Config, stdout io.Writer) error {
	r, err := cfg.validate()
	if err != nil {
		return err
	}

	logger := newLogger(r.verbose)

	if r.params.FilterField != "" {
		if _, ok := parser.ParseField(r.params.FilterField); !ok {
			logger.Warn("unknown filter field, every record will be rejected", "field", r.params.FilterField)
		}
	}

	logParser := parser.NewParser(parser.WithLogger(logger), parser.WithWorkers(r.workers))

	info, err := logParser.Parse(ctx, r.params)
	if err != nil {
		return fmt.Errorf("parse logs: %w", err)
	}

	logSummary(logger, info)

	meta := domain.NewMeta(r.params.Path, r.from, r.to)
	write := func(w io.Writer) error {
		return report.Write(w, info, meta, r.dialect)
	}

	if r.output == "" {
		if err := write(stdout); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	}

	file, err := os.OpenFile(r.output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if err := writeAndClose(file, write); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// writeAndClose runs write on wc and always closes it. A close error is
// returned when write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if closeErr := wc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	return write(wc)
}

func logSummary(logger *slog.Logger, info *stats.Stats) {
	attrs := []any{"records", info.TotalRequests()}

	if minTime, ok := info.MinTimestamp(); ok {
		attrs = append(attrs, "first", minTime)
	}

	if maxTime, ok := info.MaxTimestamp(); ok {
		attrs = append(attrs, "last", maxTime)
	}

	logger.Info("logs parsed", attrs...)
	logger.Debug("http methods", "methods", info.HTTPMethods())
}
