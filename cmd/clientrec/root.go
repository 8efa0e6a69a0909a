package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"clientrec/internal/client/metrics"
	"clientrec/internal/client/service"
	"clientrec/internal/client/tracer"
	"clientrec/internal/platform/config"
	"clientrec/internal/platform/logger"
)

var version = "dev"

// app carries the dependencies shared by every subcommand. They are built in
// the root PersistentPreRunE, once flags and environment are known.
type app struct {
	svc      *service.Service
	registry *prometheus.Registry
	log      *slog.Logger

	asJSON      bool
	dumpMetrics bool
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "clientrec",
		Short: "Build and merge client records",
		Long: `clientrec validates client records in their short form
(client_id, last_name, initials, phone) or full form
(client_id, last_name, first_name, middle_name, address, phone).

Every command accepts a JSON object, a ";"-separated line, the fields as
separate arguments, or a JSON file via --file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.writeMetrics(stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print records as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print intake counters to stderr on exit")

	rootCmd.AddCommand(newShortCmd(a))
	rootCmd.AddCommand(newFullCmd(a))
	rootCmd.AddCommand(newMergeCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.log = logger.NewWithWriter(cfg, stderr)
	a.registry = prometheus.NewRegistry()
	a.svc = service.New(
		service.WithLogger(a.log),
		service.WithMetrics(metrics.New(a.registry)),
		service.WithTracer(tracer.NewOTel()),
		service.WithMaxDocumentBytes(cfg.MaxDocumentBytes),
	)

	a.log.Debug("clientrec configured",
		"version", version,
		"log_format", cfg.LogFormat,
		"max_document_bytes", cfg.MaxDocumentBytes,
	)
	return nil
}

// writeMetrics prints the intake counters in the Prometheus text format.
// PersistentPostRun only runs after a successful command.
func (a *app) writeMetrics(w io.Writer) {
	if !a.dumpMetrics || a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.log.Error("failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			a.log.Error("failed to write metrics", "error", err)
			return
		}
	}
}
