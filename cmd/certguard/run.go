package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
	"injala/certguard/pkg/pipeline"
)

var runFlags struct {
	dataPath   string
	outputPath string
	workers    int
	format     string
	noReports  bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Validate every document in the data directory",
	Long: `Run the batch validation pipeline over the configured data directory.

Every matching document is ingested, its fields extracted, and the
compliance checks evaluated. Results are written as JSON and CSV reports
to the output directory and recorded in the validation history.

Examples:
  # Validate the configured data directory
  certguard run

  # Validate a different directory with more workers
  certguard run --data ./certificates --workers 8

  # Print the summary as JSON and skip report files
  certguard run --format json --no-reports`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.dataPath, "data", "", "override data directory")
	runCmd.Flags().StringVar(&runFlags.outputPath, "output", "", "override report output directory")
	runCmd.Flags().IntVar(&runFlags.workers, "workers", 0, "override worker count")
	runCmd.Flags().StringVar(&runFlags.format, "format", "text", "summary output format: text, json")
	runCmd.Flags().BoolVar(&runFlags.noReports, "no-reports", false, "skip writing report files")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runFlags.dataPath != "" {
		cfg.Pipeline.DataPath = runFlags.dataPath
	}
	if runFlags.outputPath != "" {
		cfg.Pipeline.OutputPath = runFlags.outputPath
	}
	if runFlags.workers > 0 {
		cfg.Pipeline.Workers = runFlags.workers
	}

	store, err := openHistory(cfg)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	if store != nil {
		defer store.Close()
	}

	p, cleanup, err := buildPipeline(cfg, store, nil)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	defer cleanup()

	ctx, stop := cli.SignalContext()
	defer stop()

	summary, err := p.Run(ctx)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	if !runFlags.noReports {
		if err := pipeline.WriteReports(cfg.Pipeline.OutputPath, summary); err != nil {
			return cli.NewCommandError("run", err)
		}
		fmt.Fprintf(os.Stderr, "Reports written to %s\n", cfg.Pipeline.OutputPath)
	}

	if runFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, summary)
	}
	return cli.RenderSummary(os.Stdout, summary)
}
