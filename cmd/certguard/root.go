package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/config"
	"injala/certguard/pkg/extract"
	"injala/certguard/pkg/history"
	"injala/certguard/pkg/pipeline"
	"injala/certguard/pkg/rules"
	"injala/certguard/pkg/telemetry/logging"
	"injala/certguard/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "certguard",
	Short: "CertGuard - COI compliance validation engine",
	Long: `CertGuard analyzes Certificate of Insurance (COI) documents and
validates them against a configurable compliance rule specification.

It extracts policy fields (policy number, coverage limits, expiration
dates, additional insureds, cancellation clauses) from certificate text
and runs compliance checks over them, producing per-document results,
batch reports, and a queryable validation history.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file and installs the default
// logger per its telemetry section. --verbose forces debug level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if _, err := logging.Setup(&cfg.Telemetry.Logging, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openHistory opens the configured history backend, nil when history is
// disabled.
func openHistory(cfg *config.Config) (history.Storage, error) {
	if !cfg.History.IsEnabled() {
		return nil, nil
	}

	switch cfg.History.Backend {
	case "memory":
		return history.NewMemoryStorage(), nil
	default:
		if dir := filepath.Dir(cfg.History.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create history directory: %w", err)
			}
		}
		return history.NewSQLiteStorage(&history.SQLiteConfig{
			Path:         cfg.History.SQLite.Path,
			MaxOpenConns: cfg.History.SQLite.MaxOpenConns,
			MaxIdleConns: cfg.History.SQLite.MaxIdleConns,
			WALMode:      cfg.History.SQLite.WALEnabled(),
			BusyTimeout:  cfg.History.SQLite.BusyTimeout,
		})
	}
}

// retentionConfig maps the config retention section onto the pruner's
// configuration.
func retentionConfig(cfg *config.Config) *history.RetentionConfig {
	return &history.RetentionConfig{
		RetentionDays: cfg.History.Retention.Days,
		PruneSchedule: cfg.History.Retention.Schedule,
		MaxRecords:    cfg.History.Retention.MaxRecords,
	}
}

// rulesLoader creates the file-backed rules loader for the configured
// rules path.
func rulesLoader(cfg *config.Config) *rules.Loader {
	return rules.NewLoader(rules.NewFileStore(cfg.Rules.Path))
}

// buildPipeline assembles the validation pipeline from configuration.
// The returned cleanup closes the extraction cache when one was opened.
func buildPipeline(cfg *config.Config, store history.Storage, collector *metrics.Collector) (*pipeline.Pipeline, func(), error) {
	pipelineCfg := pipeline.Config{
		DataPath:   cfg.Pipeline.DataPath,
		Extensions: cfg.Pipeline.Extensions,
		Workers:    cfg.Pipeline.Workers,
		Extractor:  extract.New(nil),
		Validator:  compliance.New(nil),
		Rules:      rulesLoader(cfg),
		History:    store,
		Metrics:    collector,
	}

	cleanup := func() {}
	if cfg.Pipeline.Cache.Enabled {
		cache, err := pipeline.OpenCache(cfg.Pipeline.Cache.Path)
		if err != nil {
			return nil, nil, err
		}
		pipelineCfg.Cache = cache
		cleanup = func() { cache.Close() }
	}

	p, err := pipeline.New(pipelineCfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return p, cleanup, nil
}
