package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
	"injala/certguard/pkg/history"
	"injala/certguard/pkg/rules"
	"injala/certguard/pkg/server"
	"injala/certguard/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation API server",
	Long: `Start the HTTP validation server.

The server exposes single-document validation over HTTP, a health
endpoint, and Prometheus metrics. When rules watching is enabled the
rule specification reloads on file change; when a retention schedule is
configured the history is pruned on that schedule.

Examples:
  # Start with the configured listen address
  certguard serve

  # Override the listen address
  certguard serve --listen 0.0.0.0:9090`,
	RunE: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}

	store, err := openHistory(cfg)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	if store != nil {
		defer store.Close()
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	p, cleanup, err := buildPipeline(cfg, store, collector)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	defer cleanup()

	loader := rulesLoader(cfg)
	srv := server.NewServer(cfg, p, collector, loader.Load())

	ctx, stop := cli.SignalContext()
	defer stop()

	if cfg.Rules.Watch {
		watcher := rules.NewWatcher(loader, cfg.Rules.Path, cfg.Rules.WatchDebounce)
		go func() {
			err := watcher.Watch(ctx, func(spec *rules.Spec) {
				srv.SetRules(spec)
				collector.RecordRulesReload()
			})
			if err != nil {
				slog.Error("rules watcher failed", "error", err)
			}
		}()
	}

	if store != nil && cfg.History.Retention.Schedule != "" {
		pruner := history.NewPruner(store, retentionConfig(cfg))
		if err := pruner.Start(ctx); err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer pruner.Stop()
	}

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}
