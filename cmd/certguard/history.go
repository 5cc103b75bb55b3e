package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
	"injala/certguard/pkg/history"
)

var historyFlags struct {
	runID     string
	fileName  string
	status    string
	timeRange string
	limit     int
	offset    int
	format    string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query the validation history",
	Long: `Query and maintain the validation audit trail.

Subcommands:
  query - list past validation outcomes with filters
  prune - delete records past the retention window

Examples:
  # Show the most recent outcomes
  certguard history query

  # Show non-compliant outcomes for one file
  certguard history query --file certificate.txt --status non_compliant

  # Delete records outside the configured retention
  certguard history prune`,
}

var historyQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query validation records",
	Long: `Query validation records with filters.

Time Range Format:
  RFC3339 interval format: "start/end"
  Example: "2026-08-01T00:00:00Z/2026-08-24T00:00:00Z"`,
	RunE: queryHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete records past the retention window",
	Long: `Delete validation records older than the configured retention and
trim the record count to the configured maximum.`,
	RunE: pruneHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyQueryCmd, historyPruneCmd)

	historyQueryCmd.Flags().StringVar(&historyFlags.runID, "run-id", "", "filter by run ID")
	historyQueryCmd.Flags().StringVar(&historyFlags.fileName, "file", "", "filter by file name")
	historyQueryCmd.Flags().StringVar(&historyFlags.status, "status", "", "filter by status (compliant, compliant_with_warnings, non_compliant, error)")
	historyQueryCmd.Flags().StringVar(&historyFlags.timeRange, "time-range", "", "time range (RFC3339 interval: start/end)")
	historyQueryCmd.Flags().IntVar(&historyFlags.limit, "limit", 100, "max results")
	historyQueryCmd.Flags().IntVar(&historyFlags.offset, "offset", 0, "pagination offset")
	historyQueryCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func queryHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openHistory(cfg)
	if err != nil {
		return cli.NewCommandError("history query", err)
	}
	if store == nil {
		return cli.NewConfigError("history.enabled", "history is disabled")
	}
	defer store.Close()

	query := &history.Query{
		RunID:    historyFlags.runID,
		FileName: historyFlags.fileName,
		Status:   historyFlags.status,
		Limit:    historyFlags.limit,
		Offset:   historyFlags.offset,
	}
	if historyFlags.timeRange != "" {
		start, end, err := parseTimeRange(historyFlags.timeRange)
		if err != nil {
			return cli.NewCommandError("history query", err)
		}
		query.StartTime = &start
		query.EndTime = &end
	}

	records, err := store.Query(context.Background(), query)
	if err != nil {
		return cli.NewCommandError("history query", err)
	}

	if historyFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}
	for _, r := range records {
		line := fmt.Sprintf("%s  %-24s %s  run=%s",
			r.RecordedAt.Format(time.RFC3339), r.Status, r.FileName, r.RunID)
		if r.Error != "" {
			line += "  error=" + r.Error
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d record(s)\n", len(records))
	return nil
}

func pruneHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openHistory(cfg)
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}
	if store == nil {
		return cli.NewConfigError("history.enabled", "history is disabled")
	}
	defer store.Close()

	pruner := history.NewPruner(store, retentionConfig(cfg))
	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}

	fmt.Printf("Deleted %d record(s)\n", deleted)
	return nil
}

// parseTimeRange parses an RFC3339 interval of the form "start/end".
func parseTimeRange(value string) (time.Time, time.Time, error) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time range %q, want start/end", value)
	}
	start, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range end: %w", err)
	}
	return start, end, nil
}
