package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
)

var checkFlags struct {
	format string
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a single certificate document",
	Long: `Validate one certificate document against the compliance rules.

The document text is read from the given file, or from stdin when no
file (or "-") is given.

Examples:
  # Check a certificate file
  certguard check certificate.txt

  # Check text piped on stdin, JSON output
  cat certificate.txt | certguard check --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkDocument,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

func checkDocument(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var text []byte
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		text, err = os.ReadFile(args[0])
		if err != nil {
			return cli.NewCommandError("check", fmt.Errorf("read document: %w", err))
		}
		name = filepath.Base(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cli.NewCommandError("check", fmt.Errorf("read stdin: %w", err))
		}
	}

	p, cleanup, err := buildPipeline(cfg, nil, nil)
	if err != nil {
		return cli.NewCommandError("check", err)
	}
	defer cleanup()

	spec := rulesLoader(cfg).Load()
	fields, result := p.ValidateText(string(text), spec)

	if checkFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, map[string]any{
			"file_name":          name,
			"compliance_status":  result.OverallStatus,
			"validation_results": result,
			"extracted_fields":   fields,
		})
	}
	return cli.RenderValidation(os.Stdout, name, result)
}
