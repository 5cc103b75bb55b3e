package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"injala/certguard/pkg/compliance"
)

// Report file names within the output directory.
const (
	JSONReportName = "compliance_report.json"
	CSVReportName  = "compliance_report.csv"
)

// WriteReports writes the JSON and CSV compliance reports for a run
// into outputPath, creating the directory if needed.
func WriteReports(outputPath string, summary *Summary) error {
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger := slog.Default().With("component", "pipeline.report")

	jsonPath := filepath.Join(outputPath, JSONReportName)
	data, err := json.MarshalIndent(summary.Results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	logger.Info("json report written", "path", jsonPath)

	csvPath := filepath.Join(outputPath, CSVReportName)
	if err := writeCSVReport(csvPath, summary.Results); err != nil {
		return err
	}
	logger.Info("csv report written", "path", csvPath)

	return nil
}

func writeCSVReport(path string, results []*DocumentResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"file_name",
		"compliance_status",
		"issues",
		"warnings",
		"missing_fields",
		"policy_expiration",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, result := range results {
		row := flattenResult(result)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// flattenResult collapses a document result into the CSV columns:
// failed-check messages under issues, expiration warnings under
// warnings, plus the missing fields and expiration date.
func flattenResult(result *DocumentResult) []string {
	if result.Validation == nil {
		return []string{
			result.FileName,
			string(result.ComplianceStatus),
			result.Error,
			"", "", "",
		}
	}

	v := result.Validation
	var issues, warnings []string

	if v.RequiredFields.Status == compliance.StatusFail {
		issues = append(issues, v.RequiredFields.MissingFields...)
	}
	for _, issue := range v.CoverageLimits.Issues {
		issues = append(issues, issue.Message)
	}
	switch v.PolicyExpiration.Status {
	case compliance.StatusFail:
		issues = append(issues, v.PolicyExpiration.Message)
	case compliance.StatusWarning:
		warnings = append(warnings, v.PolicyExpiration.Message)
	}
	if v.AdditionalInsureds.Status == compliance.StatusFail {
		issues = append(issues, v.AdditionalInsureds.Message)
	}

	return []string{
		result.FileName,
		string(result.ComplianceStatus),
		strings.Join(issues, "; "),
		strings.Join(warnings, "; "),
		strings.Join(v.RequiredFields.MissingFields, ", "),
		v.PolicyExpiration.ExpirationDate,
	}
}
