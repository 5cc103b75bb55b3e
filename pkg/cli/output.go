package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/pipeline"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human-readable text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
)

// Formatter formats command output.
type Formatter interface {
	Format(data interface{}) ([]byte, error)
	FormatTo(w io.Writer, data interface{}) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct{}

// Format converts data to text format.
func (f *TextFormatter) Format(data interface{}) ([]byte, error) {
	return []byte(fmt.Sprintf("%v\n", data)), nil
}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data interface{}) ([]byte, error) {
	if f.Indent {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TextFormatter{}
	}
}

// RenderValidation writes a human-readable account of one document's
// validation result.
func RenderValidation(w io.Writer, name string, result *compliance.ValidationResult) error {
	if name != "" {
		fmt.Fprintf(w, "File:   %s\n", name)
	}
	fmt.Fprintf(w, "Status: %s\n\n", result.OverallStatus)

	fmt.Fprintln(w, "Checks:")
	checks := []struct {
		name    string
		status  compliance.Status
		message string
	}{
		{compliance.CheckRequiredFields, result.RequiredFields.Status, result.RequiredFields.Message},
		{compliance.CheckCoverageLimits, result.CoverageLimits.Status, result.CoverageLimits.Message},
		{compliance.CheckPolicyExpiration, result.PolicyExpiration.Status, result.PolicyExpiration.Message},
		{compliance.CheckAdditionalInsureds, result.AdditionalInsureds.Status, result.AdditionalInsureds.Message},
		{compliance.CheckCancellationClause, result.CancellationClause.Status, result.CancellationClause.Message},
	}
	for _, c := range checks {
		fmt.Fprintf(w, "  %-20s %-8s %s\n", c.name, c.status, c.message)
	}

	if len(result.RequiredFields.MissingFields) > 0 {
		fmt.Fprintf(w, "\nMissing fields: %s\n", strings.Join(result.RequiredFields.MissingFields, ", "))
	}
	for _, issue := range result.CoverageLimits.Issues {
		fmt.Fprintf(w, "Coverage issue: %s\n", issue.Message)
	}
	return nil
}

// RenderSummary writes a human-readable account of a batch run.
func RenderSummary(w io.Writer, summary *pipeline.Summary) error {
	fmt.Fprintf(w, "Run %s\n", summary.RunID)
	fmt.Fprintf(w, "  Documents:               %d\n", summary.Total)
	fmt.Fprintf(w, "  Compliant:               %d\n", summary.Compliant)
	fmt.Fprintf(w, "  Compliant with warnings: %d\n", summary.CompliantWithWarnings)
	fmt.Fprintf(w, "  Non-compliant:           %d\n", summary.NonCompliant)
	fmt.Fprintf(w, "  Errors:                  %d\n", summary.Errors)
	return nil
}
