package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"injala/certguard/pkg/coi"
	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/pipeline"
	"injala/certguard/pkg/rules"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	output, err := formatter.Format("test message")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(output) != "test message\n" {
		t.Errorf("Format() = %q, want %q", string(output), "test message\n")
	}

	buf := &bytes.Buffer{}
	if err := formatter.FormatTo(buf, "test message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "test message\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "test message\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}
	buf := &bytes.Buffer{}

	if err := formatter.FormatTo(buf, map[string]string{"test": "value"}); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("FormatTo() produced invalid JSON: %v", err)
	}
	if result["test"] != "value" {
		t.Errorf("FormatTo() = %v", result)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		want   string
	}{
		{name: "text formatter", format: FormatText, want: "*cli.TextFormatter"},
		{name: "json formatter", format: FormatJSON, want: "*cli.JSONFormatter"},
		{name: "default to text", format: "unknown", want: "*cli.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format)
			got := fmt.Sprintf("%T", formatter)
			if got != tt.want {
				t.Errorf("NewFormatter(%q) type = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestRenderValidation(t *testing.T) {
	fields := &coi.FieldSet{
		InsuranceCompany: "Acme Mutual Insurance Company",
		InsuredName:      "Bright Path Construction",
		PolicyPeriod:     coi.PolicyPeriod{ExpirationDate: "01/15/2026"},
	}
	result := compliance.New(nil).Validate(fields, rules.Default())

	buf := &bytes.Buffer{}
	if err := RenderValidation(buf, "cert.txt", result); err != nil {
		t.Fatalf("RenderValidation: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "File:   cert.txt") {
		t.Errorf("output lacks file name:\n%s", out)
	}
	if !strings.Contains(out, "Status: "+string(result.OverallStatus)) {
		t.Errorf("output lacks overall status:\n%s", out)
	}
	for _, check := range []string{
		compliance.CheckRequiredFields,
		compliance.CheckCoverageLimits,
		compliance.CheckPolicyExpiration,
		compliance.CheckAdditionalInsureds,
		compliance.CheckCancellationClause,
	} {
		if !strings.Contains(out, check) {
			t.Errorf("output lacks %s line:\n%s", check, out)
		}
	}
	if !strings.Contains(out, "Missing fields: "+coi.FieldPolicyNumber) {
		t.Errorf("output lacks missing-fields line:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	err := RenderSummary(buf, &pipeline.Summary{
		RunID:        "run-1",
		Total:        3,
		Compliant:    1,
		NonCompliant: 1,
		Errors:       1,
	})
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Run run-1", "Documents:               3", "Compliant:               1", "Errors:                  1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
