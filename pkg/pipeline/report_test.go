package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/rules"
)

func TestWriteReports(t *testing.T) {
	p := newTestPipeline(t, Config{DataPath: "."})
	spec := rules.Default()

	goodFields, goodResult := p.ValidateText(compliantCOI, spec)
	badFields, badResult := p.ValidateText(noncompliantCOI, spec)

	summary := &Summary{
		RunID: "run-1",
		Total: 3,
		Results: []*DocumentResult{
			{
				FileName:         "compliant.txt",
				FilePath:         "/data/compliant.txt",
				ComplianceStatus: goodResult.OverallStatus,
				Validation:       goodResult,
				Fields:           goodFields,
			},
			{
				FileName:         "noncompliant.txt",
				FilePath:         "/data/noncompliant.txt",
				ComplianceStatus: badResult.OverallStatus,
				Validation:       badResult,
				Fields:           badFields,
			},
			{
				FileName:         "broken.txt",
				FilePath:         "/data/broken.txt",
				ComplianceStatus: compliance.StatusError,
				Error:            "text extraction failed: no such file",
			},
		},
	}

	outDir := filepath.Join(t.TempDir(), "output")
	if err := WriteReports(outDir, summary); err != nil {
		t.Fatalf("WriteReports: %v", err)
	}

	jsonData, err := os.ReadFile(filepath.Join(outDir, JSONReportName))
	if err != nil {
		t.Fatalf("read json report: %v", err)
	}
	var decoded []*DocumentResult
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("decode json report: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("json report holds %d results, want 3", len(decoded))
	}
	if decoded[0].ComplianceStatus != compliance.Compliant {
		t.Errorf("json result[0] status = %q, want compliant", decoded[0].ComplianceStatus)
	}
	if decoded[2].Error == "" || decoded[2].Validation != nil {
		t.Errorf("json result[2] lost its error shape: %+v", decoded[2])
	}

	csvFile, err := os.Open(filepath.Join(outDir, CSVReportName))
	if err != nil {
		t.Fatalf("open csv report: %v", err)
	}
	defer csvFile.Close()
	rows, err := csv.NewReader(csvFile).ReadAll()
	if err != nil {
		t.Fatalf("read csv report: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("csv report holds %d rows, want header plus 3", len(rows))
	}

	wantHeader := []string{"file_name", "compliance_status", "issues", "warnings", "missing_fields", "policy_expiration"}
	if strings.Join(rows[0], "|") != strings.Join(wantHeader, "|") {
		t.Errorf("csv header = %v, want %v", rows[0], wantHeader)
	}

	goodRow := rows[1]
	if goodRow[0] != "compliant.txt" || goodRow[1] != string(compliance.Compliant) {
		t.Errorf("compliant row = %v", goodRow)
	}
	if goodRow[2] != "" || goodRow[4] != "" {
		t.Errorf("compliant row carries issues: %v", goodRow)
	}
	if goodRow[5] == "" {
		t.Errorf("compliant row lost its expiration date")
	}

	badRow := rows[2]
	if badRow[1] != string(compliance.NonCompliant) {
		t.Errorf("noncompliant row status = %q", badRow[1])
	}
	if !strings.Contains(badRow[2], "policy_number") {
		t.Errorf("noncompliant row issues = %q, want missing policy_number listed", badRow[2])
	}
	if !strings.Contains(badRow[4], "policy_number") {
		t.Errorf("noncompliant row missing_fields = %q", badRow[4])
	}

	errRow := rows[3]
	want := []string{"broken.txt", "error", "text extraction failed: no such file", "", "", ""}
	if strings.Join(errRow, "|") != strings.Join(want, "|") {
		t.Errorf("errored row = %v, want %v", errRow, want)
	}
}
