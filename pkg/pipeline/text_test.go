package pipeline

import (
	"path/filepath"
	"testing"

	"injala/certguard/pkg/coi"
)

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "cert.txt", "certificate text")

	doc := ReadDocument(coi.DocumentInfo{
		FilePath: filepath.Join(dir, "cert.txt"),
		FileName: "cert.txt",
		Source:   "local",
	})

	if doc.ExtractionMethod != coi.ExtractionDirect {
		t.Errorf("ExtractionMethod = %q, want %q", doc.ExtractionMethod, coi.ExtractionDirect)
	}
	if doc.ExtractedText != "certificate text" {
		t.Errorf("ExtractedText = %q", doc.ExtractedText)
	}
	if doc.TextLength != len("certificate text") {
		t.Errorf("TextLength = %d", doc.TextLength)
	}
	if doc.Error != "" {
		t.Errorf("Error = %q, want empty", doc.Error)
	}
}

func TestReadDocument_MissingFile(t *testing.T) {
	doc := ReadDocument(coi.DocumentInfo{
		FilePath: filepath.Join(t.TempDir(), "gone.txt"),
		FileName: "gone.txt",
	})

	if doc.ExtractionMethod != coi.ExtractionError {
		t.Errorf("ExtractionMethod = %q, want %q", doc.ExtractionMethod, coi.ExtractionError)
	}
	if doc.Error == "" {
		t.Errorf("Error is empty for unreadable file")
	}
	if doc.ExtractedText != "" {
		t.Errorf("ExtractedText = %q, want empty", doc.ExtractedText)
	}
}
