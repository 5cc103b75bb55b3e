package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.txt", "beta")
	writeDoc(t, dir, "a.TXT", "alpha")
	writeDoc(t, dir, "c.pdf", "gamma")
	writeDoc(t, dir, "notes.md", "ignored")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDoc(t, filepath.Join(dir, "nested"), "d.txt", "delta")

	docs, err := Scan(dir, []string{".pdf", ".txt"})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var names []string
	for _, d := range docs {
		names = append(names, d.FileName)
	}
	want := []string{"a.TXT", "b.txt", "c.pdf", "d.txt"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", names, want)
	}

	first := docs[0]
	if first.FileSize != int64(len("alpha")) {
		t.Errorf("FileSize = %d, want %d", first.FileSize, len("alpha"))
	}
	if first.Source != "local" {
		t.Errorf("Source = %q, want local", first.Source)
	}
	if first.LastModified.IsZero() {
		t.Errorf("LastModified is zero")
	}
	if first.FilePath != filepath.Join(dir, "a.TXT") {
		t.Errorf("FilePath = %q", first.FilePath)
	}
}

func TestScan_MissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent"), []string{".txt"}); err == nil {
		t.Errorf("Scan of missing directory succeeded")
	}
}
