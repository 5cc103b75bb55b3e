package pipeline

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"injala/certguard/pkg/coi"
)

// Scan walks dataPath recursively and returns metadata for every file
// whose extension matches one of extensions (case-insensitive).
// Results are sorted by path so runs are deterministic.
func Scan(dataPath string, extensions []string) ([]coi.DocumentInfo, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var docs []coi.DocumentInfo
	err := filepath.WalkDir(dataPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		docs = append(docs, coi.DocumentInfo{
			FilePath:     path,
			FileName:     d.Name(),
			FileSize:     info.Size(),
			Source:       "local",
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dataPath, err)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	slog.Default().With("component", "pipeline").Info("documents ingested",
		"data_path", dataPath,
		"count", len(docs),
	)
	return docs, nil
}
