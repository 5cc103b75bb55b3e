package pipeline

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"injala/certguard/pkg/coi"
)

// Cache stores extracted field sets keyed by document path, size and
// modification time, so unchanged documents skip re-extraction across
// runs. Entries for changed documents are simply overwritten.
type Cache struct {
	db     *sql.DB
	logger *slog.Logger
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS extract_cache (
    file_path TEXT PRIMARY KEY,
    file_size INTEGER NOT NULL,
    modified_at INTEGER NOT NULL,
    fields TEXT NOT NULL
);
`

// OpenCache opens (or creates) the extraction cache database at path.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open extraction cache: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports a single writer

	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Cache{
		db:     db,
		logger: slog.Default().With("component", "pipeline.cache"),
	}, nil
}

// Get returns the cached field set for the document, or false when the
// document is absent or has changed since it was cached.
func (c *Cache) Get(info coi.DocumentInfo) (*coi.FieldSet, bool) {
	var size, modified int64
	var fields string
	err := c.db.QueryRow(
		"SELECT file_size, modified_at, fields FROM extract_cache WHERE file_path = ?",
		info.FilePath,
	).Scan(&size, &modified, &fields)
	if err != nil {
		return nil, false
	}
	if size != info.FileSize || modified != info.LastModified.Unix() {
		return nil, false
	}

	var fs coi.FieldSet
	if err := json.Unmarshal([]byte(fields), &fs); err != nil {
		c.logger.Warn("corrupt cache entry dropped", "file_path", info.FilePath, "error", err)
		return nil, false
	}
	return &fs, true
}

// Put stores the field set for the document, replacing any prior entry.
func (c *Cache) Put(info coi.DocumentInfo, fields *coi.FieldSet) {
	data, err := json.Marshal(fields)
	if err != nil {
		return
	}
	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO extract_cache (file_path, file_size, modified_at, fields) VALUES (?, ?, ?, ?)",
		info.FilePath, info.FileSize, info.LastModified.Unix(), string(data),
	)
	if err != nil {
		c.logger.Warn("cache write failed", "file_path", info.FilePath, "error", err)
	}
}

// Close releases the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
