package config

import "time"

// Config is the root configuration structure for certguard. It contains
// all configuration sections for the validation pipeline, compliance
// rules, validation history, the HTTP server, and telemetry.
type Config struct {
	// Pipeline contains document ingestion and processing configuration.
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Rules contains the compliance rules source configuration.
	Rules RulesConfig `yaml:"rules"`

	// History contains validation-history storage and retention settings.
	History HistoryConfig `yaml:"history"`

	// Server contains HTTP server configuration for serve mode.
	Server ServerConfig `yaml:"server"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PipelineConfig contains configuration for the validation pipeline.
type PipelineConfig struct {
	// DataPath is the directory scanned for certificate documents.
	// Default: "data"
	DataPath string `yaml:"data_path"`

	// OutputPath is the directory reports are written to.
	// Default: "output"
	OutputPath string `yaml:"output_path"`

	// Extensions lists the file extensions accepted during ingestion.
	// Default: [".pdf", ".txt"]
	Extensions []string `yaml:"extensions"`

	// Workers is the number of documents processed concurrently.
	// Default: 4
	Workers int `yaml:"workers"`

	// Cache contains the extraction cache configuration.
	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig contains configuration for the extraction result cache.
type CacheConfig struct {
	// Enabled controls whether extraction results are cached between
	// runs. Default: false
	Enabled bool `yaml:"enabled"`

	// Path is the cache database file path.
	// Default: "data/extract_cache.db"
	Path string `yaml:"path"`
}

// RulesConfig contains configuration for the compliance rules source.
type RulesConfig struct {
	// Path is the rules file location. A missing file is created with
	// the built-in defaults on first load.
	// Default: "config/compliance_rules.json"
	Path string `yaml:"path"`

	// Watch reloads the rules automatically when the file changes.
	// Only honored in serve mode. Default: false
	Watch bool `yaml:"watch"`

	// WatchDebounce coalesces rapid successive file changes into one
	// reload. Default: 200ms
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// HistoryConfig contains configuration for validation-history storage.
type HistoryConfig struct {
	// Enabled controls whether validation outcomes are recorded. It is
	// a pointer so an explicit false in the file is distinguishable
	// from an omitted key. Default: true
	Enabled *bool `yaml:"enabled"`

	// Backend selects the storage backend.
	// Options: "sqlite", "memory"
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLite contains settings for the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Retention contains history retention settings.
	Retention RetentionConfig `yaml:"retention"`
}

// IsEnabled reports whether history recording is on. An unset value
// follows the default and means enabled.
func (c *HistoryConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// SQLiteConfig contains settings for the SQLite history backend.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "data/history.db"
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables Write-Ahead Logging mode. Pointer for the same
	// reason as HistoryConfig.Enabled. Default: true
	WALMode *bool `yaml:"wal_mode"`

	// BusyTimeout is the wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// WALEnabled reports whether Write-Ahead Logging is on. An unset value
// follows the default and means enabled.
func (c *SQLiteConfig) WALEnabled() bool {
	return c.WALMode == nil || *c.WALMode
}

// RetentionConfig contains history retention settings.
type RetentionConfig struct {
	// Days is the number of days to retain history records.
	// 0 keeps records forever. Default: 90
	Days int `yaml:"days"`

	// Schedule is a cron expression for scheduled pruning in serve
	// mode. Empty disables scheduling. Default: "0 3 * * *"
	Schedule string `yaml:"schedule"`

	// MaxRecords caps the total record count. 0 means unlimited.
	MaxRecords int64 `yaml:"max_records"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port the server listens on.
	// Format: "host:port". Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire
	// request, including the body. Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response. Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request
	// when keep-alives are enabled. Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown. Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// TelemetryConfig contains logging and metrics configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level sets the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format selects the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Pointer for the same reason as HistoryConfig.Enabled.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Path is the HTTP path the metrics handler is mounted on.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace.
	// Default: "certguard"
	Namespace string `yaml:"namespace"`
}

// IsEnabled reports whether metrics collection is on. An unset value
// follows the default and means enabled.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
