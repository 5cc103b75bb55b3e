package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Pipeline.DataPath != DefaultDataPath {
		t.Errorf("DataPath = %q, want %q", cfg.Pipeline.DataPath, DefaultDataPath)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, DefaultListenAddress)
	}
	if cfg.History.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.History.Backend)
	}
	if !cfg.History.IsEnabled() || !cfg.History.SQLite.WALEnabled() || !cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("unset booleans did not default to enabled")
	}
}

func TestLoadConfig_ExplicitFalseSurvivesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
history:
  enabled: false
  sqlite:
    wal_mode: false
telemetry:
  metrics:
    enabled: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.History.IsEnabled() {
		t.Error("History enabled, want explicit false kept")
	}
	if cfg.History.SQLite.WALEnabled() {
		t.Error("WAL mode enabled, want explicit false kept")
	}
	if cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("Metrics enabled, want explicit false kept")
	}
}

func TestLoadConfig_FileValuesOverrideDefaults(t *testing.T) {
	path := writeConfigFile(t, `
pipeline:
  data_path: /srv/certificates
  workers: 8
rules:
  path: /etc/certguard/rules.yaml
  watch: true
server:
  listen_address: "0.0.0.0:9090"
  read_timeout: 10s
telemetry:
  logging:
    level: debug
    format: text
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Pipeline.DataPath != "/srv/certificates" {
		t.Errorf("DataPath = %q", cfg.Pipeline.DataPath)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Pipeline.Workers)
	}
	if !cfg.Rules.Watch {
		t.Error("Rules.Watch = false, want true")
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Telemetry.Logging)
	}
	// Untouched sections still get defaults.
	if cfg.Pipeline.OutputPath != DefaultOutputPath {
		t.Errorf("OutputPath = %q, want default", cfg.Pipeline.OutputPath)
	}
	if cfg.Rules.WatchDebounce != DefaultWatchDebounce {
		t.Errorf("WatchDebounce = %v, want default", cfg.Rules.WatchDebounce)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "pipeline: [broken")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() accepted invalid YAML")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
history:
  backend: cassandra
telemetry:
  logging:
    level: loud
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() accepted invalid configuration")
	}
	if !strings.Contains(err.Error(), "history.backend") {
		t.Errorf("error %q does not mention history.backend", err)
	}
	if !strings.Contains(err.Error(), "telemetry.logging.level") {
		t.Errorf("error %q does not mention telemetry.logging.level", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "127.0.0.1:8080"
`)

	t.Setenv("CERTGUARD_SERVER_LISTEN_ADDRESS", "0.0.0.0:7070")
	t.Setenv("CERTGUARD_PIPELINE_WORKERS", "16")
	t.Setenv("CERTGUARD_RULES_WATCH", "true")
	t.Setenv("CERTGUARD_TELEMETRY_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error: %v", err)
	}
	if cfg.Server.ListenAddress != "0.0.0.0:7070" {
		t.Errorf("ListenAddress = %q, want env override", cfg.Server.ListenAddress)
	}
	if cfg.Pipeline.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Pipeline.Workers)
	}
	if !cfg.Rules.Watch {
		t.Error("Rules.Watch = false, want true from env")
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Telemetry.Logging.Level)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverrideRejected(t *testing.T) {
	path := writeConfigFile(t, "")
	t.Setenv("CERTGUARD_HISTORY_BACKEND", "cassandra")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Fatal("invalid backend override was accepted")
	}
}
