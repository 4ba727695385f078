package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
collector:
  interval_secs: 5
nats:
  url: "nats://localhost:4222"
  subject: "sendgraph.reports"
api:
  listen_addr: ":8080"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Collector.IntervalSecs != 5 {
		t.Errorf("Expected interval 5, got %d", cfg.Collector.IntervalSecs)
	}
	if cfg.NATS.Subject != "sendgraph.reports" {
		t.Errorf("Unexpected subject %q", cfg.NATS.Subject)
	}
	if cfg.API.ListenAddr != ":8080" {
		t.Errorf("Unexpected listen addr %q", cfg.API.ListenAddr)
	}
}

func TestLoadConfig_DefaultInterval(t *testing.T) {
	path := writeConfig(t, `
nats:
  url: "nats://localhost:4222"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Collector.IntervalSecs != DefaultIntervalSecs {
		t.Errorf("Expected default interval %d, got %d", DefaultIntervalSecs, cfg.Collector.IntervalSecs)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "collector: [not a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestIntervalFromConf(t *testing.T) {
	// Absent option falls back to the default.
	if secs, err := IntervalFromConf(map[string]any{}); err != nil || secs != DefaultIntervalSecs {
		t.Errorf("Expected default %d, got %d (err %v)", DefaultIntervalSecs, secs, err)
	}

	// Integer forms are accepted.
	if secs, err := IntervalFromConf(map[string]any{ConfIntervalKey: 30}); err != nil || secs != 30 {
		t.Errorf("Expected 30, got %d (err %v)", secs, err)
	}
	if secs, err := IntervalFromConf(map[string]any{ConfIntervalKey: float64(15)}); err != nil || secs != 15 {
		t.Errorf("Expected 15, got %d (err %v)", secs, err)
	}
	if secs, err := IntervalFromConf(map[string]any{ConfIntervalKey: "20"}); err != nil || secs != 20 {
		t.Errorf("Expected 20, got %d (err %v)", secs, err)
	}

	// Non-integer and non-positive values are errors, not fallbacks.
	if _, err := IntervalFromConf(map[string]any{ConfIntervalKey: "soon"}); err == nil {
		t.Error("Expected error for non-integer string")
	}
	if _, err := IntervalFromConf(map[string]any{ConfIntervalKey: 2.5}); err == nil {
		t.Error("Expected error for fractional value")
	}
	if _, err := IntervalFromConf(map[string]any{ConfIntervalKey: 0}); err == nil {
		t.Error("Expected error for zero interval")
	}
	if _, err := IntervalFromConf(map[string]any{ConfIntervalKey: -10}); err == nil {
		t.Error("Expected error for negative interval")
	}
}
