package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
server:
  port: 5001
  read_timeout: 15s
  write_timeout: 30s
  shutdown_timeout: 10s
metrics:
  enabled: true
  path: /metrics
logging:
  level: info
  format: json
  output: stdout
marketdata:
  base_url: https://query1.finance.yahoo.com
  range: 2y
  period_days: 730
  timeout: 10s
  suffixes: ["", ".NS", ".BO"]
  min_rows: 50
forecast:
  min_history: 100
  min_trained: 50
  train_split: 0.8
  seed: 42
  confidence_floor: 40
  confidence_ceiling: 95
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 5001 {
		t.Fatalf("port %d", cfg.Server.Port)
	}
	if len(cfg.MarketData.Suffixes) != 3 || cfg.MarketData.Suffixes[1] != ".NS" {
		t.Fatalf("suffixes %v", cfg.MarketData.Suffixes)
	}
	if cfg.Forecast.TrainSplit != 0.8 {
		t.Fatalf("train split %v", cfg.Forecast.TrainSplit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MARKET_DATA_SUFFIXES", ".NS,.BO")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("PORT override not applied: %d", cfg.Server.Port)
	}
	if len(cfg.MarketData.Suffixes) != 2 {
		t.Fatalf("suffix override not applied: %v", cfg.MarketData.Suffixes)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level override not applied: %s", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadSplit(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Forecast.TrainSplit = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for train_split outside (0, 1)")
	}

	cfg.Forecast.TrainSplit = 0.8
	cfg.Forecast.ConfidenceFloor = 99
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for floor above ceiling")
	}
}
