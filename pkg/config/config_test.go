package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
environment: test
server:
  port: 8080
marketdata:
  benchmark_symbol: "^GSPC"
alerts:
  enabled: true
  schedule: "*/5 * * * *"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MarketData.LookbackDays != 30 {
		t.Errorf("lookback_days default = %d, want 30", cfg.MarketData.LookbackDays)
	}
	if cfg.MarketData.BenchmarkDays != 7 {
		t.Errorf("benchmark_days default = %d, want 7", cfg.MarketData.BenchmarkDays)
	}
	if cfg.Forecast.DefaultHorizon != 7 {
		t.Errorf("default_horizon default = %d, want 7", cfg.Forecast.DefaultHorizon)
	}
	if cfg.Forecast.MAWindow != 50 {
		t.Errorf("ma_window default = %d, want 50", cfg.Forecast.MAWindow)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	if err == nil {
		t.Fatal("expected validation error for missing environment")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("MARKETDATA_BASE_URL", "http://localhost:9999")
	cfg, err := LoadWithEnv(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MarketData.BaseURL != "http://localhost:9999" {
		t.Errorf("base_url = %q, env override not applied", cfg.MarketData.BaseURL)
	}
}
