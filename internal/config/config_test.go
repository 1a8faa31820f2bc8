package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KrE80r/energy-front/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
plans_file: all_energy_plans.json
filters:
  effective_since: "2026-07-01"
  exclude_retailers:
    - Shady Power
  exclude_restriction_flags:
    - SC
server:
  port: "9090"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PlansFile != "all_energy_plans.json" {
		t.Errorf("PlansFile = %q", cfg.PlansFile)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.RecordFilters()) != 3 {
		t.Errorf("filters = %d, want 3", len(cfg.RecordFilters()))
	}
}

func TestLoadRejectsBadDate(t *testing.T) {
	path := writeConfig(t, `
filters:
  effective_since: "01/07/2026"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("bad effective_since accepted")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level == "" {
		t.Error("logging defaults not applied")
	}
	if len(cfg.RecordFilters()) != 0 {
		t.Error("default config should carry no filters")
	}
}

func TestFilterRecords(t *testing.T) {
	path := writeConfig(t, `
filters:
  effective_since: "2026-07-01"
  exclude_retailers:
    - Shady Power
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	records := []model.TariffRecord{
		{PlanID: "KEEP", RetailerName: "Good Energy",
			EffectiveDate: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{PlanID: "STALE", RetailerName: "Good Energy",
			EffectiveDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{PlanID: "BANNED", RetailerName: "Shady Power",
			EffectiveDate: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{PlanID: "UNDATED", RetailerName: "Good Energy"},
	}

	out := cfg.FilterRecords(records)
	if len(out) != 2 || out[0].PlanID != "KEEP" || out[1].PlanID != "UNDATED" {
		t.Fatalf("FilterRecords = %+v, want [KEEP UNDATED]", out)
	}
}
