package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Standby.WeeklyQuota != 3 || cfg.Standby.DailyLoadLimit != 7 {
		t.Errorf("standby limits = %d/%d, want 3/7", cfg.Standby.WeeklyQuota, cfg.Standby.DailyLoadLimit)
	}
	if cfg.Tolerances.LeftMargin != 100 {
		t.Errorf("left margin = %v, want 100", cfg.Tolerances.LeftMargin)
	}
	if cfg.StateDir != "state" {
		t.Errorf("state dir = %q, want state", cfg.StateDir)
	}
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigilia.json")
	content := `{
		"standby": {"weekly_quota": 2},
		"tolerances": {"left_margin": 80},
		"state_dir": "/var/lib/vigilia"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Standby.WeeklyQuota != 2 {
		t.Errorf("weekly quota = %d, want 2", cfg.Standby.WeeklyQuota)
	}
	// Unset fields still get defaults.
	if cfg.Standby.DailyLoadLimit != 7 {
		t.Errorf("daily load limit = %d, want default 7", cfg.Standby.DailyLoadLimit)
	}
	if cfg.Tolerances.LeftMargin != 80 {
		t.Errorf("left margin = %v, want 80", cfg.Tolerances.LeftMargin)
	}
	if cfg.Tolerances.HeaderBuffer != 20 {
		t.Errorf("header buffer = %v, want default 20", cfg.Tolerances.HeaderBuffer)
	}
	if cfg.StateDir != "/var/lib/vigilia" {
		t.Errorf("state dir = %q", cfg.StateDir)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigilia.yaml")
	content := "standby:\n  daily_load_limit: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Standby.DailyLoadLimit != 6 {
		t.Errorf("daily load limit = %d, want 6", cfg.Standby.DailyLoadLimit)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VIGILIA_STANDBY__WEEKLY_QUOTA", "4")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Standby.WeeklyQuota != 4 {
		t.Errorf("weekly quota = %d, want env override 4", cfg.Standby.WeeklyQuota)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load("vigilia.toml"); err == nil {
		t.Error("Load() accepted an unsupported config format")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigilia.json")
	if err := os.WriteFile(path, []byte(`{"standby": {"weekly_quota": -1}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a negative weekly quota")
	}
}
