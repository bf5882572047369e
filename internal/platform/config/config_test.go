package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"timecli/internal/platform/config"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("data dir = %s, want %s", cfg.DataDir, dir)
	}
	if cfg.DailyGoal != 8*time.Hour {
		t.Fatalf("daily goal = %s, want 8h", cfg.DailyGoal)
	}
	if cfg.SlotTargetMinutes != 30 || cfg.ShortIDLength != 8 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReportSource != config.SourceSessions {
		t.Fatalf("report source = %s", cfg.ReportSource)
	}
	if cfg.DBPath() != filepath.Join(dir, "timecli.db") {
		t.Fatalf("db path = %s", cfg.DBPath())
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := "daily_goal: 6h30m\nslot_target_minutes: 45\nreport_source: slots\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DailyGoal != 6*time.Hour+30*time.Minute {
		t.Fatalf("daily goal = %s", cfg.DailyGoal)
	}
	if cfg.SlotTargetMinutes != 45 {
		t.Fatalf("slot target = %d", cfg.SlotTargetMinutes)
	}
	if cfg.ReportSource != config.SourceSlots {
		t.Fatalf("report source = %s", cfg.ReportSource)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("daily_goal: 6h\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TIMECLI_DAILY_GOAL", "4h")
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DailyGoal != 4*time.Hour {
		t.Fatalf("daily goal = %s, want env override 4h", cfg.DailyGoal)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("report_source: spreadsheet\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(dir); err == nil {
		t.Fatalf("unknown report source should fail")
	}
}
