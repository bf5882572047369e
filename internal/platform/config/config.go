// Package config resolves where timecli keeps its data and the tunables the
// core consumes: daily goal, per-slot target, short-id prefix length, and
// which store feeds the reports. Values layer as defaults < config.yaml <
// TIMECLI_* environment < explicit flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "timecli"
	configFileName = "config.yaml"
	dbFileName     = "timecli.db"

	defaultDailyGoal         = 8 * time.Hour
	defaultSlotTargetMinutes = 30
	defaultShortIDLength     = 8
)

// Report sources selectable via ReportSource.
const (
	SourceSessions = "sessions"
	SourceSlots    = "slots"
)

type Config struct {
	DataDir           string
	DailyGoal         time.Duration
	SlotTargetMinutes int
	ShortIDLength     int
	ReportSource      string
}

// fileConfig mirrors Config for the optional YAML file. Durations are kept
// as strings so "8h" and "7h30m" both work.
type fileConfig struct {
	DailyGoal         string `yaml:"daily_goal"`
	SlotTargetMinutes *int   `yaml:"slot_target_minutes"`
	ShortIDLength     *int   `yaml:"short_id_length"`
	ReportSource      string `yaml:"report_source"`
}

// envOverrides uses pointer fields so a value is applied only when the
// variable is actually set.
type envOverrides struct {
	DailyGoal         *time.Duration `env:"TIMECLI_DAILY_GOAL"`
	SlotTargetMinutes *int           `env:"TIMECLI_SLOT_TARGET_MINUTES"`
	ShortIDLength     *int           `env:"TIMECLI_SHORT_ID_LENGTH"`
	ReportSource      *string        `env:"TIMECLI_REPORT_SOURCE"`
}

// Load builds the effective configuration. dataDirFlag, when non-empty,
// overrides every other data-dir source.
func Load(dataDirFlag string) (Config, error) {
	dataDir := dataDirFlag
	if dataDir == "" {
		dataDir = os.Getenv("TIMECLI_DATA_DIR")
	}
	if dataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = dir
	}
	cfg := Config{
		DataDir:           dataDir,
		DailyGoal:         defaultDailyGoal,
		SlotTargetMinutes: defaultSlotTargetMinutes,
		ShortIDLength:     defaultShortIDLength,
		ReportSource:      SourceSessions,
	}
	if err := applyFile(&cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config) error {
	raw, err := os.ReadFile(filepath.Join(cfg.DataDir, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode %s: %w", configFileName, err)
	}
	if fc.DailyGoal != "" {
		goal, err := time.ParseDuration(fc.DailyGoal)
		if err != nil {
			return fmt.Errorf("decode %s: daily_goal: %w", configFileName, err)
		}
		cfg.DailyGoal = goal
	}
	if fc.SlotTargetMinutes != nil {
		cfg.SlotTargetMinutes = *fc.SlotTargetMinutes
	}
	if fc.ShortIDLength != nil {
		cfg.ShortIDLength = *fc.ShortIDLength
	}
	if fc.ReportSource != "" {
		cfg.ReportSource = fc.ReportSource
	}
	return nil
}

func applyEnv(cfg *Config) error {
	overrides := envOverrides{}
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if overrides.DailyGoal != nil {
		cfg.DailyGoal = *overrides.DailyGoal
	}
	if overrides.SlotTargetMinutes != nil {
		cfg.SlotTargetMinutes = *overrides.SlotTargetMinutes
	}
	if overrides.ShortIDLength != nil {
		cfg.ShortIDLength = *overrides.ShortIDLength
	}
	if overrides.ReportSource != nil {
		cfg.ReportSource = *overrides.ReportSource
	}
	return nil
}

func (c Config) validate() error {
	if c.DailyGoal <= 0 {
		return fmt.Errorf("daily goal must be positive, got %s", c.DailyGoal)
	}
	if c.SlotTargetMinutes <= 0 {
		return fmt.Errorf("slot target minutes must be positive, got %d", c.SlotTargetMinutes)
	}
	if c.ShortIDLength < 4 || c.ShortIDLength > 32 {
		return fmt.Errorf("short id length must be between 4 and 32, got %d", c.ShortIDLength)
	}
	if c.ReportSource != SourceSessions && c.ReportSource != SourceSlots {
		return fmt.Errorf("report source must be %q or %q, got %q", SourceSessions, SourceSlots, c.ReportSource)
	}
	return nil
}

// DBPath is the SQLite database location inside the data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFileName)
}

func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
