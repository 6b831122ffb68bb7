// Package config loads planner settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/planner/internal/codec"
	"github.com/roach88/planner/internal/report"
	"github.com/roach88/planner/internal/schedule"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "planner.yaml"

// DefaultJournalFile is the audit journal location. An empty journal_file
// disables the journal.
const DefaultJournalFile = "planner.db"

// Environment variables that override file values.
const (
	EnvDataFile    = "PLANNER_DATA_FILE"
	EnvJournalFile = "PLANNER_JOURNAL_FILE"
	EnvLogLevel    = "PLANNER_LOG_LEVEL"
	EnvTimezone    = "PLANNER_TIMEZONE"
)

// Config is the top-level application configuration.
type Config struct {
	// DataFile is the obfuscated schedule file.
	DataFile string `yaml:"data_file" json:"data_file"`

	// JournalFile is the SQLite audit journal. Empty disables journaling.
	JournalFile string `yaml:"journal_file" json:"journal_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Timezone is an IANA zone name, or "Local", used for "today" and ICS
	// timestamps.
	Timezone string `yaml:"timezone" json:"timezone"`

	// Capacity bounds the schedule. Values above 500 are rejected.
	Capacity int `yaml:"capacity" json:"capacity"`

	// ExportFile is the default destination of the export command.
	ExportFile string `yaml:"export_file" json:"export_file"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataFile:    codec.DefaultPath,
		JournalFile: DefaultJournalFile,
		LogLevel:    "warn",
		Timezone:    "Local",
		Capacity:    schedule.DefaultCapacity,
		ExportFile:  report.DefaultExportPath,
	}
}

// Normalize fills in missing/zero values with defaults so partially-filled
// configs still behave correctly. JournalFile is left alone since empty is
// meaningful.
func (c *Config) Normalize() {
	if c.DataFile == "" {
		c.DataFile = codec.DefaultPath
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Capacity == 0 {
		c.Capacity = schedule.DefaultCapacity
	}
	if c.ExportFile == "" {
		c.ExportFile = report.DefaultExportPath
	}
}

// ApplyEnv overrides fields from environment variables found via lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataFile); ok && v != "" {
		c.DataFile = v
	}
	if v, ok := lookup(EnvJournalFile); ok {
		// Set-but-empty disables the journal.
		c.JournalFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvTimezone); ok && v != "" {
		c.Timezone = v
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the configuration against the embedded CUE schema and
// resolves the time zone.
func (c *Config) Validate() error {
	if err := validateSchema(c); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Load reads configuration from path, then normalizes it.
//
// Behavior:
//   - If the file does not exist, the defaults are returned with no error.
//   - If the file exists, YAML is unmarshalled over the defaults.
//
// Load does not apply environment overrides or validate; callers run
// ApplyEnv then Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename, with 0600
// permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".planner-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Level maps LogLevel to a slog level. Unknown values yield warn.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
