package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvStoragePath = "TALLY_STORAGE_PATH"
	EnvCurrency    = "TALLY_CURRENCY"
	EnvLogLevel    = "TALLY_LOG_LEVEL"
)

// Config represents tally.yaml (or tally.toml).
type Config struct {
	StoragePath string     `yaml:"storage_path" toml:"storage_path"`
	Currency    string     `yaml:"currency" toml:"currency"`
	User        UserConfig `yaml:"user" toml:"user"`
	Categories  []string   `yaml:"categories,omitempty" toml:"categories,omitempty"`
	Log         LogConfig  `yaml:"log" toml:"log"`
}

// UserConfig holds the defaults used by non-interactive commands.
type UserConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Budget int64  `yaml:"budget" toml:"budget"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// Load reads a config file, choosing YAML or TOML by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	switch format(path) {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config, choosing YAML or TOML by extension.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(*cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any TALLY_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvStoragePath); ok && v != "" {
		cfg.StoragePath = v
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		cfg.Currency = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		StoragePath: "expenses.csv",
		Currency:    "Rs.",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
