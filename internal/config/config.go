// Package config handles loading and saving user configuration for katsuyou.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the settings file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
	Reading ReadingConfig `yaml:"reading"`
	Share   ShareConfig   `yaml:"share"`
	Anki    AnkiConfig    `yaml:"anki"`
	Log     LogConfig     `yaml:"log"`
}

// OutputConfig controls how conjugation tables are printed.
type OutputConfig struct {
	Format     string   `yaml:"format"`               // table, markdown, json
	Romaji     bool     `yaml:"romaji"`               // show the romaji column
	Color      bool     `yaml:"color"`                // colored category headers
	Categories []string `yaml:"categories,omitempty"` // empty means all
}

// HistoryConfig controls the recent-query list.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Limit   int    `yaml:"limit"`
	Path    string `yaml:"path,omitempty"` // defaults to <config dir>/history.db
}

// ReadingConfig selects where kanji readings come from.
type ReadingConfig struct {
	Tokenizer bool   `yaml:"tokenizer"`         // fall back to the morphological analyzer
	Lexicon   string `yaml:"lexicon,omitempty"` // extra JSONL verb list
}

// ShareConfig holds the base URL used for share links.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AnkiConfig holds defaults for deck augmentation.
type AnkiConfig struct {
	Field string   `yaml:"field"` // note field holding the verb
	Forms []string `yaml:"forms"` // form IDs to add as fields
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
			Romaji: true,
			Color:  true,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   50,
		},
		Reading: ReadingConfig{
			Tokenizer: true,
		},
		Share: ShareConfig{
			BaseURL: "https://katsuyou.app/",
		},
		Anki: AnkiConfig{
			Field: "Verb",
			Forms: []string{"basic/te", "polite/masu", "negative/nai", "past/ta", "potential/potential", "volitional/volitional"},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a configuration file. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadDir loads config.yaml from dir, returning defaults when it does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// HistoryPath returns the history database path for a config directory.
func (c *Config) HistoryPath(dir string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(dir, "history.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "katsuyou"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
