// Package config handles cdep configuration loading and defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigDir is the repo-local directory holding cdep state.
const ConfigDir = ".cdep"

// DefaultIgnores is the default ignore list applied during discovery.
// Patterns are plain substrings matched against the full path. It is a
// configuration value, not mutable state: callers merge it with their
// own patterns via MergeIgnores.
var DefaultIgnores = []string{
	".git/",
	".hg/",
	".svn/",
	".cdep/",
	"build/",
	"cmake-build-",
	"out/",
	"dist/",
	"node_modules/",
	"vendor/",
	".cache/",
}

// DefaultExtensions is the recognized extension set (no dots).
var DefaultExtensions = []string{"c", "h", "hh", "hpp", "hxx", "inc"}

// Config represents the complete cdep configuration
type Config struct {
	Version    int           `json:"version" mapstructure:"version"`
	Ignores    []string      `json:"ignores" mapstructure:"ignores"`
	Extensions []string      `json:"extensions" mapstructure:"extensions"`
	Logging    LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Ignores:    nil,
		Extensions: append([]string(nil), DefaultExtensions...),
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <workDir>/.cdep/config.json.
// A missing config file is not an error; defaults are returned.
func LoadConfig(workDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, ConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}

	return cfg, nil
}

// Save writes the configuration to <workDir>/.cdep/config.json
func (c *Config) Save(workDir string) error {
	dir := filepath.Join(workDir, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// MergeIgnores combines the default ignore list, the config's ignore
// list, and caller-supplied patterns, deduplicated in that order.
func (c *Config) MergeIgnores(extra []string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, group := range [][]string{DefaultIgnores, c.Ignores, extra} {
		for _, pat := range group {
			if pat == "" || seen[pat] {
				continue
			}
			seen[pat] = true
			merged = append(merged, pat)
		}
	}
	return merged
}
