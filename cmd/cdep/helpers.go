package main

import (
	"fmt"
	"os"

	"cdep/internal/config"
	"cdep/internal/graph"
	"cdep/internal/logging"
)

// bootLogger reports problems that occur before the configured logger
// exists (config loading itself).
var bootLogger = logging.NewLogger(logging.Config{
	Format: logging.HumanFormat,
	Level:  logging.WarnLevel,
})

// workDir returns the directory whose .cdep state is used, or exits.
func workDir() string {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return wd
}

// loadConfigOrDefault loads .cdep/config.json, falling back to defaults.
func loadConfigOrDefault(wd string) *config.Config {
	cfg, err := config.LoadConfig(wd)
	if err != nil {
		bootLogger.Warn("failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.DefaultConfig()
	}
	return cfg
}

// mustLoadIndex loads the persisted index or exits with the error's
// suggested fix. A missing or corrupt index is fatal to queries.
func mustLoadIndex(wd string) *graph.Index {
	idx, err := graph.LoadAny(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return idx
}

// newLogger creates a logger honoring the config's logging section,
// with CDEP_LOG_LEVEL taking precedence.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if env := os.Getenv("CDEP_LOG_LEVEL"); env != "" {
		level = env
	}
	return logging.NewLogger(logging.Config{
		Format: logging.ParseFormat(cfg.Logging.Format),
		Level:  logging.ParseLevel(level),
	})
}
