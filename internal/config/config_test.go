package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if !reflect.DeepEqual(cfg.Extensions, DefaultExtensions) {
		t.Errorf("expected default extensions, got %v", cfg.Extensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "human" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	wd := t.TempDir()

	cfg := DefaultConfig()
	cfg.Ignores = []string{"third_party/"}
	cfg.Extensions = []string{"c", "h"}
	cfg.Logging.Level = "debug"
	if err := cfg.Save(wd); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadConfig(wd)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(got.Ignores, cfg.Ignores) {
		t.Errorf("ignores: expected %v, got %v", cfg.Ignores, got.Ignores)
	}
	if !reflect.DeepEqual(got.Extensions, cfg.Extensions) {
		t.Errorf("extensions: expected %v, got %v", cfg.Extensions, got.Extensions)
	}
	if got.Logging.Level != "debug" {
		t.Errorf("logging level: expected debug, got %s", got.Logging.Level)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	wd := t.TempDir()
	dir := filepath.Join(wd, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadConfig(wd); err == nil {
		t.Error("expected an error for invalid config JSON")
	}
}

func TestMergeIgnores(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ignores = []string{"third_party/", "build/"}

	merged := cfg.MergeIgnores([]string{"generated/", "third_party/", ""})

	seen := make(map[string]int)
	for _, pat := range merged {
		seen[pat]++
	}
	for pat, n := range seen {
		if n > 1 {
			t.Errorf("pattern %q appears %d times", pat, n)
		}
	}
	for _, want := range append(DefaultIgnores, "third_party/", "generated/") {
		if seen[want] != 1 {
			t.Errorf("expected %q in merged ignores, got %v", want, merged)
		}
	}
	if seen[""] != 0 {
		t.Error("empty patterns must be dropped")
	}
}
