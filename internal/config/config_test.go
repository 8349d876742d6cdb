package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"avncore/internal/config"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	opts, err := config.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.CacheBackend != config.CacheSQLite || !opts.Canonicalize {
		t.Errorf("got %+v, want Defaults()", opts)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avncore.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\ncanonicalize: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LogLevel != "debug" || opts.Canonicalize {
		t.Errorf("got %+v, want log_level=debug canonicalize=false", opts)
	}
}

func TestLoad_EnvOverlayWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avncore.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AVNCORE_LOG_LEVEL", "warn")

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LogLevel != "warn" {
		t.Errorf("got LogLevel=%q, want env override warn", opts.LogLevel)
	}
}

func TestApplyFlags_OnlyOverridesSetFlags(t *testing.T) {
	opts := config.Defaults()
	newLevel := "trace"
	config.ApplyFlags(&opts, nil, nil, &newLevel, nil, nil, nil)
	if opts.LogLevel != "trace" {
		t.Errorf("got %q, want trace", opts.LogLevel)
	}
	if opts.CacheBackend != config.CacheSQLite {
		t.Errorf("unset flags should not change CacheBackend, got %q", opts.CacheBackend)
	}
}
