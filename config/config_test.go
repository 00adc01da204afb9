package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Codec != "json" {
		t.Errorf("expect default codec json, got %q", cfg.Codec)
	}
	if time.Duration(cfg.ReadyDelay) != 3*time.Second {
		t.Errorf("expect default ready delay 3s, got %v", time.Duration(cfg.ReadyDelay))
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expect default log level warn, got %q", cfg.LogLevel)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("codec: binary\nready_delay: 250ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Codec != "binary" {
		t.Errorf("expect codec binary, got %q", cfg.Codec)
	}
	if time.Duration(cfg.ReadyDelay) != 250*time.Millisecond {
		t.Errorf("expect ready delay 250ms, got %v", time.Duration(cfg.ReadyDelay))
	}
	// Untouched key keeps its default.
	if cfg.LogLevel != "warn" {
		t.Errorf("expect log level warn, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ready_delay: soon\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expect error for unparsable duration")
	}
}
