// ABOUTME: Tests for config defaults, persistence, and path expansion.
// ABOUTME: Redirects XDG_CONFIG_HOME into a temp dir.
package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %s, want badger", got)
	}
	if got := cfg.GetServer(); got != DefaultServer {
		t.Errorf("GetServer() = %s, want %s", got, DefaultServer)
	}
	if got := cfg.GetDataDir(); !strings.HasSuffix(got, "talent") {
		t.Errorf("GetDataDir() = %s, want a talent data dir", got)
	}
}

func TestServerTrailingSlashTrimmed(t *testing.T) {
	cfg := &Config{Server: "http://localhost:9999/"}
	if got := cfg.GetServer(); got != "http://localhost:9999" {
		t.Errorf("GetServer() = %s", got)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load missing config: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("missing config should be zero, got %+v", cfg)
	}

	cfg.Backend = "charm"
	cfg.AthleteID = "athlete-1"
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if loaded.Backend != "charm" || loaded.AthleteID != "athlete-1" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "sqlite"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestExpandPath(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q", got)
	}
	got := ExpandPath("~/data")
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, filepath.Join("data")) {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
}
