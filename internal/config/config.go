// ABOUTME: Talent configuration management with backend selection.
// ABOUTME: Handles settings, XDG paths, and the storage backend factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/talent/internal/charm"
	"github.com/harperreed/talent/internal/storage"
)

// DefaultServer is the assessment authority endpoint.
const DefaultServer = "https://api.sai.gov.in"

// Config stores talent tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default) or "charm"
	// (Charm KV with automatic cloud sync).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Supports ~
	// expansion. Defaults to ~/.local/share/talent.
	DataDir string `json:"data_dir,omitempty"`

	// Server is the base URL of the assessment authority.
	Server string `json:"server,omitempty"`

	// AthleteID identifies this athlete in submissions. Generated on first
	// run if empty.
	AthleteID string `json:"athlete_id,omitempty"`

	// NoAutoSubmit disables the immediate submission attempt after
	// recording a result; results go straight to the pending queue.
	NoAutoSubmit bool `json:"no_auto_submit,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetServer returns the configured server URL, defaulting to the authority.
func (c *Config) GetServer() string {
	if c.Server == "" {
		return DefaultServer
	}
	return strings.TrimRight(c.Server, "/")
}

// OpenStore opens the storage backend this config selects.
func (c *Config) OpenStore() (storage.Store, error) {
	switch c.GetBackend() {
	case "badger":
		return storage.OpenBadger(filepath.Join(c.GetDataDir(), "talent.db"))
	case "charm":
		cs, err := charm.Open()
		if err != nil {
			return nil, fmt.Errorf("open charm store: %w", err)
		}
		return cs, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (valid: badger, charm)", c.Backend)
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Dir returns the XDG config directory for talent.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "talent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "talent")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from disk. A missing file yields a zero config, not an
// error.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save persists config to disk.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
