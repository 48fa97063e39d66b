package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.qrocodilerc, $XDG_CONFIG_HOME/qrocodile/config.toml, ~/.config/qrocodile/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path `config init` writes to.
func DefaultPath() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "qrocodile", "config.toml"), nil
}

// FindConfigFile returns the first existing config file path.
func FindConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".qrocodilerc"),
	}

	if p, err := DefaultPath(); err == nil {
		paths = append(paths, p)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Sonos
	if v := os.Getenv("QROCODILE_SONOS_HOST"); v != "" {
		cfg.Sonos.Host = v
	}
	if v := os.Getenv("QROCODILE_SONOS_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Sonos.Port = i
		}
	}
	if v := os.Getenv("QROCODILE_SONOS_DEFAULT_ROOM"); v != "" {
		cfg.Sonos.DefaultRoom = v
	}
	if v := os.Getenv("QROCODILE_SONOS_LINEIN_SOURCE"); v != "" {
		cfg.Sonos.LineInSource = v
	}

	// Spotify
	if v := os.Getenv("QROCODILE_SPOTIFY_CLIENT_ID"); v != "" {
		cfg.Spotify.ClientID = v
	}
	if v := os.Getenv("QROCODILE_SPOTIFY_CLIENT_SECRET"); v != "" {
		cfg.Spotify.ClientSecret = v
	}
	if v := os.Getenv("QROCODILE_SPOTIFY_MARKET"); v != "" {
		cfg.Spotify.Market = v
	}

	// State
	if v := os.Getenv("QROCODILE_STATE_DIR"); v != "" {
		cfg.State.Dir = v
	}

	// Log
	if v := os.Getenv("QROCODILE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("QROCODILE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
