package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Sonos   SonosConfig   `toml:"sonos"`
	Spotify SpotifyConfig `toml:"spotify"`
	Scanner ScannerConfig `toml:"scanner"`
	Script  ScriptConfig  `toml:"script"`
	State   StateConfig   `toml:"state"`
	Speech  SpeechConfig  `toml:"speech"`
	Log     LogConfig     `toml:"log"`
}

// SonosConfig holds settings for the node-sonos-http-api bridge.
type SonosConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	DefaultRoom  string `toml:"default_room"`
	LineInSource string `toml:"linein_source"`
	Timeout      int    `toml:"timeout"`
}

// SpotifyConfig holds Spotify Web API settings used for catalog lookups.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Market       string `toml:"market"`
	Timeout      int    `toml:"timeout"`
}

// ScannerConfig describes the QR scanner subprocess.
type ScannerConfig struct {
	Command     string   `toml:"command"`
	Args        []string `toml:"args"`
	PrefixWidth int      `toml:"prefix_width"`
}

// ScriptConfig holds settings for replaying tokens from a file.
type ScriptConfig struct {
	DelayMS int `toml:"delay_ms"`
}

// StateConfig holds the location of the persisted room record.
type StateConfig struct {
	Dir      string `toml:"dir"`
	RoomFile string `toml:"room_file"`
}

// SpeechConfig controls spoken acknowledgments.
type SpeechConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// BaseURL returns the bridge root, e.g. http://localhost:5005.
func (c *SonosConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// RequestTimeout returns the per-request timeout for bridge calls.
func (c *SonosConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Configured reports whether catalog credentials are present.
func (c *SpotifyConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// RequestTimeout returns the per-request timeout for catalog calls.
func (c *SpotifyConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Delay returns the pause between replayed tokens.
func (c *ScriptConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// RoomPath returns the full path of the persisted room record.
func (c *StateConfig) RoomPath() string {
	if filepath.IsAbs(c.RoomFile) {
		return c.RoomFile
	}
	return filepath.Join(c.Dir, c.RoomFile)
}

// LockPath returns the path of the single-instance lock file.
func (c *StateConfig) LockPath() string {
	return c.RoomPath() + ".lock"
}

// On reports whether spoken acknowledgments are enabled.
func (c *SpeechConfig) On() bool {
	return c.Enabled == nil || *c.Enabled
}
