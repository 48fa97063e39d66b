package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadFromAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[sonos]
host = "sonos.lan"
default_room = "Kitchen"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Sonos.Host != "sonos.lan" {
		t.Errorf("Sonos.Host = %q, want %q", cfg.Sonos.Host, "sonos.lan")
	}
	if cfg.Sonos.DefaultRoom != "Kitchen" {
		t.Errorf("Sonos.DefaultRoom = %q, want %q", cfg.Sonos.DefaultRoom, "Kitchen")
	}
	if cfg.Sonos.Port != 5005 {
		t.Errorf("Sonos.Port = %d, want 5005", cfg.Sonos.Port)
	}
	if got := cfg.Sonos.BaseURL(); got != "http://sonos.lan:5005" {
		t.Errorf("BaseURL() = %q, want %q", got, "http://sonos.lan:5005")
	}
	if cfg.Scanner.PrefixWidth != 8 {
		t.Errorf("Scanner.PrefixWidth = %d, want 8", cfg.Scanner.PrefixWidth)
	}
	if got := cfg.Script.Delay(); got != 4*time.Second {
		t.Errorf("Script.Delay() = %v, want 4s", got)
	}
	if !cfg.Speech.On() {
		t.Error("Speech.On() = false, want true by default")
	}
}

func TestLoadFromSpeechDisabled(t *testing.T) {
	path := writeConfig(t, `
[speech]
enabled = false
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Speech.On() {
		t.Error("Speech.On() = true, want false")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[spotify]
client_id = "file-id"
client_secret = "file-secret"
`)
	t.Setenv("QROCODILE_SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("QROCODILE_SONOS_PORT", "5006")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Spotify.ClientID != "env-id" {
		t.Errorf("Spotify.ClientID = %q, want %q", cfg.Spotify.ClientID, "env-id")
	}
	if cfg.Spotify.ClientSecret != "file-secret" {
		t.Errorf("Spotify.ClientSecret = %q, want %q", cfg.Spotify.ClientSecret, "file-secret")
	}
	if cfg.Sonos.Port != 5006 {
		t.Errorf("Sonos.Port = %d, want 5006", cfg.Sonos.Port)
	}
	if !cfg.Spotify.Configured() {
		t.Error("Spotify.Configured() = false, want true")
	}
}

func TestRoomPath(t *testing.T) {
	tests := []struct {
		name  string
		state StateConfig
		want  string
	}{
		{"relative", StateConfig{Dir: "/var/lib/qrocodile", RoomFile: ".last-device"}, "/var/lib/qrocodile/.last-device"},
		{"absolute", StateConfig{Dir: "/ignored", RoomFile: "/tmp/room"}, "/tmp/room"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.RoomPath(); got != tt.want {
				t.Errorf("RoomPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Sonos.Port = 70000 }, "sonos: invalid port"},
		{"host with path", func(c *Config) { c.Sonos.Host = "localhost/api" }, "sonos: invalid host"},
		{"half credentials", func(c *Config) { c.Spotify.ClientID = "id" }, "spotify: client_id and client_secret"},
		{"bad market", func(c *Config) { c.Spotify.Market = "USA" }, "spotify: invalid market"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log: invalid log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log: invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
