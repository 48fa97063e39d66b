package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	speak := true
	return &Config{
		Sonos: SonosConfig{
			Host:         "localhost",
			Port:         5005,
			DefaultRoom:  "Dining Room",
			LineInSource: "Dining Room",
			Timeout:      10,
		},
		Spotify: SpotifyConfig{
			Market:  "US",
			Timeout: 30,
		},
		Scanner: ScannerConfig{
			Command:     "/usr/bin/zbarcam",
			Args:        []string{"--prescale=300x200"},
			PrefixWidth: 8,
		},
		Script: ScriptConfig{
			DelayMS: 4000,
		},
		State: StateConfig{
			Dir:      ".",
			RoomFile: ".last-device",
		},
		Speech: SpeechConfig{
			Enabled: &speak,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Sonos
	if c.Sonos.Host == "" {
		c.Sonos.Host = d.Sonos.Host
	}
	if c.Sonos.Port == 0 {
		c.Sonos.Port = d.Sonos.Port
	}
	if c.Sonos.DefaultRoom == "" {
		c.Sonos.DefaultRoom = d.Sonos.DefaultRoom
	}
	if c.Sonos.LineInSource == "" {
		c.Sonos.LineInSource = d.Sonos.LineInSource
	}
	if c.Sonos.Timeout == 0 {
		c.Sonos.Timeout = d.Sonos.Timeout
	}

	// Spotify
	if c.Spotify.Market == "" {
		c.Spotify.Market = d.Spotify.Market
	}
	if c.Spotify.Timeout == 0 {
		c.Spotify.Timeout = d.Spotify.Timeout
	}

	// Scanner
	if c.Scanner.Command == "" {
		c.Scanner.Command = d.Scanner.Command
	}
	if c.Scanner.Args == nil {
		c.Scanner.Args = d.Scanner.Args
	}
	if c.Scanner.PrefixWidth == 0 {
		c.Scanner.PrefixWidth = d.Scanner.PrefixWidth
	}

	// Script
	if c.Script.DelayMS == 0 {
		c.Script.DelayMS = d.Script.DelayMS
	}

	// State
	if c.State.Dir == "" {
		c.State.Dir = d.State.Dir
	}
	if c.State.RoomFile == "" {
		c.State.RoomFile = d.State.RoomFile
	}

	// Speech
	if c.Speech.Enabled == nil {
		c.Speech.Enabled = d.Speech.Enabled
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
