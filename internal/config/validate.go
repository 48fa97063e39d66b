package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Sonos.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sonos: %w", err))
	}
	if err := c.Spotify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spotify: %w", err))
	}
	if err := c.Scanner.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scanner: %w", err))
	}
	if err := c.Script.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("script: %w", err))
	}
	if err := c.State.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("state: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks SonosConfig for errors.
func (c *SonosConfig) Validate() error {
	if strings.ContainsAny(c.Host, "/ ") {
		return fmt.Errorf("invalid host: %q (hostname or IP only)", c.Host)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}
	return nil
}

// Validate checks SpotifyConfig for errors.
func (c *SpotifyConfig) Validate() error {
	if (c.ClientID == "") != (c.ClientSecret == "") {
		return errors.New("client_id and client_secret must be set together")
	}
	if c.Market != "" && len(c.Market) != 2 {
		return fmt.Errorf("invalid market: %s (must be an ISO 3166-1 alpha-2 code)", c.Market)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}
	return nil
}

// Validate checks ScannerConfig for errors.
func (c *ScannerConfig) Validate() error {
	if c.PrefixWidth < 0 {
		return errors.New("prefix_width must be non-negative")
	}
	return nil
}

// Validate checks ScriptConfig for errors.
func (c *ScriptConfig) Validate() error {
	if c.DelayMS < 0 {
		return errors.New("delay_ms must be non-negative")
	}
	return nil
}

// Validate checks StateConfig for errors.
func (c *StateConfig) Validate() error {
	if strings.HasSuffix(c.RoomFile, "/") {
		return fmt.Errorf("invalid room_file: %s (must name a file)", c.RoomFile)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	switch c.Format {
	case "", "auto", "console", "json":
		// valid
	default:
		return fmt.Errorf("invalid log format: %s (must be auto, console, or json)", c.Format)
	}
	return nil
}
