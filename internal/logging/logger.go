// Package logging builds the zap logger shared by the dispatcher and its clients.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/tessro/qrocodile/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level   string
	Format  string
	File    string
	Verbose bool
}

// FromConfig derives logger options from the [log] section.
func FromConfig(cfg *config.LogConfig, verbose bool) Options {
	if cfg == nil {
		return Options{Level: "info", Format: "auto", Verbose: verbose}
	}
	return Options{
		Level:   cfg.Level,
		Format:  cfg.Format,
		File:    cfg.File,
		Verbose: verbose,
	}
}

// New constructs a zap logger writing to stderr and, optionally, a file.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoding, err := resolveEncoding(opts.Format)
	if err != nil {
		return nil, err
	}

	outputs := []string{"stderr"}
	if opts.File != "" {
		outputs = append(outputs, opts.File)
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(encoding),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Printf adapts a logger to the printf-style hook used by the catalog client.
func Printf(logger *zap.Logger) func(format string, args ...interface{}) {
	sugar := logger.Sugar()
	return func(format string, args ...interface{}) {
		sugar.Debugf(format, args...)
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
}

// resolveEncoding picks console output for terminals and JSON otherwise
// when the format is "auto".
func resolveEncoding(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto":
		if term.IsTerminal(int(os.Stderr.Fd())) {
			return "console", nil
		}
		return "json", nil
	case "console":
		return "console", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("log format: unsupported value %q", format)
	}
}

func encoderConfig(encoding string) zapcore.EncoderConfig {
	if encoding == "console" {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return ec
	}
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return ec
}
