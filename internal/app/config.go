package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/genealogy/internal/render"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPaths []string // hcl files or directories

	LogFormat string
	LogLevel  string
	Output    render.Format
	Color     bool

	CheckCycles bool
	KeepGoing   bool
	MaxViruses  int // 0 means unlimited
	Trace       bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ScriptPaths) == 0 {
		return nil, errors.New("at least one script path is required")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q, expected one of %v", cfg.LogLevel, logLevels)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q, expected one of %v", cfg.LogFormat, logFormats)
	}

	if cfg.Output == "" {
		cfg.Output = render.FormatText
	}
	format, err := render.ParseFormat(string(cfg.Output))
	if err != nil {
		return nil, err
	}
	cfg.Output = format

	if cfg.MaxViruses < 0 {
		return nil, fmt.Errorf("max viruses must not be negative, got %d", cfg.MaxViruses)
	}

	return &cfg, nil
}
