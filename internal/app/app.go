package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
	"github.com/specialistvlad/genealogy/internal/genealogy"
	"github.com/specialistvlad/genealogy/internal/guard"
	"github.com/specialistvlad/genealogy/internal/journal"
	"github.com/specialistvlad/genealogy/internal/script"
	"github.com/specialistvlad/genealogy/internal/virus"
)

// Genealogy is the concrete engine the application replays scripts into.
type Genealogy = genealogy.Genealogy[string, *virus.Virus]

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
	loader *script.Loader
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW; logs and the --trace journal go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		config: cfg,
		loader: script.NewLoader(),
	}
}

// Load reads and validates the configured scripts without replaying them.
func (a *App) Load(ctx context.Context) (*script.Script, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.loader.Load(ctx, a.config.ScriptPaths...)
}

// newGenealogy builds an engine rooted at stem with the configured options.
// The returned journal is nil unless tracing is on.
func (a *App) newGenealogy(stem string) (*Genealogy, *journal.Journal[string]) {
	var opts []genealogy.Option[string]
	if a.config.CheckCycles {
		opts = append(opts, genealogy.WithCycleCheck[string]())
	}
	if a.config.MaxViruses > 0 {
		opts = append(opts, genealogy.WithObserver[string](guard.NewCapacity[string](a.config.MaxViruses, 1)))
	}

	var j *journal.Journal[string]
	if a.config.Trace {
		j = journal.New[string]()
		opts = append(opts, genealogy.WithObserver[string](j))
	}
	return genealogy.New(stem, virus.New, opts...), j
}
