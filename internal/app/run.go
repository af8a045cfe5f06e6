package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
	"github.com/specialistvlad/genealogy/internal/render"
)

// Run loads the scripts, replays them into a fresh genealogy and renders the
// result. The genealogy is rendered even when operations failed; the returned
// error then wraps ErrReplayFailed.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	s, err := a.loader.Load(ctx, a.config.ScriptPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load scripts: %w", err)
	}
	a.logger.Info("Scripts loaded.", "files", len(s.Files), "stem", s.Stem, "ops", len(s.Ops))

	g, j := a.newGenealogy(s.Stem)
	report := Replay(ctx, g, s, a.config.KeepGoing)
	a.logger.Info("Replay finished.",
		"applied", len(report.Applied), "failed", len(report.Failed), "skipped", report.Skipped, "viruses", g.Len())

	if err := g.CheckInvariants(); err != nil {
		return report, fmt.Errorf("genealogy is inconsistent after replay: %w", err)
	}

	if err := render.Write(a.outW, g, a.config.Output, render.TextOptions{Color: a.config.Color}); err != nil {
		return report, fmt.Errorf("failed to render genealogy: %w", err)
	}

	if j != nil {
		if _, err := j.WriteTo(a.logW); err != nil {
			return report, fmt.Errorf("failed to write journal: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return report, report.Err()
}
