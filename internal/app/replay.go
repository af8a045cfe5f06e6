package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
	"github.com/specialistvlad/genealogy/internal/script"
)

// ErrReplayFailed is returned by Run when at least one operation failed.
var ErrReplayFailed = errors.New("replay failed")

// OpResult pairs a failed operation with its error.
type OpResult struct {
	Op  script.Op
	Err error
}

func (r OpResult) String() string {
	return fmt.Sprintf("%s: %s: %v", r.Op.Range, r.Op, r.Err)
}

// Report summarizes a replay.
type Report struct {
	Applied []script.Op
	Failed  []OpResult
	// Skipped counts the operations not attempted after a failure.
	Skipped int
}

// Err returns nil for a clean replay, otherwise an ErrReplayFailed error
// naming the first failure.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	total := len(r.Applied) + len(r.Failed) + r.Skipped
	return fmt.Errorf("%w: %d of %d operations failed, first: %s", ErrReplayFailed, len(r.Failed), total, r.Failed[0])
}

// Replay applies the script's operations to g in order. Unless keepGoing is
// set, it stops at the first failure. A failed operation leaves g unchanged.
func Replay(ctx context.Context, g *Genealogy, s *script.Script, keepGoing bool) *Report {
	logger := ctxlog.FromContext(ctx)
	report := &Report{}

	for i, op := range s.Ops {
		err := apply(ctx, g, op)
		if err == nil {
			logger.Debug("Operation applied.", "op", op.String(), "at", op.Range.String())
			report.Applied = append(report.Applied, op)
			continue
		}

		logger.Warn("Operation failed.", "op", op.String(), "at", op.Range.String(), "error", err)
		report.Failed = append(report.Failed, OpResult{Op: op, Err: err})
		if !keepGoing {
			report.Skipped = len(s.Ops) - i - 1
			break
		}
	}
	return report
}

func apply(ctx context.Context, g *Genealogy, op script.Op) error {
	switch op.Kind {
	case script.OpCreate:
		return g.Create(ctx, op.ID, op.Parents)
	case script.OpConnect:
		return g.Connect(ctx, op.ID, op.Parents[0])
	case script.OpRemove:
		return g.Remove(ctx, op.ID)
	default:
		return fmt.Errorf("unknown operation kind %v", op.Kind)
	}
}
