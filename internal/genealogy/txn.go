package genealogy

import (
	"cmp"
	"context"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
)

// txn is the undo log of a single mutating call.
type txn[ID cmp.Ordered] struct {
	ctx      context.Context
	observer Observer[ID]
	undo     []func()
	observed []Event[ID]
}

func (g *Genealogy[ID, V]) begin(ctx context.Context) *txn[ID] {
	return &txn[ID]{ctx: ctx, observer: g.observer}
}

// applied registers the inverse of a step that has just been applied.
func (t *txn[ID]) applied(undo func()) {
	t.undo = append(t.undo, undo)
}

// emit delivers ev to the observer and remembers it for Revert.
func (t *txn[ID]) emit(ev Event[ID]) error {
	if err := t.observer.Observe(t.ctx, ev); err != nil {
		return err
	}
	t.observed = append(t.observed, ev)
	return nil
}

// rollback undoes every applied step, newest first, then reverts the events
// the observer had accepted.
func (t *txn[ID]) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	for i := len(t.observed) - 1; i >= 0; i-- {
		t.observer.Revert(t.ctx, t.observed[i])
	}
	t.undo = nil
	t.observed = nil
}

// abort rolls t back and wraps cause as the error of op on id.
func (t *txn[ID]) abort(op string, id ID, cause error) error {
	t.rollback()
	ctxlog.FromContext(t.ctx).Warn("Genealogy operation rolled back.", "op", op, "id", id, "error", cause)
	return opError(op, id, cause)
}
