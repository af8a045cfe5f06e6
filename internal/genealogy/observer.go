package genealogy

import (
	"cmp"
	"context"
	"fmt"
)

// EventKind identifies the structural step an Event describes.
type EventKind int

const (
	// EventCreated reports a new record. Its edges follow as EventLinked.
	EventCreated EventKind = iota + 1
	// EventLinked reports a new parent -> child edge.
	EventLinked
	// EventUnlinked reports a removed edge with at least one endpoint that
	// outlives the operation: a surviving child losing a removed parent, or a
	// removed virus leaving a surviving parent.
	EventUnlinked
	// EventRemoved reports an erased record. Edges to other viruses removed in
	// the same cascade are implied and not reported separately.
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventLinked:
		return "linked"
	case EventUnlinked:
		return "unlinked"
	case EventRemoved:
		return "removed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single structural step. Parent is only meaningful for
// EventLinked and EventUnlinked.
type Event[ID cmp.Ordered] struct {
	Kind   EventKind
	Virus  ID
	Parent ID
}

func (e Event[ID]) String() string {
	switch e.Kind {
	case EventLinked, EventUnlinked:
		return fmt.Sprintf("%s %v -> %v", e.Kind, e.Parent, e.Virus)
	default:
		return fmt.Sprintf("%s %v", e.Kind, e.Virus)
	}
}

// Observer is notified of every structural step after it is applied.
//
// Returning an error from Observe aborts the whole operation: the genealogy
// undoes every step of the call and then invokes Revert, newest first, for
// each event this call had already delivered successfully. The event that
// failed is never reverted.
type Observer[ID cmp.Ordered] interface {
	Observe(ctx context.Context, ev Event[ID]) error
	Revert(ctx context.Context, ev Event[ID])
}

// Observers combines several observers into one. Events are delivered in
// order; if one rejects an event, the observers that already accepted it are
// reverted before the error is returned.
func Observers[ID cmp.Ordered](obs ...Observer[ID]) Observer[ID] {
	flat := make(chain[ID], 0, len(obs))
	for _, o := range obs {
		if o == nil {
			continue
		}
		if c, ok := o.(chain[ID]); ok {
			flat = append(flat, c...)
			continue
		}
		flat = append(flat, o)
	}
	return flat
}

type chain[ID cmp.Ordered] []Observer[ID]

func (c chain[ID]) Observe(ctx context.Context, ev Event[ID]) error {
	for i, o := range c {
		if err := o.Observe(ctx, ev); err != nil {
			for j := i - 1; j >= 0; j-- {
				c[j].Revert(ctx, ev)
			}
			return err
		}
	}
	return nil
}

func (c chain[ID]) Revert(ctx context.Context, ev Event[ID]) {
	for j := len(c) - 1; j >= 0; j-- {
		c[j].Revert(ctx, ev)
	}
}
