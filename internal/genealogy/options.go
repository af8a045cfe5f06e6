package genealogy

import "cmp"

const defaultDegree = 8

// Option configures a Genealogy at construction.
type Option[ID cmp.Ordered] func(*options[ID])

type options[ID cmp.Ordered] struct {
	degree      int
	checkCycles bool
	observers   []Observer[ID]
}

// WithDegree sets the B-tree degree of the per-virus parent and child sets.
// Values below 2 are ignored.
func WithDegree[ID cmp.Ordered](degree int) Option[ID] {
	return func(o *options[ID]) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

// WithCycleCheck makes Connect reject edges that would make a virus its own
// ancestor with ErrWouldCycle.
func WithCycleCheck[ID cmp.Ordered]() Option[ID] {
	return func(o *options[ID]) {
		o.checkCycles = true
	}
}

// WithObserver registers an observer. It may be given several times; the
// observers are chained in registration order.
func WithObserver[ID cmp.Ordered](obs Observer[ID]) Option[ID] {
	return func(o *options[ID]) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}
