// Package guard provides genealogy observers that enforce limits by
// rejecting structural steps, which makes the rejected operation roll back.
package guard

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/genealogy/internal/genealogy"
)

// ErrCapacityExceeded is returned when a creation would exceed the limit.
var ErrCapacityExceeded = errors.New("genealogy capacity exceeded")

// Capacity caps the number of live viruses, stem included.
type Capacity[ID cmp.Ordered] struct {
	max  int
	live int
}

// NewCapacity returns a guard allowing at most limit live viruses. live is the
// current population of the genealogy it is attached to, 1 for a new one.
func NewCapacity[ID cmp.Ordered](limit, live int) *Capacity[ID] {
	return &Capacity[ID]{max: limit, live: live}
}

// Live returns the population the guard is tracking.
func (c *Capacity[ID]) Live() int {
	return c.live
}

func (c *Capacity[ID]) Observe(_ context.Context, ev genealogy.Event[ID]) error {
	switch ev.Kind {
	case genealogy.EventCreated:
		if c.live >= c.max {
			return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, c.max)
		}
		c.live++
	case genealogy.EventRemoved:
		c.live--
	}
	return nil
}

func (c *Capacity[ID]) Revert(_ context.Context, ev genealogy.Event[ID]) {
	switch ev.Kind {
	case genealogy.EventCreated:
		c.live--
	case genealogy.EventRemoved:
		c.live++
	}
}
