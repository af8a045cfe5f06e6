// Package journal records the committed structural history of a genealogy.
//
// A Journal is a genealogy.Observer. Events from operations that are rolled
// back are reverted out of the journal, so its contents always describe the
// steps that actually took effect, in order.
package journal

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/specialistvlad/genealogy/internal/genealogy"
)

// Entry is one committed event with its position in the journal.
type Entry[ID cmp.Ordered] struct {
	Seq   int
	Event genealogy.Event[ID]
}

// Journal is an append-only log of genealogy events.
type Journal[ID cmp.Ordered] struct {
	next    int
	entries []Entry[ID]
}

// New creates an empty journal.
func New[ID cmp.Ordered]() *Journal[ID] {
	return &Journal[ID]{next: 1}
}

// Observe appends ev.
func (j *Journal[ID]) Observe(_ context.Context, ev genealogy.Event[ID]) error {
	j.entries = append(j.entries, Entry[ID]{Seq: j.next, Event: ev})
	j.next++
	return nil
}

// Revert drops the newest entry if it is ev. The genealogy reverts events
// newest first, so this always matches in practice.
func (j *Journal[ID]) Revert(_ context.Context, ev genealogy.Event[ID]) {
	n := len(j.entries)
	if n == 0 || j.entries[n-1].Event != ev {
		return
	}
	j.entries = j.entries[:n-1]
	j.next--
}

// Entries returns a copy of the journal.
func (j *Journal[ID]) Entries() []Entry[ID] {
	return slices.Clone(j.entries)
}

// Len returns the number of committed events.
func (j *Journal[ID]) Len() int {
	return len(j.entries)
}

// WriteTo writes one line per entry, e.g. "3 linked stem -> alpha".
func (j *Journal[ID]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range j.entries {
		n, err := fmt.Fprintf(w, "%d %s\n", e.Seq, e.Event)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
