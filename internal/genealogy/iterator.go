package genealogy

import "iter"

// childView is an ordered snapshot of one virus's children.
type childView[V any] struct {
	items []V
}

// ChildIterator is a bidirectional cursor over the children of one virus,
// ordered by identifier. It is a value: Next and Prev return a moved copy.
//
// Iterators obtained from ChildrenBegin and ChildrenEnd for the same virus
// with no mutation of that virus's children in between share a view and can
// be compared with Equal. A view is a snapshot; later mutations are not
// reflected in it.
type ChildIterator[V any] struct {
	view *childView[V]
	pos  int
}

// Valid reports whether the iterator points at a child, i.e. is neither the
// end position nor the zero ChildIterator.
func (it ChildIterator[V]) Valid() bool {
	return it.view != nil && it.pos >= 0 && it.pos < len(it.view.items)
}

// Value returns the child the iterator points at. It panics if !Valid().
func (it ChildIterator[V]) Value() V {
	if !it.Valid() {
		panic("genealogy: Value called on an iterator that does not point at a child")
	}
	return it.view.items[it.pos]
}

// Next returns an iterator advanced by one. It panics at the end position.
func (it ChildIterator[V]) Next() ChildIterator[V] {
	if it.view == nil || it.pos >= len(it.view.items) {
		panic("genealogy: Next called on an end iterator")
	}
	it.pos++
	return it
}

// Prev returns an iterator moved back by one. It panics at the begin position.
func (it ChildIterator[V]) Prev() ChildIterator[V] {
	if it.view == nil || it.pos <= 0 {
		panic("genealogy: Prev called on a begin iterator")
	}
	it.pos--
	return it
}

// Equal reports whether both iterators share a view and a position.
func (it ChildIterator[V]) Equal(other ChildIterator[V]) bool {
	return it.view == other.view && it.pos == other.pos
}

// ChildrenBegin returns an iterator at the first child of id.
func (g *Genealogy[ID, V]) ChildrenBegin(id ID) (ChildIterator[V], error) {
	view, err := g.children("children_begin", id)
	if err != nil {
		return ChildIterator[V]{}, err
	}
	return ChildIterator[V]{view: view}, nil
}

// ChildrenEnd returns the iterator one past the last child of id.
func (g *Genealogy[ID, V]) ChildrenEnd(id ID) (ChildIterator[V], error) {
	view, err := g.children("children_end", id)
	if err != nil {
		return ChildIterator[V]{}, err
	}
	return ChildIterator[V]{view: view, pos: len(view.items)}, nil
}

// Children returns a sequence over the direct children of id, ordered by
// identifier.
func (g *Genealogy[ID, V]) Children(id ID) (iter.Seq[V], error) {
	view, err := g.children("children", id)
	if err != nil {
		return nil, err
	}
	return func(yield func(V) bool) {
		for _, v := range view.items {
			if !yield(v) {
				return
			}
		}
	}, nil
}

func (g *Genealogy[ID, V]) children(op string, id ID) (*childView[V], error) {
	rec, ok := g.records[id]
	if !ok {
		return nil, opError(op, id, ErrVirusNotFound)
	}
	if rec.view == nil {
		items := make([]V, 0, rec.children.Len())
		rec.children.Ascend(func(cid ID) bool {
			items = append(items, g.records[cid].virus)
			return true
		})
		rec.view = &childView[V]{items: items}
	}
	return rec.view, nil
}
