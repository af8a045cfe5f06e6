package genealogy

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/btree"
)

// IDs returns every live identifier in ascending order.
func (g *Genealogy[ID, V]) IDs() []ID {
	return slices.Sorted(maps.Keys(g.records))
}

// Ancestors returns every virus id descends from, in ascending order.
func (g *Genealogy[ID, V]) Ancestors(id ID) ([]ID, error) {
	if !g.Exists(id) {
		return nil, opError("ancestors", id, ErrVirusNotFound)
	}
	return g.walk(id, func(r *record[ID, V]) *btree.BTreeG[ID] { return r.parents }), nil
}

// Descendants returns every virus derived from id, in ascending order.
func (g *Genealogy[ID, V]) Descendants(id ID) ([]ID, error) {
	if !g.Exists(id) {
		return nil, opError("descendants", id, ErrVirusNotFound)
	}
	return g.walk(id, func(r *record[ID, V]) *btree.BTreeG[ID] { return r.children }), nil
}

// walk collects everything reachable from start along next, start excluded
// unless it lies on a cycle.
func (g *Genealogy[ID, V]) walk(start ID, next func(*record[ID, V]) *btree.BTreeG[ID]) []ID {
	seen := make(map[ID]struct{})
	queue := []ID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next(g.records[cur]).Ascend(func(id ID) bool {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				queue = append(queue, id)
			}
			return true
		})
	}
	return slices.Sorted(maps.Keys(seen))
}

// isAncestorOrSelf reports whether candidate is id or one of its ancestors.
func (g *Genealogy[ID, V]) isAncestorOrSelf(candidate, id ID) bool {
	if candidate == id {
		return true
	}
	seen := map[ID]struct{}{id: {}}
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		found := false
		g.records[cur].parents.Ascend(func(pid ID) bool {
			if pid == candidate {
				found = true
				return false
			}
			if _, ok := seen[pid]; !ok {
				seen[pid] = struct{}{}
				stack = append(stack, pid)
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// CheckInvariants verifies the structural invariants: the stem exists and
// has no parents, every other virus has at least one parent, and every edge
// is recorded on both endpoints. It returns all violations joined.
func (g *Genealogy[ID, V]) CheckInvariants() error {
	var errs []error

	stem, ok := g.records[g.stemID]
	if !ok {
		errs = append(errs, fmt.Errorf("stem %v is missing", g.stemID))
	} else if stem.parents.Len() != 0 {
		errs = append(errs, fmt.Errorf("stem %v has parents %v", g.stemID, keys(stem.parents)))
	}

	for _, id := range g.IDs() {
		rec := g.records[id]
		if rec.virus.ID() != id {
			errs = append(errs, fmt.Errorf("virus stored under %v reports id %v", id, rec.virus.ID()))
		}
		if id != g.stemID && rec.parents.Len() == 0 {
			errs = append(errs, fmt.Errorf("virus %v has no parents", id))
		}
		rec.parents.Ascend(func(pid ID) bool {
			parent, ok := g.records[pid]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("virus %v names missing parent %v", id, pid))
			case !parent.children.Has(id):
				errs = append(errs, fmt.Errorf("parent %v does not list child %v", pid, id))
			}
			return true
		})
		rec.children.Ascend(func(cid ID) bool {
			child, ok := g.records[cid]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("virus %v names missing child %v", id, cid))
			case !child.parents.Has(id):
				errs = append(errs, fmt.Errorf("child %v does not list parent %v", cid, id))
			}
			return true
		})
	}
	return errors.Join(errs...)
}
