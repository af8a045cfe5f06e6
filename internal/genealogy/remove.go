package genealogy

import (
	"context"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
)

// Remove erases a virus together with every descendant that is left without
// a parent as a result.
//
// It fails with ErrTriedToRemoveStemVirus for the stem and ErrVirusNotFound
// for an absent identifier. If any step of the cascade fails the genealogy is
// restored to its state before the call.
func (g *Genealogy[ID, V]) Remove(ctx context.Context, id ID) error {
	logger := ctxlog.FromContext(ctx)
	if id == g.stemID {
		return opError("remove", id, ErrTriedToRemoveStemVirus)
	}
	if !g.Exists(id) {
		return opError("remove", id, ErrVirusNotFound)
	}

	order, doomed := g.planRemoval(id)

	tx := g.begin(ctx)
	for _, victim := range order {
		rec := g.records[victim]

		// Children outliving the cascade lose this parent first.
		for _, cid := range keys(rec.children) {
			if _, gone := doomed[cid]; gone {
				continue
			}
			child := g.records[cid]
			child.parents.Delete(victim)
			tx.applied(func() { child.parents.ReplaceOrInsert(victim) })
			if err := tx.emit(Event[ID]{Kind: EventUnlinked, Virus: cid, Parent: victim}); err != nil {
				return tx.abort("remove", id, err)
			}
		}

		for _, pid := range keys(rec.parents) {
			if _, gone := doomed[pid]; gone {
				continue
			}
			parent := g.records[pid]
			parent.removeChild(victim)
			tx.applied(func() { parent.addChild(victim) })
			if err := tx.emit(Event[ID]{Kind: EventUnlinked, Virus: victim, Parent: pid}); err != nil {
				return tx.abort("remove", id, err)
			}
		}

		delete(g.records, victim)
		tx.applied(func() { g.records[victim] = rec })
		if err := tx.emit(Event[ID]{Kind: EventRemoved, Virus: victim}); err != nil {
			return tx.abort("remove", id, err)
		}
	}

	logger.Debug("Virus removed.", "id", id, "cascade", order[1:])
	return nil
}

// planRemoval returns, in removal order, id and every descendant whose
// parents would all be removed, plus the same identifiers as a set. A child
// is doomed once each of its parents has been doomed. The stem is never
// doomed.
func (g *Genealogy[ID, V]) planRemoval(id ID) ([]ID, map[ID]struct{}) {
	order := []ID{id}
	doomed := map[ID]struct{}{id: {}}
	remaining := make(map[ID]int)

	for i := 0; i < len(order); i++ {
		g.records[order[i]].children.Ascend(func(cid ID) bool {
			if _, gone := doomed[cid]; gone || cid == g.stemID {
				return true
			}
			n, seen := remaining[cid]
			if !seen {
				n = g.records[cid].parents.Len()
			}
			n--
			remaining[cid] = n
			if n == 0 {
				doomed[cid] = struct{}{}
				order = append(order, cid)
			}
			return true
		})
	}
	return order, doomed
}
