package genealogy

import (
	"context"
	"fmt"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
)

// Create adds a virus derived from every virus in parentIDs. Duplicate parent
// identifiers are collapsed.
//
// An empty parentIDs leaves the genealogy untouched and returns nil. It fails
// with ErrVirusAlreadyCreated if id exists and with ErrVirusNotFound if any
// parent is absent; in both cases nothing is changed.
func (g *Genealogy[ID, V]) Create(ctx context.Context, id ID, parentIDs []ID) error {
	logger := ctxlog.FromContext(ctx)
	if len(parentIDs) == 0 {
		logger.Debug("Create called without parents, nothing to do.", "id", id)
		return nil
	}
	if g.Exists(id) {
		return opError("create", id, ErrVirusAlreadyCreated)
	}

	parentSet := g.newSet()
	for _, pid := range parentIDs {
		if !g.Exists(pid) {
			return opError("create", id, fmt.Errorf("parent %v: %w", pid, ErrVirusNotFound))
		}
		parentSet.ReplaceOrInsert(pid)
	}

	rec := g.newRecord(g.newVirus(id))
	rec.parents = parentSet

	tx := g.begin(ctx)
	g.records[id] = rec
	tx.applied(func() { delete(g.records, id) })
	if err := tx.emit(Event[ID]{Kind: EventCreated, Virus: id}); err != nil {
		return tx.abort("create", id, err)
	}

	parents := keys(parentSet)
	for _, pid := range parents {
		parent := g.records[pid]
		parent.addChild(id)
		tx.applied(func() { parent.removeChild(id) })
		if err := tx.emit(Event[ID]{Kind: EventLinked, Virus: id, Parent: pid}); err != nil {
			return tx.abort("create", id, err)
		}
	}

	logger.Debug("Virus created.", "id", id, "parents", parents)
	return nil
}

// CreateChild is Create with a single parent.
func (g *Genealogy[ID, V]) CreateChild(ctx context.Context, id, parentID ID) error {
	return g.Create(ctx, id, []ID{parentID})
}
