package genealogy

import (
	"context"
	"fmt"

	"github.com/specialistvlad/genealogy/internal/ctxlog"
)

// Connect adds an edge making parentID a direct parent of childID. Connecting
// an existing edge is a no-op.
//
// It fails with ErrVirusNotFound if either virus is absent and with
// ErrStemCannotHaveParents if childID is the stem. With
// WithCycleCheck it also fails with ErrWouldCycle when childID is parentID or
// one of its ancestors; otherwise avoiding cycles is up to the caller.
func (g *Genealogy[ID, V]) Connect(ctx context.Context, childID, parentID ID) error {
	logger := ctxlog.FromContext(ctx)

	child, ok := g.records[childID]
	if !ok {
		return opError("connect", childID, fmt.Errorf("child: %w", ErrVirusNotFound))
	}
	parent, ok := g.records[parentID]
	if !ok {
		return opError("connect", childID, fmt.Errorf("parent %v: %w", parentID, ErrVirusNotFound))
	}
	if childID == g.stemID {
		return opError("connect", childID, fmt.Errorf("parent %v: %w", parentID, ErrStemCannotHaveParents))
	}
	if child.parents.Has(parentID) {
		logger.Debug("Edge already present, nothing to do.", "child", childID, "parent", parentID)
		return nil
	}
	if g.checkCycles && g.isAncestorOrSelf(childID, parentID) {
		return opError("connect", childID, fmt.Errorf("parent %v: %w", parentID, ErrWouldCycle))
	}

	tx := g.begin(ctx)
	child.parents.ReplaceOrInsert(parentID)
	tx.applied(func() { child.parents.Delete(parentID) })
	parent.addChild(childID)
	tx.applied(func() { parent.removeChild(childID) })
	if err := tx.emit(Event[ID]{Kind: EventLinked, Virus: childID, Parent: parentID}); err != nil {
		return tx.abort("connect", childID, err)
	}

	logger.Debug("Viruses connected.", "child", childID, "parent", parentID)
	return nil
}
