package genealogy

import (
	"cmp"
	"fmt"

	"github.com/google/btree"
)

// Virus is the payload type stored in a Genealogy. It must report the
// identifier it was constructed from.
type Virus[ID cmp.Ordered] interface {
	ID() ID
}

// Genealogy is a rooted lineage graph of viruses keyed by identifier.
type Genealogy[ID cmp.Ordered, V Virus[ID]] struct {
	_ noCopy

	stemID   ID
	newVirus func(ID) V
	records  map[ID]*record[ID, V]

	degree      int
	checkCycles bool
	observer    Observer[ID]
}

// record is the stored state of one virus.
type record[ID cmp.Ordered, V any] struct {
	virus    V
	parents  *btree.BTreeG[ID]
	children *btree.BTreeG[ID]
	// view caches the ordered child payloads; nil whenever children changed.
	view *childView[V]
}

func (r *record[ID, V]) addChild(id ID) {
	r.children.ReplaceOrInsert(id)
	r.view = nil
}

func (r *record[ID, V]) removeChild(id ID) {
	r.children.Delete(id)
	r.view = nil
}

// New creates a genealogy holding only the stem virus, built by newVirus.
// newVirus is also used by Create for every later virus.
func New[ID cmp.Ordered, V Virus[ID]](stemID ID, newVirus func(ID) V, opts ...Option[ID]) *Genealogy[ID, V] {
	if newVirus == nil {
		panic("genealogy: newVirus constructor must not be nil")
	}

	o := options[ID]{degree: defaultDegree}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Genealogy[ID, V]{
		stemID:      stemID,
		newVirus:    newVirus,
		records:     make(map[ID]*record[ID, V]),
		degree:      o.degree,
		checkCycles: o.checkCycles,
		observer:    Observers(o.observers...),
	}
	g.records[stemID] = g.newRecord(newVirus(stemID))
	return g
}

func (g *Genealogy[ID, V]) newSet() *btree.BTreeG[ID] {
	return btree.NewG[ID](g.degree, cmp.Less[ID])
}

func (g *Genealogy[ID, V]) newRecord(v V) *record[ID, V] {
	return &record[ID, V]{
		virus:    v,
		parents:  g.newSet(),
		children: g.newSet(),
	}
}

// StemID returns the identifier of the stem virus.
func (g *Genealogy[ID, V]) StemID() ID {
	return g.stemID
}

// Exists reports whether a virus with the given identifier is present.
func (g *Genealogy[ID, V]) Exists(id ID) bool {
	_, ok := g.records[id]
	return ok
}

// Len returns the number of live viruses, stem included.
func (g *Genealogy[ID, V]) Len() int {
	return len(g.records)
}

// Get returns the virus with the given identifier.
func (g *Genealogy[ID, V]) Get(id ID) (V, error) {
	rec, ok := g.records[id]
	if !ok {
		var zero V
		return zero, opError("get", id, ErrVirusNotFound)
	}
	return rec.virus, nil
}

// Parents returns the identifiers of the direct parents of id in ascending
// order. The slice is a copy.
func (g *Genealogy[ID, V]) Parents(id ID) ([]ID, error) {
	rec, ok := g.records[id]
	if !ok {
		return nil, opError("parents", id, ErrVirusNotFound)
	}
	return keys(rec.parents), nil
}

// ChildIDs returns the identifiers of the direct children of id in ascending
// order. The slice is a copy.
func (g *Genealogy[ID, V]) ChildIDs(id ID) ([]ID, error) {
	rec, ok := g.records[id]
	if !ok {
		return nil, opError("children", id, ErrVirusNotFound)
	}
	return keys(rec.children), nil
}

func (g *Genealogy[ID, V]) String() string {
	return fmt.Sprintf("Genealogy(stem=%v, viruses=%d)", g.stemID, len(g.records))
}

func keys[ID cmp.Ordered](set *btree.BTreeG[ID]) []ID {
	out := make([]ID, 0, set.Len())
	set.Ascend(func(id ID) bool {
		out = append(out, id)
		return true
	})
	return out
}

// noCopy lets `go vet` flag copies of a Genealogy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
