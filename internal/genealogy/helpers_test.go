package genealogy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testVirus struct {
	id string
}

func newTestVirus(id string) *testVirus {
	return &testVirus{id: id}
}

func (v *testVirus) ID() string {
	return v.id
}

type testGenealogy = Genealogy[string, *testVirus]

var errRejected = errors.New("rejected by observer")

// recordingObserver accepts events until reject returns true for one.
type recordingObserver struct {
	reject   func(Event[string]) bool
	accepted []Event[string]
	reverted []Event[string]
}

func (o *recordingObserver) Observe(_ context.Context, ev Event[string]) error {
	if o.reject != nil && o.reject(ev) {
		return errRejected
	}
	o.accepted = append(o.accepted, ev)
	return nil
}

func (o *recordingObserver) Revert(_ context.Context, ev Event[string]) {
	o.reverted = append(o.reverted, ev)
}

// newTestGenealogy builds a genealogy rooted at "stem" and runs each create
// step in order. Each step is an id followed by its parents.
func newTestGenealogy(t *testing.T, steps [][]string, opts ...Option[string]) *testGenealogy {
	t.Helper()
	g := New("stem", newTestVirus, opts...)
	for _, step := range steps {
		require.NoError(t, g.Create(context.Background(), step[0], step[1:]))
	}
	requireConsistent(t, g)
	return g
}

func requireConsistent(t *testing.T, g *testGenealogy) {
	t.Helper()
	require.NoError(t, g.CheckInvariants())
	require.True(t, g.Exists(g.StemID()))
}

type edges struct {
	Parents  []string
	Children []string
}

// state captures the whole observable structure for before/after comparisons.
func state(t *testing.T, g *testGenealogy) map[string]edges {
	t.Helper()
	out := make(map[string]edges)
	for _, id := range g.IDs() {
		parents, err := g.Parents(id)
		require.NoError(t, err)
		children, err := g.ChildIDs(id)
		require.NoError(t, err)
		out[id] = edges{Parents: parents, Children: children}
	}
	return out
}

func childIDsOf(t *testing.T, g *testGenealogy, id string) []string {
	t.Helper()
	ids, err := g.ChildIDs(id)
	require.NoError(t, err)
	return ids
}
