package genealogy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}, {"c", "a"}})

	require.NoError(t, g.Connect(ctx, "c", "b"))

	parents, err := g.Parents("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, parents)
	assert.Equal(t, []string{"c"}, childIDsOf(t, g, "b"))
	requireConsistent(t, g)
}

func TestConnect_Idempotent(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}}, WithObserver[string](obs))

	require.NoError(t, g.Connect(ctx, "b", "a"))
	once := state(t, g)
	events := len(obs.accepted)

	require.NoError(t, g.Connect(ctx, "b", "a"))
	assert.Equal(t, once, state(t, g))
	assert.Len(t, obs.accepted, events, "a repeated connect must not emit events")

	require.NoError(t, g.Connect(ctx, "a", "stem"))
	assert.Equal(t, once, state(t, g))
}

func TestConnect_NotFound(t *testing.T) {
	ctx := context.Background()
	g := newTestGenealogy(t, [][]string{{"a", "stem"}})
	before := state(t, g)

	err := g.Connect(ctx, "ghost", "a")
	assert.ErrorIs(t, err, ErrVirusNotFound)
	assert.ErrorContains(t, err, "child")

	err = g.Connect(ctx, "a", "ghost")
	assert.ErrorIs(t, err, ErrVirusNotFound)
	assert.ErrorContains(t, err, "parent ghost")

	assert.Equal(t, before, state(t, g))
}

func TestConnect_StemCannotGainParents(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	steps := [][]string{{"a", "stem"}, {"b", "a"}}

	for _, opts := range [][]Option[string]{
		{WithObserver[string](obs)},
		{WithObserver[string](obs), WithCycleCheck[string]()},
	} {
		g := newTestGenealogy(t, steps, opts...)
		before := state(t, g)
		events := len(obs.accepted)

		err := g.Connect(ctx, "stem", "b")
		require.ErrorIs(t, err, ErrStemCannotHaveParents)
		assert.NotErrorIs(t, err, ErrWouldCycle)

		assert.Equal(t, before, state(t, g))
		assert.Len(t, obs.accepted, events)
		requireConsistent(t, g)
	}
}

func TestConnect_ObserverFailureRollsBack(t *testing.T) {
	obs := &recordingObserver{}
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}}, WithObserver[string](obs))
	before := state(t, g)
	obs.reject = func(Event[string]) bool { return true }

	err := g.Connect(context.Background(), "b", "a")
	require.ErrorIs(t, err, errRejected)

	assert.Equal(t, before, state(t, g))
	requireConsistent(t, g)
	assert.Empty(t, obs.reverted)
}

func TestConnect_CycleCheck(t *testing.T) {
	ctx := context.Background()
	steps := [][]string{{"a", "stem"}, {"b", "a"}, {"c", "b"}}

	t.Run("rejects descendant as parent", func(t *testing.T) {
		g := newTestGenealogy(t, steps, WithCycleCheck[string]())
		before := state(t, g)

		for _, edge := range [][2]string{{"a", "c"}, {"a", "b"}, {"b", "b"}} {
			err := g.Connect(ctx, edge[0], edge[1])
			assert.ErrorIs(t, err, ErrWouldCycle, "connect %s <- %s", edge[0], edge[1])
		}
		assert.Equal(t, before, state(t, g))
	})

	t.Run("allows unrelated and transitive edges", func(t *testing.T) {
		g := newTestGenealogy(t, append(steps, []string{"d", "stem"}), WithCycleCheck[string]())
		require.NoError(t, g.Connect(ctx, "c", "a"))
		require.NoError(t, g.Connect(ctx, "c", "d"))
		require.NoError(t, g.Connect(ctx, "d", "b"))
		requireConsistent(t, g)
	})

	t.Run("unchecked genealogy trusts the caller", func(t *testing.T) {
		g := newTestGenealogy(t, steps)
		require.NoError(t, g.Connect(ctx, "a", "c"))

		ancestors, err := g.Ancestors("b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "stem"}, ancestors)

		// The cascade still terminates on a cycle.
		require.NoError(t, g.Remove(ctx, "b"))
		assert.False(t, g.Exists("b"))
		assert.False(t, g.Exists("c"))
		assert.True(t, g.Exists("a"))
		requireConsistent(t, g)
	})
}
