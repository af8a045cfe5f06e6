package genealogy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectForward(t *testing.T, g *testGenealogy, id string) []string {
	t.Helper()
	begin, err := g.ChildrenBegin(id)
	require.NoError(t, err)
	end, err := g.ChildrenEnd(id)
	require.NoError(t, err)

	var ids []string
	for it := begin; !it.Equal(end); it = it.Next() {
		ids = append(ids, it.Value().ID())
	}
	return ids
}

func TestChildIterator_EnumeratesDirectChildrenInOrder(t *testing.T) {
	g := newTestGenealogy(t, [][]string{
		{"m", "stem"}, {"c", "stem"}, {"x", "stem"},
		{"grand", "c"}, {"shared", "c", "x"},
	})

	assert.Equal(t, []string{"c", "m", "x"}, collectForward(t, g, "stem"))
	assert.Equal(t, []string{"grand", "shared"}, collectForward(t, g, "c"))
	assert.Equal(t, []string{"shared"}, collectForward(t, g, "x"))
	assert.Empty(t, collectForward(t, g, "grand"))
}

func TestChildIterator_Backward(t *testing.T) {
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}, {"c", "stem"}})

	begin, err := g.ChildrenBegin("stem")
	require.NoError(t, err)
	end, err := g.ChildrenEnd("stem")
	require.NoError(t, err)

	var ids []string
	for it := end; !it.Equal(begin); {
		it = it.Prev()
		ids = append(ids, it.Value().ID())
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)

	// Values are copies: moving one does not move the other.
	second := begin.Next()
	assert.Equal(t, "a", begin.Value().ID())
	assert.Equal(t, "b", second.Value().ID())
	assert.True(t, second.Prev().Equal(begin))
}

func TestChildIterator_EmptyRange(t *testing.T) {
	g := New("stem", newTestVirus)

	begin, err := g.ChildrenBegin("stem")
	require.NoError(t, err)
	end, err := g.ChildrenEnd("stem")
	require.NoError(t, err)

	assert.True(t, begin.Equal(end))
	assert.False(t, begin.Valid())
}

func TestChildIterator_Panics(t *testing.T) {
	g := newTestGenealogy(t, [][]string{{"a", "stem"}})
	begin, err := g.ChildrenBegin("stem")
	require.NoError(t, err)
	end, err := g.ChildrenEnd("stem")
	require.NoError(t, err)

	assert.Panics(t, func() { end.Value() })
	assert.Panics(t, func() { end.Next() })
	assert.Panics(t, func() { begin.Prev() })
	assert.Panics(t, func() { ChildIterator[*testVirus]{}.Value() })
	assert.Panics(t, func() { ChildIterator[*testVirus]{}.Next() })
}

func TestChildIterator_NotFound(t *testing.T) {
	g := New("stem", newTestVirus)

	_, err := g.ChildrenBegin("ghost")
	assert.ErrorIs(t, err, ErrVirusNotFound)
	_, err = g.ChildrenEnd("ghost")
	assert.ErrorIs(t, err, ErrVirusNotFound)
	_, err = g.Children("ghost")
	assert.ErrorIs(t, err, ErrVirusNotFound)
}

func TestChildIterator_SnapshotSurvivesMutation(t *testing.T) {
	ctx := context.Background()
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}})

	begin, err := g.ChildrenBegin("stem")
	require.NoError(t, err)
	staleEnd, err := g.ChildrenEnd("stem")
	require.NoError(t, err)

	require.NoError(t, g.CreateChild(ctx, "c", "stem"))
	require.NoError(t, g.Remove(ctx, "a"))

	var ids []string
	for it := begin; !it.Equal(staleEnd); it = it.Next() {
		ids = append(ids, it.Value().ID())
	}
	assert.Equal(t, []string{"a", "b"}, ids)

	freshEnd, err := g.ChildrenEnd("stem")
	require.NoError(t, err)
	assert.False(t, staleEnd.Equal(freshEnd), "a mutation starts a new view")
	assert.Equal(t, []string{"b", "c"}, collectForward(t, g, "stem"))
}

func TestChildren_Seq(t *testing.T) {
	g := newTestGenealogy(t, [][]string{{"a", "stem"}, {"b", "stem"}, {"c", "stem"}})

	seq, err := g.Children("stem")
	require.NoError(t, err)

	var first []string
	for v := range seq {
		first = append(first, v.ID())
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, first)
}
