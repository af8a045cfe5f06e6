package journal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/genealogy/internal/genealogy"
	"github.com/specialistvlad/genealogy/internal/virus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectLinks struct{ parent string }

func (r rejectLinks) Observe(_ context.Context, ev genealogy.Event[string]) error {
	if ev.Kind == genealogy.EventLinked && ev.Parent == r.parent {
		return errors.New("no")
	}
	return nil
}

func (rejectLinks) Revert(context.Context, genealogy.Event[string]) {}

func TestJournal_RecordsCommittedEvents(t *testing.T) {
	ctx := context.Background()
	j := New[string]()
	g := genealogy.New("origin", virus.New, genealogy.WithObserver[string](j))

	require.NoError(t, g.CreateChild(ctx, "alpha", "origin"))
	require.NoError(t, g.CreateChild(ctx, "beta", "alpha"))
	require.NoError(t, g.Remove(ctx, "alpha"))

	var buf bytes.Buffer
	_, err := j.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, `1 created alpha
2 linked origin -> alpha
3 created beta
4 linked alpha -> beta
5 unlinked origin -> alpha
6 removed alpha
7 removed beta
`, buf.String())
	assert.Equal(t, 7, j.Len())
}

func TestJournal_DropsRolledBackEvents(t *testing.T) {
	ctx := context.Background()
	j := New[string]()
	g := genealogy.New("origin", virus.New,
		genealogy.WithObserver[string](j),
		genealogy.WithObserver[string](rejectLinks{parent: "beta"}),
	)

	require.NoError(t, g.CreateChild(ctx, "alpha", "origin"))
	require.NoError(t, g.CreateChild(ctx, "beta", "origin"))
	before := j.Entries()

	err := g.Create(ctx, "gamma", []string{"alpha", "beta"})
	require.Error(t, err)

	assert.Equal(t, before, j.Entries())
	assert.Equal(t, 4, j.Len())

	require.NoError(t, g.CreateChild(ctx, "gamma", "alpha"))
	entries := j.Entries()
	assert.Equal(t, 5, entries[4].Seq, "sequence numbers continue without gaps")
}

func TestJournal_RevertIgnoresMismatch(t *testing.T) {
	j := New[string]()
	ctx := context.Background()
	require.NoError(t, j.Observe(ctx, genealogy.Event[string]{Kind: genealogy.EventCreated, Virus: "a"}))

	j.Revert(ctx, genealogy.Event[string]{Kind: genealogy.EventCreated, Virus: "b"})
	assert.Equal(t, 1, j.Len())

	j.Revert(ctx, genealogy.Event[string]{Kind: genealogy.EventCreated, Virus: "a"})
	j.Revert(ctx, genealogy.Event[string]{Kind: genealogy.EventCreated, Virus: "a"})
	assert.Equal(t, 0, j.Len())
}
