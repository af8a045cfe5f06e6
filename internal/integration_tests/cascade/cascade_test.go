package integration_tests

import (
	"context"
	"testing"

	"github.com/specialistvlad/genealogy/internal/app"
	"github.com/specialistvlad/genealogy/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runToSnapshot(t *testing.T, body string) *render.Snapshot {
	t.Helper()
	path := app.WriteScript(t, t.TempDir(), "main.hcl", body)
	testApp, out, _ := app.SetupAppTest(t, app.Config{ScriptPaths: []string{path}, Output: render.FormatYAML})

	_, err := testApp.Run(context.Background())
	require.NoError(t, err)

	var snap render.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out.String()), &snap))
	return &snap
}

func idsOf(snap *render.Snapshot) []string {
	ids := make([]string, 0, len(snap.Viruses))
	for _, v := range snap.Viruses {
		ids = append(ids, v.ID)
	}
	return ids
}

// Test for: removing a virus removes its single-parent descendants
func TestCascade_RemovesOrphanedDescendants(t *testing.T) {
	// --- Arrange ---
	script := `
stem = "origin"
virus "a" { parents = stem }
virus "b" { parents = "a" }
virus "c" { parents = "b" }
virus "d" { parents = stem }
remove "a" {}
`

	// --- Act ---
	snap := runToSnapshot(t, script)

	// --- Assert ---
	assert.Equal(t, []string{"d", "origin"}, idsOf(snap))
}

// Test for: a descendant with another surviving parent outlives the cascade
func TestCascade_MultiParentSurvivor(t *testing.T) {
	script := `
stem = "origin"
virus "a" { parents = stem }
virus "b" { parents = stem }
virus "c" { parents = ["a", "b"] }
virus "d" { parents = "c" }
remove "a" {}
`
	snap := runToSnapshot(t, script)

	assert.Equal(t, []string{"b", "c", "d", "origin"}, idsOf(snap))
	for _, v := range snap.Viruses {
		if v.ID == "c" {
			assert.Equal(t, []string{"b"}, v.Parents)
		}
	}
}

// Test for: both arms of a diamond going away takes the join with them
func TestCascade_DiamondJoin(t *testing.T) {
	script := `
stem = "origin"
virus "top" { parents = stem }
virus "left" { parents = "top" }
virus "right" { parents = "top" }
virus "join" { parents = ["left", "right"] }
remove "top" {}
`
	snap := runToSnapshot(t, script)

	assert.Equal(t, []string{"origin"}, idsOf(snap))
	assert.Empty(t, snap.Viruses[0].Children)
}
