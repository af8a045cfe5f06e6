package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// SharedMarker follows a virus already drawn elsewhere in the tree.
const SharedMarker = " (see above)"

// TextOptions configures Text.
type TextOptions struct {
	// Color enables terminal styling.
	Color bool
}

// familyPalette colors viruses by family, cycling when families outnumber it.
var familyPalette = []lipgloss.Color{"12", "13", "10", "11", "14", "9"}

type styles struct {
	stem, shared, enumerator lipgloss.Style
	// family maps a family name to its palette index.
	family map[string]int
}

func newStyles(family map[string]int) styles {
	return styles{
		stem:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		shared:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		enumerator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1),
		family:     family,
	}
}

func (s styles) virus(family string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(familyPalette[s.family[family]])
}

// familyIndex assigns palette indexes to families in order of first
// appearance among the identifiers of src.
func familyIndex(src Source) (map[string]int, error) {
	index := make(map[string]int)
	next := 0
	for _, id := range src.IDs() {
		v, err := src.Get(id)
		if err != nil {
			return nil, err
		}
		if _, ok := index[v.Family()]; !ok {
			index[v.Family()] = next % len(familyPalette)
			next++
		}
	}
	return index, nil
}

// Text draws the genealogy as a tree rooted at the stem. A virus with several
// parents is expanded under the first parent that reaches it breadth first and
// marked with SharedMarker everywhere else. Viruses not reachable from the
// stem, which only a caller-made cycle can produce, are listed after the tree.
// With Color, each family gets its own color.
func Text(src Source, opts TextOptions) (string, error) {
	label := func(id string, _ lipgloss.Style) string { return id }
	virusLabel := func(id string) (string, error) { return id, nil }
	var st styles
	if opts.Color {
		family, err := familyIndex(src)
		if err != nil {
			return "", err
		}
		st = newStyles(family)
		label = func(id string, s lipgloss.Style) string { return s.Render(id) }
		virusLabel = func(id string) (string, error) {
			v, err := src.Get(id)
			if err != nil {
				return "", err
			}
			return st.virus(v.Family()).Render(id), nil
		}
	}

	type pending struct {
		node     *tree.Tree
		children []string
	}

	stem := src.StemID()
	stemChildren, err := src.ChildIDs(stem)
	if err != nil {
		return "", err
	}
	root := tree.Root(label(stem, st.stem))
	if opts.Color {
		root.EnumeratorStyle(st.enumerator)
	}

	seen := map[string]bool{stem: true}
	queue := []pending{{node: root, children: stemChildren}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, id := range p.children {
			if seen[id] {
				p.node.Child(label(id+SharedMarker, st.shared))
				continue
			}
			seen[id] = true
			children, err := src.ChildIDs(id)
			if err != nil {
				return "", err
			}
			text, err := virusLabel(id)
			if err != nil {
				return "", err
			}
			if len(children) == 0 {
				p.node.Child(text)
				continue
			}
			sub := tree.Root(text)
			p.node.Child(sub)
			queue = append(queue, pending{node: sub, children: children})
		}
	}

	var b strings.Builder
	b.WriteString(root.String())

	var detached []string
	for _, id := range src.IDs() {
		if !seen[id] {
			detached = append(detached, id)
		}
	}
	if len(detached) > 0 {
		fmt.Fprintf(&b, "\ndetached: %s", strings.Join(detached, ", "))
	}
	return b.String(), nil
}
