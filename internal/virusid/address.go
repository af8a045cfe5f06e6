package virusid

import (
	"slices"
	"strconv"
	"strings"
)

// String serializes the Address into its canonical form.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasGeneration() {
			sb.WriteRune('[')
			sb.WriteString(strconv.Itoa(segment.Generation))
			sb.WriteRune(']')
		}
	}
	return sb.String()
}

// Equal checks two addresses segment by segment.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}

// Family returns the name of the first segment.
func (a *Address) Family() string {
	if a == nil || len(a.Path) == 0 {
		return ""
	}
	return a.Path[0].Name
}

// Generation returns the generation of the last segment, or NoGeneration.
func (a *Address) Generation() int {
	if a == nil || len(a.Path) == 0 {
		return NoGeneration
	}
	return a.Path[len(a.Path)-1].Generation
}
