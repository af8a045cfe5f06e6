package virusid

// NoGeneration marks a segment written without a `[n]` suffix.
const NoGeneration = -1

// Segment is a single component of an identifier, e.g. `clade[2]`.
type Segment struct {
	Name       string
	Generation int
}

// NewSegment creates a segment without a generation.
func NewSegment(name string) Segment {
	return Segment{Name: name, Generation: NoGeneration}
}

// NewSegmentWithGeneration creates a segment with an explicit generation.
func NewSegmentWithGeneration(name string, generation int) Segment {
	return Segment{Name: name, Generation: generation}
}

// HasGeneration reports whether the segment carries a generation index.
func (s Segment) HasGeneration() bool {
	return s.Generation != NoGeneration
}

// Address is the structured form of a virus identifier.
type Address struct {
	Path []Segment
}
