package virusid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches `name` or `name[generation]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

// Parse builds an Address from its canonical string form.
func Parse(raw string) (*Address, error) {
	if raw == "" {
		return nil, fmt.Errorf("virus identifier cannot be empty")
	}

	addr := &Address{}
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return nil, fmt.Errorf("virus identifier %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return nil, fmt.Errorf("invalid segment %q in virus identifier %q", part, raw)
		}
		if matches[1] == "-" {
			return nil, fmt.Errorf("invalid segment name %q in virus identifier %q", matches[1], raw)
		}

		segment := NewSegment(matches[1])
		if matches[2] != "" {
			generation, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("generation of segment %q: %w", part, err)
			}
			segment.Generation = generation
		}
		addr.Path = append(addr.Path, segment)
	}
	return addr, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(raw string) *Address {
	addr, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return addr
}
