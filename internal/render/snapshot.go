package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/genealogy/internal/virusid"
	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable copy of a genealogy, viruses in identifier order.
type Snapshot struct {
	Stem    string       `json:"stem" yaml:"stem"`
	Viruses []VirusEntry `json:"viruses" yaml:"viruses"`
}

// VirusEntry is one virus with its direct edges. Family and Generation are
// omitted for identifiers without them.
type VirusEntry struct {
	ID         string   `json:"id" yaml:"id"`
	Family     string   `json:"family,omitempty" yaml:"family,omitempty"`
	Generation *int     `json:"generation,omitempty" yaml:"generation,omitempty"`
	Parents    []string `json:"parents" yaml:"parents,flow"`
	Children   []string `json:"children" yaml:"children,flow"`
}

// Take captures src.
func Take(src Source) (*Snapshot, error) {
	ids := src.IDs()
	snap := &Snapshot{Stem: src.StemID(), Viruses: make([]VirusEntry, 0, len(ids))}
	for _, id := range ids {
		v, err := src.Get(id)
		if err != nil {
			return nil, fmt.Errorf("snapshot of %s: %w", id, err)
		}
		parents, err := src.Parents(id)
		if err != nil {
			return nil, fmt.Errorf("snapshot of %s: %w", id, err)
		}
		children, err := src.ChildIDs(id)
		if err != nil {
			return nil, fmt.Errorf("snapshot of %s: %w", id, err)
		}
		entry := VirusEntry{
			ID:       id,
			Family:   v.Family(),
			Parents:  nonNil(parents),
			Children: nonNil(children),
		}
		if gen := v.Generation(); gen != virusid.NoGeneration {
			entry.Generation = &gen
		}
		snap.Viruses = append(snap.Viruses, entry)
	}
	return snap, nil
}

// WriteJSON writes the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteYAML writes the snapshot as a YAML document.
func (s *Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return enc.Close()
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
