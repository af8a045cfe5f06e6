// Package virus provides the concrete payload stored in the genealogy by the
// CLI: an immutable value built from its canonical identifier.
package virus

import "github.com/specialistvlad/genealogy/internal/virusid"

// Virus is a single strain in a genealogy. It exposes read-only accessors.
type Virus struct {
	id   string
	addr *virusid.Address
}

// New builds a Virus from its identifier. Identifiers that do not parse are
// still accepted; they simply report no family.
func New(id string) *Virus {
	addr, err := virusid.Parse(id)
	if err != nil {
		addr = nil
	}
	return &Virus{id: id, addr: addr}
}

// ID returns the virus identifier.
func (v *Virus) ID() string {
	return v.id
}

// Family returns the first identifier segment, e.g. "h5n1" for "h5n1.clade[2]".
func (v *Virus) Family() string {
	return v.addr.Family()
}

// Generation returns the generation of the last identifier segment, or
// virusid.NoGeneration.
func (v *Virus) Generation() int {
	return v.addr.Generation()
}

func (v *Virus) String() string {
	return v.id
}
