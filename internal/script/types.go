package script

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// OpKind identifies a scripted genealogy operation.
type OpKind int

const (
	// OpCreate creates ID from Parents.
	OpCreate OpKind = iota + 1
	// OpConnect makes Parents[0] a parent of ID.
	OpConnect
	// OpRemove removes ID.
	OpRemove
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "virus"
	case OpConnect:
		return "connect"
	case OpRemove:
		return "remove"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one scripted operation and where it was declared.
type Op struct {
	Kind    OpKind
	ID      string
	Parents []string
	Range   hcl.Range
}

func (o Op) String() string {
	switch o.Kind {
	case OpCreate, OpConnect:
		return fmt.Sprintf("%s %s <- [%s]", o.Kind, o.ID, strings.Join(o.Parents, ", "))
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.ID)
	}
}

// Script is the merged content of one or more lineage files.
type Script struct {
	Stem  string
	Ops   []Op
	Files []string
}

// Source is an in-memory lineage file.
type Source struct {
	Name string
	Body []byte
}
