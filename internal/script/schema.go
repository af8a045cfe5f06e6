package script

import "github.com/hashicorp/hcl/v2"

// rootSchema describes the top level of a lineage file. Content() keeps
// blocks in source order, which is the replay order.
var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "stem"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: OpCreate.String(), LabelNames: []string{"id"}},
		{Type: OpConnect.String(), LabelNames: []string{"child"}},
		{Type: OpRemove.String(), LabelNames: []string{"id"}},
	},
}

// virusSchema is the body of a `virus "<id>" { ... }` block. parents accepts
// a single identifier or a list of them; an empty list is allowed and makes
// the block a no-op on replay.
var virusSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "parents", Required: true},
	},
}

// connectSchema is the body of a `connect "<child>" { ... }` block.
var connectSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "parent", Required: true},
	},
}

// removeBlock is the body of a `remove "<id>" {}` block.
type removeBlock struct{}
