// Package script loads lineage scripts: HCL files describing a sequence of
// genealogy operations to replay in declaration order.
//
//	stem = "origin"
//
//	virus "h5n1" {
//	  parents = stem
//	}
//
//	virus "h5n1.clade[2]" {
//	  parents = ["h5n1", format("%s", stem)]
//	}
//
//	connect "h5n1.clade[2]" {
//	  parent = "origin"
//	}
//
//	remove "h5n1" {}
//
// Exactly one `stem` attribute must appear across all loaded files. Blocks are
// replayed file by file in the order the files were given, directories being
// expanded to their `.hcl` files in lexical order. Expressions may use the
// `stem` variable and the functions upper, lower, format and concat.
package script
