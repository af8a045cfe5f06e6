/*
Package virusid provides a structured representation of virus identifiers.

An identifier is a dot-separated sequence of segments, each optionally carrying
a generation index: `h5n1.clade[2].b`. The first segment names the family.

The package centralizes parsing and formatting so scripts, the CLI and
rendering all agree on one canonical string form, which is what the genealogy
engine uses as its ordered key.
*/
package virusid
