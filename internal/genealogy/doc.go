// Package genealogy maintains an in-memory lineage graph of viruses.
//
// # Model
//
// A Genealogy is rooted at a single stem virus that exists from construction
// and can never be removed. Every other virus derives from one or more
// parents. Edges are mirrored: a parent records the identifier of each child
// and a child records the identifier of each parent. Records live in an arena
// keyed by identifier, so the two sides of an edge are plain identifiers that
// must resolve in the arena rather than shared references.
//
// # Atomicity
//
// Create, CreateChild, Connect and Remove are all-or-nothing. Each call keeps
// an undo log of the structural steps it applied; when a later step fails
// (for example an Observer rejects an event) the log is unwound in reverse and
// the error is returned wrapped in an *OpError. Preconditions are validated
// before any step runs.
//
// Remove cascades: every descendant left without a parent is removed in the
// same call. The cascade is planned with an explicit work-list, so deep
// lineages do not grow the goroutine stack.
//
// # Traversal
//
// Children are enumerated in ascending identifier order through a
// bidirectional ChildIterator or an iter.Seq. Both read a snapshot of the
// child set taken at the time of the call.
//
// # Concurrency
//
// A Genealogy is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves, e.g. with a single mutex
// around every call. A Genealogy must not be copied after first use.
//
// # Cycles
//
// Connect does not check for cycles unless the genealogy was built with
// WithCycleCheck. Without it, connecting an ancestor below one of its own
// descendants is a caller error.
package genealogy
