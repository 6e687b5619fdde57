// Package core provides the fundamental in-memory Graph implementation:
// a registry of named nodes addressed by dense integer ids, plus their
// weighted, undirected adjacency.
//
// Overview:
//
//   - Nodes are deduplicated by name: AddNode returns the existing id when
//     the name is already known, otherwise it assigns the next sequential
//     NodeID. The name↔id mapping is a bijection and ids are stable for
//     the lifetime of the Graph — never reused, never reordered.
//   - Edges are undirected and carry a strictly positive integer weight.
//     AddEdge always records a symmetric pair of adjacency entries
//     (A→B and B→A, same weight), so every neighbour sweep sees both
//     directions without special-casing.
//   - Adjacency is stored per node as a slice in insertion order. The
//     discovery order of edges is therefore observable and deterministic,
//     which downstream algorithms rely on for reproducible tie-breaking.
//
// Design notes:
//
//   - The Graph owns a single arena of nodes; edges reference endpoints by
//     NodeID, never by pointer. There is nothing to dangle.
//   - Name→id lookup is a hash map: O(1) amortized, not a linear scan.
//   - The Graph carries no per-query state. Algorithms keep their own
//     distance/predecessor/visited scratch keyed by NodeID, so sequential
//     queries against one Graph can never contaminate each other.
//
// Concurrency:
//
//   - All mutations acquire a write lock; queries acquire a read lock.
//     Building from multiple goroutines is safe. Algorithms that snapshot
//     adjacency during a run should finish construction first.
//
// Errors:
//
//	ErrNonPositiveWeight - edge weight ≤ 0 (malformed input, rejected).
//	ErrNodeNotFound      - a name was looked up that was never added.
package core
