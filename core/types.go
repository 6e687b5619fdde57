// This file declares NodeID, Edge, the Graph type and its sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNonPositiveWeight indicates an edge weight ≤ 0 was supplied.
	// A non-positive distance between two named places is malformed input;
	// callers building a graph from records should treat this as fatal.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrNodeNotFound indicates an operation referenced a name that was
	// never added to the graph. Lookups never create nodes implicitly.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID addresses a node within its Graph.
//
// IDs are dense, non-negative integers assigned in order of first sighting.
// Once assigned, an id is stable for the lifetime of the Graph: ids are
// never reused and never reordered.
type NodeID int

// NoNode is the NodeID returned alongside ErrNodeNotFound.
const NoNode NodeID = -1

// Edge is a single directed adjacency entry.
//
// The Graph is undirected: every call to AddEdge records two mirrored
// Edge values, From→To and To→From, carrying the same Weight. Weight is
// always strictly positive.
type Edge struct {
	// From is the node this entry hangs off.
	From NodeID

	// To is the neighbour reached by traversing this entry.
	To NodeID

	// Weight is the cost of traversing the edge. Always > 0.
	Weight int64
}

// Graph is a registry of named nodes and their weighted, undirected
// adjacency. The zero value is not usable; construct with NewGraph.
//
// The Graph holds no per-query algorithm state. Distance, predecessor and
// visited bookkeeping belong to the algorithm run, keyed by NodeID.
type Graph struct {
	mu sync.RWMutex

	// names[id] is the unique name of node id; index is its inverse.
	// The two always form a bijection.
	names []string
	index map[string]NodeID

	// adj[id] lists the adjacency entries of node id in insertion order.
	adj [][]Edge

	// edgeCount counts undirected edges (mirrored pairs count once).
	edgeCount int
}

// NewGraph returns an empty Graph ready for population.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]NodeID),
	}
}
