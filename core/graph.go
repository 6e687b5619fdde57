package core

import "fmt"

// AddNode registers name and returns its NodeID.
// If the name (case-sensitive, exact match) is already known, the existing
// id is returned and the graph is unchanged; otherwise the next sequential
// id is allocated. AddNode never fails.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(name)
}

// addNodeLocked is AddNode without locking; callers hold g.mu.
func (g *Graph) addNodeLocked(name string) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.index[name] = id
	g.adj = append(g.adj, nil)

	return id
}

// AddEdge records an undirected edge between nameA and nameB with the given
// weight. Missing endpoints are created on first sighting. On success two
// mirrored adjacency entries are appended, A→B and B→A, both with weight.
//
// Returns ErrNonPositiveWeight (wrapped with the offending record) if
// weight ≤ 0; the graph is not modified in that case, and callers loading
// from a record stream should abort the whole load.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized per edge insertion.
func (g *Graph) AddEdge(nameA, nameB string, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNonPositiveWeight, nameA, nameB, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a := g.addNodeLocked(nameA)
	b := g.addNodeLocked(nameB)

	g.adj[a] = append(g.adj[a], Edge{From: a, To: b, Weight: weight})
	g.adj[b] = append(g.adj[b], Edge{From: b, To: a, Weight: weight})
	g.edgeCount++

	return nil
}

// Lookup resolves a name to its NodeID.
// Unlike AddEdge, Lookup never creates nodes: query endpoints must already
// exist in the graph. Returns NoNode and ErrNodeNotFound (wrapped with the
// name) when absent.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1) amortized.
func (g *Graph) Lookup(name string) (NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[name]
	if !ok {
		return NoNode, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// Has reports whether name is present in the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1) amortized.
func (g *Graph) Has(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[name]

	return ok
}

// NameOf returns the name of node id, or "" if id was never assigned.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) NameOf(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.names) {
		return ""
	}

	return g.names[id]
}

// NodeCount returns the number of distinct nodes registered.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// EdgeCount returns the number of undirected edges added; each mirrored
// pair counts once.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the adjacency entries of node id in insertion order.
// The returned slice is a copy; callers may range over it repeatedly or
// retain it without observing later mutations. Unknown ids yield nil.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.adj) || len(g.adj[id]) == 0 {
		return nil
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out
}

// Nodes returns all node names in id order (i.e. discovery order).
// The returned slice is a copy.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}
