// Tree: the per-query result of one Dijkstra run, and route
// reconstruction over its predecessor chain.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// Route is a reconstructed shortest path between two named nodes.
type Route struct {
	// Source and Dest are the endpoint names as stored in the graph.
	Source string
	Dest   string

	// Distance is the total weight along Hops.
	Distance int64

	// Hops lists node names in order from Source to Dest inclusive.
	// A query from a node to itself yields a single hop.
	Hops []string
}

// Tree is the completed state of one Dijkstra run: the shortest distance
// and predecessor for every node, relative to one source.
//
// A Tree is immutable once returned and independent of later runs against
// the same graph; distances computed for one query can never leak into
// another.
type Tree struct {
	graph  *core.Graph
	source core.NodeID

	// dist[id] is the shortest distance from source, Infinite if
	// unreached. prev[id] is the predecessor on that path,
	// NoPredecessor for the source and for unreached nodes.
	dist []int64
	prev []core.NodeID
}

// SourceName returns the name of the node this tree was computed from.
func (t *Tree) SourceName() string {
	return t.graph.NameOf(t.source)
}

// Reachable reports whether dest holds a finite distance in this tree.
// Unknown names are simply not reachable.
func (t *Tree) Reachable(dest string) bool {
	id, err := t.graph.Lookup(dest)
	if err != nil {
		return false
	}

	return t.dist[id] != Infinite
}

// DistanceTo returns the shortest distance from the tree's source to
// dest. Fails with core.ErrNodeNotFound for unknown names and
// ErrUnreachable when no finite path exists.
//
// Complexity: O(1)
func (t *Tree) DistanceTo(dest string) (int64, error) {
	id, err := t.graph.Lookup(dest)
	if err != nil {
		return 0, err
	}
	if t.dist[id] == Infinite {
		return 0, fmt.Errorf("%w: %s → %s", ErrUnreachable, t.SourceName(), dest)
	}

	return t.dist[id], nil
}

// PathTo reconstructs the shortest route from the tree's source to dest.
//
// The walk follows predecessor links backward from dest until it meets
// the source (recognized by having no predecessor), collecting names in
// reverse, then reverses the sequence into source→…→dest order.
//
// Fails with core.ErrNodeNotFound for unknown names and ErrUnreachable
// when dest still carries the Infinite sentinel.
//
// Complexity: O(path length)
func (t *Tree) PathTo(dest string) (Route, error) {
	id, err := t.graph.Lookup(dest)
	if err != nil {
		return Route{}, err
	}
	if t.dist[id] == Infinite {
		return Route{}, fmt.Errorf("%w: %s → %s", ErrUnreachable, t.SourceName(), dest)
	}

	// Collect names walking backward to the source.
	hops := []string{t.graph.NameOf(id)}
	for cur := id; t.prev[cur] != NoPredecessor; cur = t.prev[cur] {
		hops = append(hops, t.graph.NameOf(t.prev[cur]))
	}

	// Reverse into source→dest order.
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return Route{
		Source:   t.SourceName(),
		Dest:     t.graph.NameOf(id),
		Distance: t.dist[id],
		Hops:     hops,
	}, nil
}
