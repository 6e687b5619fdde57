// Dijkstra's algorithm with a true decrease-key heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is inserted once and extracted once: V heap operations.
//   - Each improving relaxation lowers one key in place: ≤ E decreases.
//   - Every heap operation costs O(log V) on a heap never larger than V.
//   - Space: O(V) for distances, predecessors, visited flags and the heap.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/minheap"
)

// Dijkstra computes shortest distances from the source node
// (Options.Source) to every other node in the weighted, undirected graph
// g, and returns the resulting shortest-path Tree.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//
// Edge weights are strictly positive by core.Graph construction, so no
// negative-weight scan is needed here.
//
// The returned Tree holds the full per-query state: distance to every
// node (Infinite when unreachable) and the predecessor chain for route
// reconstruction via Tree.PathTo. The graph itself is never mutated, so
// repeated runs with different sources cannot influence one another.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (*Tree, error) {
	// 1) Build Options from functional arguments.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Resolve the source name; queries never create nodes.
	src, err := g.Lookup(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 5) Allocate the per-run state. V arrays indexed by NodeID replace
	//    any scratch fields on the graph: the run owns them exclusively.
	V := g.NodeCount()
	t := &Tree{
		graph:  g,
		source: src,
		dist:   make([]int64, V),
		prev:   make([]core.NodeID, V),
	}
	r := &runner{
		graph:   g,
		tree:    t,
		visited: make([]bool, V),
		heap:    minheap.New(V),
	}

	// 6) Init, then drain the heap.
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return t, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	graph   *core.Graph   // read-only within the run
	tree    *Tree         // dist + prev being filled in
	visited []bool        // finalized nodes, indexed by NodeID
	heap    *minheap.Heap // indexed priority queue, owned by this run
}

// init sets dist[source] = 0 and every other distance to Infinite, clears
// all predecessors, and inserts every node into the fresh heap keyed by
// its current distance.
func (r *runner) init() error {
	for id := range r.tree.dist {
		r.tree.dist[id] = Infinite
		r.tree.prev[id] = NoPredecessor
	}
	r.tree.dist[r.tree.source] = 0

	// Insert in id order; the source enters with key 0, the rest with
	// Infinite. Insert cannot fail on a fresh heap sized to V, so any
	// error here is a defect and is surfaced as such.
	for id := range r.tree.dist {
		if err := r.heap.Insert(core.NodeID(id), r.tree.dist[id]); err != nil {
			return fmt.Errorf("dijkstra: heap insert during init: %w", err)
		}
	}

	return nil
}

// process is the main loop: extract the minimum-distance node, relax its
// edges, mark it visited; repeat until the heap is drained.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		// 1) Pop the closest unfinalized node.
		u, du, err := r.heap.ExtractMin()
		if err != nil {
			// Unreachable under a correct engine; fail loudly.
			return fmt.Errorf("dijkstra: heap drained unexpectedly: %w", err)
		}

		// 2) A node extracted at Infinite belongs to a component the
		//    source cannot reach. Finalize it untouched: the sentinel
		//    must never enter an addition.
		if du == Infinite {
			r.visited[u] = true
			continue
		}

		// 3) Relax every edge out of u, then finalize u.
		if err = r.relax(u, du); err != nil {
			return err
		}
		r.visited[u] = true
	}

	return nil
}

// relax sweeps u's adjacency in insertion order and lowers each unvisited
// neighbour whose tentative distance improves through u.
//
// Assumes du == dist[u] is final (u was just extracted).
func (r *runner) relax(u core.NodeID, du int64) error {
	for _, e := range r.graph.Neighbors(u) {
		v := e.To
		if r.visited[v] {
			continue
		}

		// Candidate distance Source → … → u → v. du is finite here.
		alt := du + e.Weight
		if alt >= r.tree.dist[v] {
			continue
		}

		r.tree.dist[v] = alt
		r.tree.prev[v] = u

		// v is unvisited, hence still in the heap, and alt is strictly
		// smaller than its current key. A failure is a defect.
		if err := r.heap.DecreaseKey(v, alt); err != nil {
			return fmt.Errorf("dijkstra: decrease-key for %q: %w", r.graph.NameOf(v), err)
		}
	}

	return nil
}
