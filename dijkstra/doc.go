// Package dijkstra provides a precise, high-performance implementation of
// Dijkstra's shortest-path algorithm over a core.Graph of named nodes.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to
//     all reachable nodes in O((V + E) log V) time, where V = |nodes| and
//     E = |edges|.
//   - The engine uses a true decrease-key priority queue (minheap.Heap):
//     every node is inserted exactly once, and each improving relaxation
//     lowers that node's key in place. No lazy duplicates, no stale-entry
//     filtering — each node is extracted exactly once.
//   - One run produces a Tree: the per-query distance and predecessor
//     state, detached from the graph. Reconstructing a route to any
//     destination is then O(path length).
//
// Execution model (one run = one query):
//
//   - Init: dist[source] = 0, every other dist = Infinite, all
//     predecessors cleared, every node inserted into a fresh heap keyed by
//     its current distance.
//   - Relaxing: repeatedly extract the minimum-distance node u; for each
//     edge u→v with weight w, if v is unvisited and dist[u]+w < dist[v],
//     update dist[v], record u as v's predecessor, and decrease v's heap
//     key. Mark u visited after its edge sweep.
//   - Done: the heap is empty. Every reachable node holds its true
//     shortest distance and a predecessor chain back to the source;
//     unreachable nodes keep Infinite and no predecessor.
//
// The Infinite sentinel is never an operand in an addition: when a node is
// extracted still carrying Infinite (a disconnected component), the engine
// marks it visited and moves on without touching its adjacency.
//
// Determinism:
//
//   - For a fixed graph and fixed edge-insertion order, the extraction
//     order — and therefore the predecessor choice among equal-cost
//     alternatives — is fully determined. The heap's right-child
//     tie-break and the insertion-order edge sweep pin the exact route.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the Source option was empty or omitted.
//   - ErrNilGraph:       a nil *core.Graph was passed.
//   - ErrSourceNotFound: the source name is absent from the graph.
//   - ErrUnreachable:    PathTo/DistanceTo hit a node with no finite
//     distance; reported per query, other queries proceed.
//   - Heap failures (minheap.ErrEmptyHeap, minheap.ErrBadDecrease) cannot
//     occur under a correct engine; if one surfaces it is returned
//     wrapped, loudly, as a defect — never swallowed.
//
// Thread safety:
//
//   - A Tree is immutable after Dijkstra returns and may be shared freely.
//     Runs against one graph may proceed sequentially or concurrently;
//     each run owns its heap and scratch state exclusively.
//
// See also:
//
//   - core.Graph: node registry, adjacency, edge construction.
//   - minheap.Heap: the indexed decrease-key priority queue.
package dijkstra
