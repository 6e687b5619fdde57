// Package minheap provides an indexed, array-backed binary min-heap over
// graph node ids, keyed by tentative distance.
//
// Overview:
//
//   - The heap orders (key, NodeID) entries by key ascending, root at
//     slot 0: parent(i) = (i-1)/2, children at 2i+1 and 2i+2.
//   - "Indexed" means the heap also maintains a slot table mapping each
//     NodeID currently in the heap back to its array position. Finding a
//     node's entry is O(1), so DecreaseKey is a true O(log n) operation —
//     no lazy duplicate entries, no linear scans.
//   - Every swap updates the slot table for both payloads, so the table
//     and the backing array can never disagree between operations.
//
// This is the priority queue Dijkstra's algorithm wants: one entry per
// node, lowered in place each time a relaxation improves a distance.
// DecreaseKey runs once per improving edge, which makes its O(log n) cost
// the single most important performance property of the whole engine.
//
// Tie-breaking:
//
//   - When ExtractMin sifts the new root downward and both children carry
//     equal keys, the RIGHT child is preferred. Any consistent rule would
//     produce a valid heap; this one is kept because it pins the
//     extraction order, and with it the exact route the engine reports
//     when several shortest paths share a distance.
//
// Errors:
//
//	ErrEmptyHeap    - ExtractMin on an empty heap. Under correct engine
//	                  usage this is unreachable; treat it as a defect.
//	ErrBadDecrease  - DecreaseKey with a non-smaller key, or for an id not
//	                  currently in the heap. Also a defect, never
//	                  user-triggered.
//	ErrDuplicateID  - Insert of an id already present.
//	ErrIDRange      - an id outside the capacity the heap was built for.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log n)
//   - Len, IsEmpty, Contains: O(1)
//   - Space: O(n + capacity)
package minheap
