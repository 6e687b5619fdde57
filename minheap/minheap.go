package minheap

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// Len returns the number of entries currently in the heap.
//
// Complexity: O(1)
func (h *Heap) Len() int { return len(h.data) }

// IsEmpty reports whether the heap has no entries.
//
// Complexity: O(1)
func (h *Heap) IsEmpty() bool { return len(h.data) == 0 }

// Contains reports whether id currently occupies a slot in the heap.
//
// Complexity: O(1)
func (h *Heap) Contains(id core.NodeID) bool {
	return int(id) >= 0 && int(id) < len(h.pos) && h.pos[id] != notInHeap
}

// Insert adds id with the given key and restores heap order by sifting the
// new entry upward: while its key is strictly smaller than its parent's,
// the two swap. Each swap updates the slot table for both payloads.
//
// Returns ErrIDRange for ids outside the tracked range and ErrDuplicateID
// if id is already present.
//
// Complexity: O(log n)
func (h *Heap) Insert(id core.NodeID, key int64) error {
	if int(id) < 0 || int(id) >= len(h.pos) {
		return fmt.Errorf("%w: id=%d capacity=%d", ErrIDRange, id, len(h.pos))
	}
	if h.pos[id] != notInHeap {
		return fmt.Errorf("%w: id=%d", ErrDuplicateID, id)
	}

	// Append at the end, record the slot, then sift up.
	h.data = append(h.data, entry{key: key, id: id})
	h.pos[id] = len(h.data) - 1
	h.siftUp(len(h.data) - 1)

	return nil
}

// ExtractMin removes and returns the entry with the smallest key.
//
// The last slot's entry is moved to the root, the backing array shrinks by
// one, and the new root sifts downward: at each level it compares against
// the smaller-keyed existing child and swaps while its own key is ≥ that
// child's key. When both children carry equal keys the right child is
// chosen (see the package documentation on tie-breaking).
//
// Returns ErrEmptyHeap when no entries remain.
//
// Complexity: O(log n)
func (h *Heap) ExtractMin() (core.NodeID, int64, error) {
	if len(h.data) == 0 {
		return core.NoNode, 0, ErrEmptyHeap
	}

	root := h.data[0]
	h.pos[root.id] = notInHeap

	last := len(h.data) - 1
	if last > 0 {
		h.data[0] = h.data[last]
		h.pos[h.data[0].id] = 0
	}
	h.data = h.data[:last]

	if last > 0 {
		h.siftDown(0)
	}

	return root.id, root.key, nil
}

// DecreaseKey lowers the key of id in place and sifts the entry upward
// exactly as Insert does. The slot table makes locating the entry O(1).
//
// Returns ErrIDRange for ids outside the tracked range, and ErrBadDecrease
// if id is not currently in the heap or newKey is not strictly smaller
// than the current key.
//
// Complexity: O(log n)
func (h *Heap) DecreaseKey(id core.NodeID, newKey int64) error {
	if int(id) < 0 || int(id) >= len(h.pos) {
		return fmt.Errorf("%w: id=%d capacity=%d", ErrIDRange, id, len(h.pos))
	}
	i := h.pos[id]
	if i == notInHeap {
		return fmt.Errorf("%w: id=%d not in heap", ErrBadDecrease, id)
	}
	if newKey >= h.data[i].key {
		return fmt.Errorf("%w: id=%d key=%d newKey=%d", ErrBadDecrease, id, h.data[i].key, newKey)
	}

	h.data[i].key = newKey
	h.siftUp(i)

	return nil
}

// siftUp restores heap order from slot i toward the root.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[i].key >= h.data[parent].key {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown restores heap order from slot i toward the leaves. Child
// existence is computed from the array length, never stored.
func (h *Heap) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		if left >= n {
			break // leaf reached
		}

		// Pick the smaller-keyed child; on equal keys prefer the right.
		child := left
		if right := left + 1; right < n && h.data[right].key <= h.data[left].key {
			child = right
		}

		if h.data[i].key < h.data[child].key {
			break // ordering holds
		}
		h.swap(i, child)
		i = child
	}
}

// swap exchanges slots i and j and keeps the slot table consistent for
// both payloads.
func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i].id] = i
	h.pos[h.data[j].id] = j
}
