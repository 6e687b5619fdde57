// This file declares the Heap type, its entry layout, sentinel errors,
// and the New constructor.
package minheap

import (
	"errors"

	"github.com/katalvlaran/cityroute/core"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin was called on an empty heap.
	// Correct engine usage drains exactly as many entries as it inserted,
	// so this error marks a defect in the caller, not a data condition.
	ErrEmptyHeap = errors.New("minheap: extract from empty heap")

	// ErrBadDecrease indicates DecreaseKey was called with a key that is
	// not strictly smaller than the current one, or for an id that is not
	// currently in the heap. Like ErrEmptyHeap, this is a defect signal.
	ErrBadDecrease = errors.New("minheap: invalid decrease-key")

	// ErrDuplicateID indicates Insert was called for an id that is
	// already present. Each node may occupy at most one slot.
	ErrDuplicateID = errors.New("minheap: id already in heap")

	// ErrIDRange indicates an id outside [0, capacity) was supplied.
	ErrIDRange = errors.New("minheap: id out of range")
)

// notInHeap marks an id with no current slot in the slot table.
const notInHeap = -1

// entry is one heap element: a node id ordered by its tentative distance.
type entry struct {
	key int64
	id  core.NodeID
}

// Heap is an indexed binary min-heap of node ids keyed by distance.
// The zero value is not usable; construct with New.
//
// Invariants maintained between every exported operation:
//
//   - heap order: data[i].key ≤ data[child].key for every existing child;
//   - slot consistency: pos[data[i].id] == i for every occupied slot i,
//     and pos[id] == notInHeap for every id not present.
type Heap struct {
	data []entry

	// pos[id] is the current slot of id in data, or notInHeap.
	pos []int
}

// New returns an empty Heap able to track ids in [0, capacity).
// Capacity is normally the node count of the graph being queried.
func New(capacity int) *Heap {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = notInHeap
	}

	return &Heap{
		data: make([]entry, 0, capacity),
		pos:  pos,
	}
}
