// Package minheap_test contains behavioral tests for the indexed min-heap:
// ordering of extractions, decrease-key semantics, and error conditions.
package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/minheap"
)

// TestExtractMin_EmptyHeap verifies ErrEmptyHeap on a fresh heap.
func TestExtractMin_EmptyHeap(t *testing.T) {
	h := minheap.New(8)

	id, key, err := h.ExtractMin()
	assert.Equal(t, core.NoNode, id)
	assert.Equal(t, int64(0), key)
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
}

// TestInsert_DuplicateID verifies a second Insert for the same id fails.
func TestInsert_DuplicateID(t *testing.T) {
	h := minheap.New(8)
	require.NoError(t, h.Insert(3, 10))

	assert.ErrorIs(t, h.Insert(3, 5), minheap.ErrDuplicateID)
	assert.Equal(t, 1, h.Len())
}

// TestInsert_IDRange verifies ids outside [0, capacity) are rejected.
func TestInsert_IDRange(t *testing.T) {
	h := minheap.New(4)

	assert.ErrorIs(t, h.Insert(-1, 1), minheap.ErrIDRange)
	assert.ErrorIs(t, h.Insert(4, 1), minheap.ErrIDRange)
}

// TestExtract_NonDecreasingOrder verifies that with no further insertions,
// repeated ExtractMin yields keys in non-decreasing order.
func TestExtract_NonDecreasingOrder(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	h := minheap.New(n)

	want := make([]int64, 0, n)
	for id := 0; id < n; id++ {
		k := int64(r.Intn(50)) // plenty of duplicate keys on purpose
		require.NoError(t, h.Insert(core.NodeID(id), k))
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]int64, 0, n)
	for !h.IsEmpty() {
		_, key, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, key)
	}

	assert.Equal(t, want, got)
}

// TestDecreaseKey_ReordersEntry verifies a lowered key surfaces earlier in
// the extraction order.
func TestDecreaseKey_ReordersEntry(t *testing.T) {
	h := minheap.New(4)
	require.NoError(t, h.Insert(0, 10))
	require.NoError(t, h.Insert(1, 20))
	require.NoError(t, h.Insert(2, 30))

	// Lower id 2 below everything else.
	require.NoError(t, h.DecreaseKey(2, 5))

	id, key, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(2), id)
	assert.Equal(t, int64(5), key)
}

// TestDecreaseKey_Invalid verifies the two defect conditions: non-smaller
// key, and id not currently in the heap.
func TestDecreaseKey_Invalid(t *testing.T) {
	h := minheap.New(4)
	require.NoError(t, h.Insert(0, 10))

	// Equal key is not a decrease.
	assert.ErrorIs(t, h.DecreaseKey(0, 10), minheap.ErrBadDecrease)
	// Larger key is not a decrease.
	assert.ErrorIs(t, h.DecreaseKey(0, 15), minheap.ErrBadDecrease)
	// Absent id.
	assert.ErrorIs(t, h.DecreaseKey(1, 5), minheap.ErrBadDecrease)
	// Out-of-range id reports range, not decrease.
	assert.ErrorIs(t, h.DecreaseKey(9, 5), minheap.ErrIDRange)

	// The single valid entry is untouched by the failed attempts.
	id, key, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), id)
	assert.Equal(t, int64(10), key)
}

// TestContains_TracksMembership verifies Contains flips as entries move in
// and out of the heap.
func TestContains_TracksMembership(t *testing.T) {
	h := minheap.New(4)

	assert.False(t, h.Contains(1))
	require.NoError(t, h.Insert(1, 3))
	assert.True(t, h.Contains(1))

	_, _, err := h.ExtractMin()
	require.NoError(t, err)
	assert.False(t, h.Contains(1))

	// Re-insertion after extraction is legal.
	require.NoError(t, h.Insert(1, 8))
	assert.True(t, h.Contains(1))
}

// TestMixedWorkload_DrainMatchesReference cross-checks a random sequence
// of inserts and decreases against a plain sorted reference of the final
// key of each id.
func TestMixedWorkload_DrainMatchesReference(t *testing.T) {
	const n = 100
	r := rand.New(rand.NewSource(99))
	h := minheap.New(n)

	final := make(map[core.NodeID]int64, n)
	for id := 0; id < n; id++ {
		k := int64(r.Intn(1000) + 100)
		require.NoError(t, h.Insert(core.NodeID(id), k))
		final[core.NodeID(id)] = k
	}
	for i := 0; i < 300; i++ {
		id := core.NodeID(r.Intn(n))
		if final[id] > 1 {
			newKey := final[id] / 2
			require.NoError(t, h.DecreaseKey(id, newKey))
			final[id] = newKey
		}
	}

	wantKeys := make([]int64, 0, n)
	for _, k := range final {
		wantKeys = append(wantKeys, k)
	}
	sort.Slice(wantKeys, func(i, j int) bool { return wantKeys[i] < wantKeys[j] })

	for i := 0; i < n; i++ {
		id, key, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, final[id], key, "id %d drained with wrong key", id)
		assert.Equal(t, wantKeys[i], key, "extraction %d out of order", i)
	}
	assert.True(t, h.IsEmpty())
}
