package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/heapkit/internal/format"
	"github.com/wasmkit/heapkit/linear"
)

// newFreeList builds a free-list allocator over a bounded slice memory
// whose first grown region will start at base. initialPages > 0 keeps
// test addresses away from zero.
func newFreeList(t testing.TB, initialPages, maxPages uint32) (*FreeListAllocator, uint32) {
	t.Helper()
	mem := linear.NewSlice(&linear.SliceConfig{
		InitialPages: initialPages,
		MaxPages:     maxPages,
	})
	return NewFreeList(mem, nil), initialPages * format.PageSize
}

// checkFreeList asserts the structural free-list invariants: nodes are
// address-ordered, in bounds, non-overlapping, never adjacent, and
// node-granular in both offset and size.
func checkFreeList(t testing.TB, fl *FreeListAllocator) {
	t.Helper()
	memSize := uint64(len(fl.Memory().Bytes()))
	spans := fl.Spans()
	for i, s := range spans {
		require.GreaterOrEqual(t, s.Size, uint32(format.NodeSize), "node %d too small", i)
		require.Zerof(t, s.Size%format.NodeSize, "node %d size not node-granular", i)
		require.Zerof(t, s.Off%format.NodeSize, "node %d offset not node-granular", i)
		require.LessOrEqual(t, uint64(s.Off)+uint64(s.Size), memSize, "node %d out of bounds", i)
		if i > 0 {
			require.Greater(t, s.Off, spans[i-1].End(),
				"nodes %d and %d overlap, are unordered, or should have coalesced", i-1, i)
		}
	}
}

// requireNoOverlap asserts that [off, off+size) intersects neither the
// free list nor any of the live ranges.
func requireNoOverlap(t testing.TB, fl *FreeListAllocator, off, size uint32, live map[uint32]uint32) {
	t.Helper()
	end := uint64(off) + uint64(size)
	for _, s := range fl.Spans() {
		require.False(t, uint64(s.Off) < end && uint64(off) < uint64(s.End()),
			"allocation [%d,%d) overlaps free block [%d,%d)", off, end, s.Off, s.End())
	}
	for lo, ls := range live {
		require.False(t, uint64(lo) < end && uint64(off) < uint64(lo)+uint64(ls),
			"allocation [%d,%d) overlaps live allocation at %d", off, end, lo)
	}
}
