package alloc

import (
	"github.com/wasmkit/heapkit/internal/format"
	"github.com/wasmkit/heapkit/linear"
)

// PageAllocator grows the linear memory by whole pages for every
// allocation and never frees anything. Very wasteful for small
// allocations, but it keeps no state between calls: every returned
// offset starts at a page boundary, which satisfies any power-of-two
// alignment up to the page size by construction.
type PageAllocator struct {
	mem linear.Memory
}

// NewPage creates a page-per-allocation allocator over mem.
func NewPage(mem linear.Memory) *PageAllocator {
	return &PageAllocator{mem: mem}
}

// Alloc grows by ceil(max(size, align)/PageSize) pages and returns the
// base of the new region. Alignments above one page cannot be
// guaranteed by page-granular growth and fail.
func (pa *PageAllocator) Alloc(size, align uint32) (uint32, error) {
	if !format.IsPow2(align) {
		return 0, ErrBadAlign
	}
	if align > format.PageSize {
		return 0, ErrNoMemory
	}
	n := size
	if align > n {
		n = align
	}
	if n == 0 {
		n = 1
	}
	prev := pa.mem.Grow(format.PagesFor(n))
	if prev == linear.GrowFailed {
		return 0, ErrNoMemory
	}
	return prev * format.PageSize, nil
}

// Free is a no-op; the pages leak.
func (pa *PageAllocator) Free(ptr, size, align uint32) error {
	return nil
}

// Realloc allocates fresh pages and copies; the old block leaks.
func (pa *PageAllocator) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	return leakingRealloc(pa, pa.mem, ptr, oldSize, newSize, align)
}

// No state between calls; safety is that of the underlying grow
// primitive.
func (pa *PageAllocator) threadSafe() {}

var _ Shared = (*PageAllocator)(nil)
