package alloc

import (
	"github.com/wasmkit/heapkit/internal/format"
	"github.com/wasmkit/heapkit/linear"
)

// BumpAllocator hands out monotonically increasing offsets from a
// region it grows on demand. Free is a no-op, alignment slack is never
// reclaimed, and the high-water mark only moves forward. Efficient for
// small allocations; leaks everything.
//
// Not thread-safe: concurrent callers race on (next, end). It does not
// implement Shared; install it behind AssumeSingleThreaded or
// NewLocked.
type BumpAllocator struct {
	mem linear.Memory

	// next is the bump pointer, end the exclusive limit of the grown
	// region. end == 0 means never grown: the region base is only known
	// once the first Grow reports the previous page count.
	next uint32
	end  uint32

	stats Stats
}

// NewBump creates a bump allocator over mem.
func NewBump(mem linear.Memory) *BumpAllocator {
	return &BumpAllocator{mem: mem}
}

// Alloc aligns the bump pointer up, grows the region if the request
// does not fit, and advances the pointer by exactly size bytes.
func (ba *BumpAllocator) Alloc(size, align uint32) (uint32, error) {
	if !format.IsPow2(align) {
		return 0, ErrBadAlign
	}
	ba.stats.AllocCalls++

	for {
		if ba.end != 0 {
			start := format.AlignUp(ba.next, align)
			limit := uint64(start) + uint64(size)
			if start >= ba.next && limit <= uint64(ba.end) {
				ba.next = uint32(limit)
				ba.stats.BytesAllocated += uint64(size)
				return start, nil
			}
		}

		var deficit uint64
		if ba.end == 0 {
			deficit = uint64(size)
		} else {
			deficit = uint64(format.AlignUp(ba.next, align)) + uint64(size) - uint64(ba.end)
		}
		pages := format.PagesFor(uint32(minU64(deficit, 1<<32-1)))
		if pages == 0 {
			pages = 1
		}

		prev := ba.mem.Grow(pages)
		if prev == linear.GrowFailed {
			return 0, ErrNoMemory
		}
		ba.stats.GrowCalls++
		ba.stats.GrowPages += uint64(pages)

		base := prev * format.PageSize
		if ba.end != base {
			// First grow, or something else grew the memory in between:
			// the new region is not contiguous with ours, so restart the
			// bump pointer at its base. The gap is leaked.
			ba.next = base
		}
		ba.end = base + pages*format.PageSize
	}
}

// Free is a no-op.
func (ba *BumpAllocator) Free(ptr, size, align uint32) error {
	ba.stats.FreeCalls++
	return nil
}

// Realloc allocates and copies; the old block leaks.
func (ba *BumpAllocator) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	ba.stats.ReallocCalls++
	return leakingRealloc(ba, ba.mem, ptr, oldSize, newSize, align)
}

// Stats returns a copy of the allocator counters.
func (ba *BumpAllocator) Stats() Stats {
	return ba.stats
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

var _ Allocator = (*BumpAllocator)(nil)
