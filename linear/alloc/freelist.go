package alloc

import (
	"fmt"
	"os"

	"github.com/wasmkit/heapkit/internal/format"
	"github.com/wasmkit/heapkit/linear"
)

// Runtime debug flag for allocation logging - controlled by the
// HEAPKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// FreeListAllocator is a first-fit allocator over a single
// address-ordered free list with boundary coalescing.
//
// Free blocks carry their bookkeeping in-band: the first two words of
// every free block hold (size, next), encoded little-endian in the
// linear memory itself. Live allocations carry no header at all - the
// host runtime passes (size, align) back on Free. The list is kept
// sorted by ascending offset, which makes coalescing at the insertion
// point O(1) once the position is found.
//
// Block offsets and sizes are always multiples of the 8-byte node size.
// Allocation requests are rounded up to that granule, so the prefix and
// suffix fragments produced by a split are themselves always node-sized
// or empty; no sub-node slack can arise.
//
// Not thread-safe: every call mutates the list head or the in-band
// nodes. It does not implement Shared; install it behind NewLocked or
// AssumeSingleThreaded.
type FreeListAllocator struct {
	mem linear.Memory

	// head is the offset of the first free block, or format.NilNode.
	head uint32

	cfg   FreeListConfig
	stats Stats
}

// FreeListConfig configures NewFreeList. The zero value is the default.
type FreeListConfig struct {
	// OnGrow, if set, is called with the page delta after each
	// successful grow, before the new region joins the free list. Test
	// instrumentation only.
	OnGrow func(pages uint32)
}

// DefaultFreeListConfig is used when NewFreeList receives nil.
var DefaultFreeListConfig = FreeListConfig{}

// NewFreeList creates a free-list allocator over mem. The list starts
// empty; the first allocation grows the memory.
func NewFreeList(mem linear.Memory, cfg *FreeListConfig) *FreeListAllocator {
	if cfg == nil {
		cfg = &DefaultFreeListConfig
	}
	return &FreeListAllocator{
		mem:  mem,
		head: format.NilNode,
		cfg:  *cfg,
	}
}

// Alloc finds the first free block with a suitably aligned subregion of
// the rounded size, splits off prefix and suffix fragments back into
// the list, and returns the aligned offset. On a miss it grows the
// memory by enough pages to satisfy both size and alignment in the
// worst case and retries; the retry cannot miss.
func (fl *FreeListAllocator) Alloc(size, align uint32) (uint32, error) {
	if !format.IsPow2(align) {
		return 0, ErrBadAlign
	}
	fl.stats.AllocCalls++

	need := fl.roundSize(size)
	if align < format.NodeSize {
		align = format.NodeSize
	}
	// Rounding or alignment slack wrapping the 32-bit address space can
	// never be satisfied.
	if need < size || need+align < need {
		return 0, ErrNoMemory
	}

	for {
		if off, ok := fl.takeFirstFit(need, align); ok {
			fl.stats.BytesAllocated += uint64(need)
			return off, nil
		}

		// Worst case the block base is misaligned by align-NodeSize,
		// so request enough pages for size plus alignment slack.
		pages := format.PagesFor(need + align)
		prev := fl.mem.Grow(pages)
		if prev == linear.GrowFailed {
			if logAlloc {
				fmt.Fprintf(os.Stderr, "[ALLOC] grow %d pages refused: need=%d align=%d\n",
					pages, need, align)
			}
			return 0, ErrNoMemory
		}
		fl.stats.GrowCalls++
		fl.stats.GrowPages += uint64(pages)
		if fl.cfg.OnGrow != nil {
			fl.cfg.OnGrow(pages)
		}

		// The fresh region enters through the ordinary free path, so it
		// merges with a trailing free block when they touch.
		if err := fl.insert(prev*format.PageSize, pages*format.PageSize); err != nil {
			return 0, err
		}
	}
}

// Free rebuilds a node at ptr with the same rounded size used at
// allocation, inserts it in address order, and coalesces with both
// physical neighbors. Obvious misuse (misaligned or out-of-range
// pointers, ranges overlapping the free list) is rejected without
// touching the list.
func (fl *FreeListAllocator) Free(ptr, size, align uint32) error {
	if !format.IsPow2(align) {
		return ErrBadAlign
	}
	fl.stats.FreeCalls++

	need := fl.roundSize(size)
	if ptr%format.NodeSize != 0 || uint64(ptr)+uint64(need) > uint64(len(fl.mem.Bytes())) {
		return ErrBadPointer
	}
	if err := fl.insert(ptr, need); err != nil {
		return err
	}
	fl.stats.BytesFreed += uint64(need)
	return nil
}

// Realloc is the naive allocate-copy-free; no in-place grow.
func (fl *FreeListAllocator) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	fl.stats.ReallocCalls++
	newPtr, err := fl.Alloc(newSize, align)
	if err != nil {
		return 0, err
	}
	copyPayload(fl.mem.Bytes(), newPtr, ptr, minU32(oldSize, newSize))
	if err := fl.Free(ptr, oldSize, align); err != nil {
		return 0, err
	}
	return newPtr, nil
}

// Spans returns the free list as address-ordered spans. Used by the
// inspect package and by tests asserting the list invariants.
func (fl *FreeListAllocator) Spans() []Span {
	var spans []Span
	for off := fl.head; off != format.NilNode; off = fl.next(off) {
		spans = append(spans, Span{Off: off, Size: fl.size(off)})
	}
	return spans
}

// Stats returns a copy of the allocator counters.
func (fl *FreeListAllocator) Stats() Stats {
	return fl.stats
}

// Memory returns the linear memory the allocator manages.
func (fl *FreeListAllocator) Memory() linear.Memory {
	return fl.mem
}

// roundSize maps a request to the allocation granule: at least one
// node, rounded to a node-size multiple. Zero-size requests occupy one
// node.
func (fl *FreeListAllocator) roundSize(size uint32) uint32 {
	if size < format.NodeSize {
		return format.NodeSize
	}
	return format.AlignNode(size)
}

// takeFirstFit walks the list for the first block that can hold need
// bytes at alignment align, unlinks it, and reinserts the prefix and
// suffix fragments in place. Returns the aligned offset.
func (fl *FreeListAllocator) takeFirstFit(need, align uint32) (uint32, bool) {
	prev := format.NilNode
	for off := fl.head; off != format.NilNode; prev, off = off, fl.next(off) {
		blockSize := fl.size(off)
		blockEnd := off + blockSize

		start := format.AlignUp(off, align)
		end := uint64(start) + uint64(need)
		if start < off || end > uint64(blockEnd) {
			continue
		}

		// Rebuild the chain covering this block: prefix, suffix, rest.
		// Both fragments are node-size multiples (offsets and sizes are
		// all 8-aligned), so nothing is ever dropped.
		link := fl.next(off)
		if suffix := blockEnd - uint32(end); suffix >= format.NodeSize {
			fl.setNode(uint32(end), suffix, link)
			link = uint32(end)
			fl.stats.Splits++
		}
		if prefix := start - off; prefix >= format.NodeSize {
			fl.setNode(off, prefix, link)
			link = off
			fl.stats.Splits++
		}
		fl.setNext(prev, link)
		return start, true
	}
	return 0, false
}

// insert links the block [off, off+size) into the address-ordered list
// and merges it with the predecessor and successor when physically
// adjacent. Overlap with an existing free block means a double free or
// a bad pointer; the list is left unchanged.
func (fl *FreeListAllocator) insert(off, size uint32) error {
	prev := format.NilNode
	cur := fl.head
	for cur != format.NilNode && cur < off {
		prev, cur = cur, fl.next(cur)
	}

	if prev != format.NilNode && prev+fl.size(prev) > off {
		return ErrBadPointer
	}
	if cur != format.NilNode && off+size > cur {
		return ErrBadPointer
	}

	if prev != format.NilNode && prev+fl.size(prev) == off {
		// Merge into the predecessor.
		merged := fl.size(prev) + size
		fl.stats.CoalesceBackward++
		if cur != format.NilNode && prev+merged == cur {
			// The block bridges predecessor and successor.
			fl.stats.CoalesceForward++
			fl.setNode(prev, merged+fl.size(cur), fl.next(cur))
		} else {
			fl.setSize(prev, merged)
		}
		return nil
	}

	next := cur
	if cur != format.NilNode && off+size == cur {
		// Merge the successor into the new node.
		fl.stats.CoalesceForward++
		size += fl.size(cur)
		next = fl.next(cur)
	}
	fl.setNode(off, size, next)
	fl.setNext(prev, off)
	return nil
}

// In-band node accessors. A node at off stores its size in the first
// word and the next offset in the second.

func (fl *FreeListAllocator) size(off uint32) uint32 {
	return format.ReadU32(fl.mem.Bytes(), off+format.NodeSizeField)
}

func (fl *FreeListAllocator) next(off uint32) uint32 {
	return format.ReadU32(fl.mem.Bytes(), off+format.NodeNextField)
}

func (fl *FreeListAllocator) setSize(off, size uint32) {
	format.PutU32(fl.mem.Bytes(), off+format.NodeSizeField, size)
}

// setNext updates the next pointer of the node at off, or the list head
// when off is NilNode.
func (fl *FreeListAllocator) setNext(off, next uint32) {
	if off == format.NilNode {
		fl.head = next
		return
	}
	format.PutU32(fl.mem.Bytes(), off+format.NodeNextField, next)
}

func (fl *FreeListAllocator) setNode(off, size, next uint32) {
	b := fl.mem.Bytes()
	format.PutU32(b, off+format.NodeSizeField, size)
	format.PutU32(b, off+format.NodeNextField, next)
}

var _ Allocator = (*FreeListAllocator)(nil)
