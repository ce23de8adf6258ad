package alloc

// Allocator is the contract consumed by a host runtime.
//
// Alloc returns a byte offset into the linear memory satisfying
// (size, align); align must be a power of two. On failure the offset is
// meaningless and the error is ErrNoMemory.
//
// Free receives the offset originally returned together with the same
// (size, align) pair; the runtime remembers the layout across the pair
// of calls, so no header is stored in live allocations.
//
// Realloc may be implemented naively as allocate-copy-free. Allocators
// that never free leak the old block.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32) error
	Realloc(ptr, oldSize, newSize, align uint32) (uint32, error)
}

// Shared is an Allocator that is safe to install as the process-wide
// singleton. The capability cannot be implemented outside this package:
// stateful allocators only acquire it through a wrapper.
type Shared interface {
	Allocator
	threadSafe()
}

// Span is one free block: a half-open byte range [Off, Off+Size) of the
// linear memory.
type Span struct {
	Off  uint32 `json:"off"`
	Size uint32 `json:"size"`
}

// End returns the offset one past the span.
func (s Span) End() uint32 {
	return s.Off + s.Size
}
