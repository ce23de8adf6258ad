package alloc

import "errors"

var (
	// ErrNoMemory indicates that the linear memory would not grow, or
	// that the requested alignment cannot be satisfied. It is the Go
	// rendition of the null pointer an installed allocator returns to
	// the host runtime.
	ErrNoMemory = errors.New("alloc: out of memory")

	// ErrBadAlign indicates an alignment that is zero or not a power
	// of two.
	ErrBadAlign = errors.New("alloc: alignment must be a power of two")

	// ErrBadPointer indicates a Free or Realloc argument the allocator
	// can prove it never handed out. A rejected Free leaves the free list
	// unchanged. FreeListAllocator.Realloc frees the old block only after
	// the new one is allocated and filled, so when it returns this error
	// the new block stays allocated.
	ErrBadPointer = errors.New("alloc: bad pointer")

	// ErrNotAcknowledged indicates an AssumeSingleThreaded construction
	// with a token that did not come from UnsafeAssumeSingleThreaded.
	ErrNotAcknowledged = errors.New("alloc: single-thread precondition not acknowledged")
)
