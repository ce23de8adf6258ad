package alloc

import (
	"runtime"
	"sync/atomic"
)

// LockedAllocator serializes access to an inner allocator with a
// one-word test-and-set spinlock. The lock covers the whole operation,
// including any grow the inner allocator performs; the inner allocator
// is never touched outside the critical section. Critical sections are
// bounded (list traversal plus one grow), so spinning makes progress;
// fairness is not attempted.
type LockedAllocator struct {
	lock  uint32
	inner Allocator
}

// NewLocked wraps inner in a spinlock.
func NewLocked(inner Allocator) *LockedAllocator {
	return &LockedAllocator{inner: inner}
}

func (la *LockedAllocator) acquire() {
	for !atomic.CompareAndSwapUint32(&la.lock, 0, 1) {
		runtime.Gosched()
	}
}

func (la *LockedAllocator) release() {
	atomic.StoreUint32(&la.lock, 0)
}

// Alloc runs the inner Alloc under the lock.
func (la *LockedAllocator) Alloc(size, align uint32) (uint32, error) {
	la.acquire()
	defer la.release()
	return la.inner.Alloc(size, align)
}

// Free runs the inner Free under the lock.
func (la *LockedAllocator) Free(ptr, size, align uint32) error {
	la.acquire()
	defer la.release()
	return la.inner.Free(ptr, size, align)
}

// Realloc runs the inner Realloc under the lock.
func (la *LockedAllocator) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	la.acquire()
	defer la.release()
	return la.inner.Realloc(ptr, oldSize, newSize, align)
}

// The lock word orders all inner-state mutations between callers.
func (la *LockedAllocator) threadSafe() {}

var _ Shared = (*LockedAllocator)(nil)
