package alloc

// FailAllocator rejects every allocation. It needs no linear memory
// and is portable to any target; installing it makes every heap
// allocation in the program abort at the host runtime.
type FailAllocator struct{}

// Alloc always fails.
func (FailAllocator) Alloc(size, align uint32) (uint32, error) {
	return 0, ErrNoMemory
}

// Free tolerates any pointer. The runtime only hands back pointers it
// received, and it never received any.
func (FailAllocator) Free(ptr, size, align uint32) error {
	return nil
}

// Realloc always fails.
func (FailAllocator) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	return 0, ErrNoMemory
}

// No mutable state; trivially safe to share.
func (FailAllocator) threadSafe() {}

var _ Shared = FailAllocator{}
