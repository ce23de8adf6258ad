package alloc

import "github.com/wasmkit/heapkit/linear"

// leakingRealloc is the allocate-and-copy path shared by the allocators
// that never free. The old block leaks.
func leakingRealloc(a Allocator, mem linear.Memory, ptr, oldSize, newSize, align uint32) (uint32, error) {
	newPtr, err := a.Alloc(newSize, align)
	if err != nil {
		return 0, err
	}
	copyPayload(mem.Bytes(), newPtr, ptr, minU32(oldSize, newSize))
	return newPtr, nil
}

func copyPayload(b []byte, dst, src, n uint32) {
	copy(b[dst:dst+n], b[src:src+n])
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
