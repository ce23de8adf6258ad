// Package alloc provides a family of minimal allocators over a wasm32
// linear memory, for hosts that trade allocator features for generated
// code size.
//
// # Overview
//
// Every allocator hands out uint32 byte offsets into one linear memory
// (see the linear package) and grows that memory one page (64 KiB) at a
// time when its free storage is exhausted. The caller supplies the same
// (size, align) pair to Free that it passed to Alloc; no per-allocation
// header is stored, which is what keeps the allocators small.
//
// # Implementations
//
// FreeListAllocator: first-fit, address-ordered free list with boundary
// coalescing. The only allocator here that reuses freed memory.
//
// BumpAllocator: monotone high-water mark inside a region grown on
// demand. Free is a no-op; slack from alignment is never reclaimed.
//
// PageAllocator: whole pages per allocation, never freed. Stateless.
//
// FailAllocator: refuses every request. The degenerate baseline, and
// the only allocator here that needs no memory at all.
//
// # Thread Safety
//
// BumpAllocator and FreeListAllocator mutate allocator state on every
// call and require external serialization. The Shared interface is the
// static capability "safe to install process-wide": those two do not
// implement it, so Install rejects them at compile time. Wrap them in
// NewLocked, or in AssumeSingleThreaded after acknowledging the
// single-thread precondition with UnsafeAssumeSingleThreaded.
//
// # Failure
//
// The single recoverable failure is ErrNoMemory: the memory would not
// grow, or the requested alignment is beyond what the allocator can
// satisfy. Free never fails on pointers the allocator handed out; it
// reports ErrBadPointer on obvious misuse instead of corrupting its
// free list.
package alloc
