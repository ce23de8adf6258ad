// Package linear models a wasm32 linear memory: a single contiguous
// byte-addressable region that grows in whole 64 KiB pages and never
// shrinks or moves.
//
// # Overview
//
// The Memory interface is the substrate every allocator in this module
// sits on. It exposes exactly the contract of the wasm memory.grow
// primitive: Grow(delta) extends the region by delta pages and returns
// the previous page count, so prev*PageSize is the base address of the
// newly acquired region. On failure Grow returns GrowFailed and the
// region is unchanged.
//
// # Implementations
//
// Slice: a growable in-process byte slice. With MaxPages set it doubles
// as the bounded test instance from which exhaustion behavior is driven.
//
// Mmap (unix only): reserves the full address range up front with
// PROT_NONE and commits pages on Grow, so the backing bytes never move
// for the lifetime of the memory. This is the closest model of wasm
// linear memory a host process can offer.
//
// # Thread Safety
//
// Memory implementations are not thread-safe. Allocators that require
// external serialization cover their Grow calls under the same lock
// that covers the rest of the operation.
package linear
