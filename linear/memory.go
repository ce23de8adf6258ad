package linear

import "github.com/wasmkit/heapkit/internal/format"

// PageSize is the unit of heap growth: 65,536 bytes.
const PageSize = format.PageSize

// GrowFailed is returned by Memory.Grow when the region cannot be
// extended. It is out-of-band: no real previous page count can be
// 0xFFFFFFFF, since that many pages would exceed the 32-bit address
// space.
const GrowFailed = format.NilNode

// Memory is a wasm32 linear memory.
//
// Grow extends the region by delta whole pages and returns the page
// count before the call, or GrowFailed if the region cannot grow. A
// delta of zero is a size query. Bytes exposes the current region; the
// returned slice is only valid until the next Grow.
type Memory interface {
	Grow(delta uint32) uint32
	Bytes() []byte
	Pages() uint32
}
