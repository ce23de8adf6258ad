package format

// Layout constants for the wasm32 linear-memory model.
// All allocator bookkeeping is expressed in these units.
const (
	// PageSize is the WebAssembly page size in bytes. Linear memory grows
	// in whole-page increments and every grow result is page-aligned.
	PageSize = 65536

	// WordSize is the machine word on wasm32.
	WordSize = 4

	// NodeSize is the size of an in-band free-list node: two words
	// (size, next). It is also the minimum allocation granule and the
	// alignment floor of every free block.
	NodeSize = 2 * WordSize

	// NodeAlignmentMask is used to round sizes up to NodeSize multiples.
	NodeAlignmentMask = NodeSize - 1

	// NodeSizeField and NodeNextField are the byte offsets of the two
	// node words relative to the node's own offset.
	NodeSizeField = 0
	NodeNextField = WordSize
)

// NilNode terminates the free list. It doubles as the grow-failure
// sentinel: 0xFFFFFFFF can never be a real page count or node offset.
const NilNode = ^uint32(0)
