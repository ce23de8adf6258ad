package linear

import "github.com/wasmkit/heapkit/internal/format"

// maxAddressablePages is the whole 32-bit address space in pages.
const maxAddressablePages = 1 << 16

// Slice is a linear memory backed by an ordinary byte slice.
//
// It is both the default in-process memory and the test instance: with
// MaxPages set, Grow fails once the budget is exhausted, which is how
// exhaustion scenarios are driven. Starting with InitialPages > 0 puts
// the first grown region at a non-zero, page-aligned base address.
type Slice struct {
	data []byte
	max  uint32
}

// SliceConfig configures NewSlice. The zero value is an empty,
// unbounded memory.
type SliceConfig struct {
	// InitialPages are grown before the memory is handed out, so the
	// first caller of Grow sees a non-zero previous page count.
	InitialPages uint32

	// MaxPages bounds the memory. Zero means no bound beyond the
	// 32-bit address space.
	MaxPages uint32
}

// NewSlice creates a slice-backed linear memory. A nil config is the
// zero config.
func NewSlice(cfg *SliceConfig) *Slice {
	if cfg == nil {
		cfg = &SliceConfig{}
	}
	s := &Slice{max: cfg.MaxPages}
	if cfg.InitialPages > 0 {
		s.Grow(cfg.InitialPages)
	}
	return s
}

// Grow extends the memory by delta pages, zero-filled, and returns the
// previous page count or GrowFailed.
func (s *Slice) Grow(delta uint32) uint32 {
	prev := s.Pages()
	if delta == 0 {
		return prev
	}
	total := uint64(prev) + uint64(delta)
	if total > maxAddressablePages {
		return GrowFailed
	}
	if s.max != 0 && total > uint64(s.max) {
		return GrowFailed
	}
	s.data = append(s.data, make([]byte, uint64(delta)*format.PageSize)...)
	return prev
}

// Bytes returns the current region. Only valid until the next Grow:
// append may move the backing array.
func (s *Slice) Bytes() []byte {
	return s.data
}

// Pages returns the current page count.
func (s *Slice) Pages() uint32 {
	return uint32(uint64(len(s.data)) / format.PageSize)
}

var _ Memory = (*Slice)(nil)
