//go:build linux || darwin || freebsd

package linear

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/wasmkit/heapkit/internal/format"
)

// Mmap is a linear memory whose full address range is reserved up front
// with PROT_NONE and committed page by page on Grow. Unlike Slice, the
// backing bytes never move, so pointers derived from earlier grows stay
// valid across later ones, matching wasm linear memory exactly.
type Mmap struct {
	reserved []byte
	pages    uint32
	max      uint32
}

// NewMmap reserves maxPages of address space. Nothing is committed
// until the first Grow.
func NewMmap(maxPages uint32) (*Mmap, error) {
	if maxPages == 0 || maxPages > maxAddressablePages {
		return nil, ErrTooLarge
	}
	buf, err := unix.Mmap(-1, 0, int(uint64(maxPages)*format.PageSize),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapFailed, err)
	}
	return &Mmap{reserved: buf, max: maxPages}, nil
}

// Grow commits delta more pages and returns the previous page count,
// or GrowFailed when the reservation is exhausted or the host refuses
// the commit.
func (m *Mmap) Grow(delta uint32) uint32 {
	prev := m.pages
	if delta == 0 {
		return prev
	}
	if uint64(prev)+uint64(delta) > uint64(m.max) {
		return GrowFailed
	}
	lo := uint64(prev) * format.PageSize
	hi := uint64(prev+delta) * format.PageSize
	if err := unix.Mprotect(m.reserved[lo:hi], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return GrowFailed
	}
	m.pages = prev + delta
	return prev
}

// Bytes returns the committed region.
func (m *Mmap) Bytes() []byte {
	return m.reserved[:uint64(m.pages)*format.PageSize]
}

// Pages returns the committed page count.
func (m *Mmap) Pages() uint32 {
	return m.pages
}

// Close releases the reservation. The memory must not be used after
// Close.
func (m *Mmap) Close() error {
	buf := m.reserved
	m.reserved = nil
	m.pages = 0
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}

var _ Memory = (*Mmap)(nil)
