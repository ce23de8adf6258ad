package format

import "encoding/binary"

// Little-endian encoding helpers for in-band bookkeeping records.
// wasm32 linear memory is little-endian, and the allocators store their
// free-list nodes directly inside the memory they manage.
//
// encoding/binary.LittleEndian is compiled to single loads/stores; there
// is no need for unsafe here.

// PutU32 writes a uint32 at off in little-endian order.
func PutU32(b []byte, off uint32, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a little-endian uint32 at off.
func ReadU32(b []byte, off uint32) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}
