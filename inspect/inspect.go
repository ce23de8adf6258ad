// Package inspect captures point-in-time snapshots of a free-list
// allocator for offline analysis. Snapshots serialize to JSON so
// fragmentation traces can be collected from a workload and diffed or
// graphed by external tooling.
package inspect

import (
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wasmkit/heapkit/linear"
	"github.com/wasmkit/heapkit/linear/alloc"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is the state of a free-list allocator at one instant.
type Snapshot struct {
	Pages       uint32       `json:"pages"`
	MemoryBytes uint64       `json:"memoryBytes"`
	Free        []alloc.Span `json:"free"`
	FreeBytes   uint64       `json:"freeBytes"`
	LargestFree uint32       `json:"largestFree"`

	// Fragmentation is 1 - largest/total over the free spans; 0 when
	// the free storage is one block (or empty).
	Fragmentation float64 `json:"fragmentation"`

	Stats alloc.Stats `json:"stats"`
}

// Take snapshots fl. The allocator must be quiescent (or externally
// locked) for the duration of the call.
func Take(fl *alloc.FreeListAllocator) Snapshot {
	spans := fl.Spans()
	s := Snapshot{
		Pages:       fl.Memory().Pages(),
		MemoryBytes: uint64(fl.Memory().Pages()) * linear.PageSize,
		Free:        spans,
		Stats:       fl.Stats(),
	}
	for _, sp := range spans {
		s.FreeBytes += uint64(sp.Size)
		if sp.Size > s.LargestFree {
			s.LargestFree = sp.Size
		}
	}
	if s.FreeBytes > 0 {
		s.Fragmentation = 1 - float64(s.LargestFree)/float64(s.FreeBytes)
	}
	return s
}

// JSON renders the snapshot as a JSON document.
func (s Snapshot) JSON() ([]byte, error) {
	return json.Marshal(s)
}

var printer = message.NewPrinter(language.English)

// String renders a one-line human summary.
func (s Snapshot) String() string {
	return printer.Sprintf("%d pages (%d B), %d free spans, %d B free (largest %d B), fragmentation %.2f",
		s.Pages, s.MemoryBytes, len(s.Free), s.FreeBytes, s.LargestFree, s.Fragmentation)
}
