package alloc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats holds allocator counters. They exist for tests and for the
// inspect package; the allocators themselves never read them.
type Stats struct {
	AllocCalls   int `json:"allocCalls"`
	FreeCalls    int `json:"freeCalls"`
	ReallocCalls int `json:"reallocCalls"`

	GrowCalls int    `json:"growCalls"`
	GrowPages uint64 `json:"growPages"`

	// Free-list only.
	Splits           int `json:"splits"`
	CoalesceForward  int `json:"coalesceForward"`
	CoalesceBackward int `json:"coalesceBackward"`

	BytesAllocated uint64 `json:"bytesAllocated"`
	BytesFreed     uint64 `json:"bytesFreed"`
}

// printer renders counters with digit grouping, so multi-megabyte
// totals stay readable in dumps.
var printer = message.NewPrinter(language.English)

// String renders the counters on one line.
func (s Stats) String() string {
	return printer.Sprintf(
		"alloc=%d free=%d realloc=%d grow=%d (%d pages) splits=%d coalesce=%d/%d allocated=%d B freed=%d B",
		s.AllocCalls, s.FreeCalls, s.ReallocCalls,
		s.GrowCalls, s.GrowPages,
		s.Splits, s.CoalesceBackward, s.CoalesceForward,
		s.BytesAllocated, s.BytesFreed,
	)
}
