package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/heapkit/linear"
	"github.com/wasmkit/heapkit/linear/alloc"
)

func TestSnapshotRoundTrip(t *testing.T) {
	mem := linear.NewSlice(&linear.SliceConfig{MaxPages: 4})
	fl := alloc.NewFreeList(mem, nil)

	a, err := fl.Alloc(64, 8)
	require.NoError(t, err)
	b, err := fl.Alloc(64, 8)
	require.NoError(t, err)
	require.NoError(t, fl.Free(a, 64, 8))

	s := Take(fl)
	require.Equal(t, uint32(1), s.Pages)
	require.Len(t, s.Free, 2, "freed head block plus tail remainder")
	require.Equal(t, uint64(linear.PageSize), s.MemoryBytes)
	require.Equal(t, s.FreeBytes, uint64(s.Free[0].Size)+uint64(s.Free[1].Size))
	require.Greater(t, s.Fragmentation, 0.0)

	raw, err := s.JSON()
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, s.Free, back.Free)
	require.Equal(t, s.Stats.AllocCalls, back.Stats.AllocCalls)

	require.NoError(t, fl.Free(b, 64, 8))
	settled := Take(fl)
	require.Len(t, settled.Free, 1, "fully coalesced")
	require.Zero(t, settled.Fragmentation)
	require.NotEmpty(t, settled.String())
}
