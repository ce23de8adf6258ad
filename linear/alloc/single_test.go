package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/heapkit/linear"
)

func TestAssumeSingleThreadedForwards(t *testing.T) {
	mem := linear.NewSlice(&linear.SliceConfig{InitialPages: 1, MaxPages: 4})
	fl := NewFreeList(mem, nil)

	st, err := AssumeSingleThreaded(fl, UnsafeAssumeSingleThreaded())
	require.NoError(t, err)

	p, err := st.Alloc(16, 8)
	require.NoError(t, err)
	require.NoError(t, st.Free(p, 16, 8))

	q, err := st.Alloc(16, 8)
	require.NoError(t, err)
	require.Equal(t, p, q, "wrapper adds nothing between caller and inner allocator")

	r, err := st.Realloc(q, 16, 32, 8)
	require.NoError(t, err)
	require.NoError(t, st.Free(r, 32, 8))
	checkFreeList(t, fl)
}

func TestAssumeSingleThreadedRequiresAcknowledgement(t *testing.T) {
	var zero SingleThreadToken
	_, err := AssumeSingleThreaded(NewBump(linear.NewSlice(nil)), zero)
	require.ErrorIs(t, err, ErrNotAcknowledged)
}

func TestInstallRequiresShared(t *testing.T) {
	// The stateful allocators do not satisfy Shared; only wrapped forms
	// reach Install. This is a compile-time property:
	//
	//	alloc.Install(alloc.NewFreeList(mem, nil)) // does not compile
	//	alloc.Install(alloc.NewBump(mem))          // does not compile
	var (
		_ Shared = FailAllocator{}
		_ Shared = (*PageAllocator)(nil)
		_ Shared = (*SingleThreaded)(nil)
		_ Shared = (*LockedAllocator)(nil)
	)

	prev := Default()
	defer Install(prev)

	mem := linear.NewSlice(&linear.SliceConfig{MaxPages: 4})
	Install(NewLocked(NewFreeList(mem, nil)))

	p, err := Default().Alloc(16, 8)
	require.NoError(t, err)
	require.NoError(t, Default().Free(p, 16, 8))
}

func TestDefaultFailsWithFailAllocatorInstalled(t *testing.T) {
	prev := Default()
	defer Install(prev)

	Install(FailAllocator{})
	_, err := Default().Alloc(1, 1)
	require.ErrorIs(t, err, ErrNoMemory)
}
