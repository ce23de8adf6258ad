package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignNode(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{65535, 65536},
		{65536, 65536},
	}
	for _, c := range cases {
		require.Equal(t, c.want, AlignNode(c.in), "AlignNode(%d)", c.in)
	}
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint32(0), AlignUp(0, 8))
	require.Equal(t, uint32(64), AlignUp(1, 64))
	require.Equal(t, uint32(64), AlignUp(64, 64))
	require.Equal(t, uint32(128), AlignUp(65, 64))
	require.Equal(t, uint32(PageSize), AlignUp(1, PageSize))
}

func TestPagesFor(t *testing.T) {
	require.Equal(t, uint32(0), PagesFor(0))
	require.Equal(t, uint32(1), PagesFor(1))
	require.Equal(t, uint32(1), PagesFor(PageSize))
	require.Equal(t, uint32(2), PagesFor(PageSize+1))
	// Near the top of the u32 range the intermediate sum must not wrap.
	require.Equal(t, uint32(65536), PagesFor(^uint32(0)))
}

func TestIsPow2(t *testing.T) {
	for _, v := range []uint32{1, 2, 4, 8, 1 << 16, 1 << 31} {
		require.True(t, IsPow2(v), "IsPow2(%d)", v)
	}
	for _, v := range []uint32{0, 3, 6, 12, 65535} {
		require.False(t, IsPow2(v), "IsPow2(%d)", v)
	}
}
