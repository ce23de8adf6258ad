//go:build linux || darwin || freebsd

package linear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmapGrowAndStability(t *testing.T) {
	m, err := NewMmap(4)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, uint32(0), m.Pages())
	require.Equal(t, uint32(0), m.Grow(1))

	b := m.Bytes()
	require.Len(t, b, PageSize)
	b[0] = 0xAB
	b[PageSize-1] = 0xCD

	// Growing must not move the committed bytes.
	require.Equal(t, uint32(1), m.Grow(2))
	b2 := m.Bytes()
	require.Len(t, b2, 3*PageSize)
	require.Equal(t, byte(0xAB), b2[0])
	require.Equal(t, byte(0xCD), b2[PageSize-1])
	require.Same(t, &b[0], &b2[0])
}

func TestMmapExhaustion(t *testing.T) {
	m, err := NewMmap(2)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, uint32(0), m.Grow(2))
	require.Equal(t, GrowFailed, m.Grow(1))
	require.Equal(t, uint32(2), m.Pages())
}

func TestMmapRejectsBadReservation(t *testing.T) {
	_, err := NewMmap(0)
	require.ErrorIs(t, err, ErrTooLarge)
}
