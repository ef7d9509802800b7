package goshard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPool(t *testing.T) {
	t.Parallel()

	buf := FromPool(100)
	require.Equal(t, 100, buf.Len())
	require.GreaterOrEqual(t, buf.owner.capacity(), 100)

	copy(buf.Slice(), make([]byte, 100))
	buf.Release()
}

func TestFromPoolBigClass(t *testing.T) {
	t.Parallel()

	buf := FromPool(bigBufSize)
	require.Equal(t, bigBufSize, buf.Len())
	buf.Release()
}

func TestFromPoolRecyclesOnceAcrossShards(t *testing.T) {
	t.Parallel()

	buf := FromPool(64)
	h := buf.owner

	left, right := buf.SplitAt(32)
	mid, tail := right.SplitAt(16)
	require.EqualValues(t, 3, h.refs())

	left.Release()
	mid.Release()
	require.NotNil(t, h.store)
	tail.Release()
	require.Nil(t, h.store)
	require.EqualValues(t, 0, h.refs())
}

func TestFromPoolToSliceTransfersOwnership(t *testing.T) {
	t.Parallel()

	buf := FromPool(16)
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, byte(i))
	}

	out := buf.ToSlice()
	require.Len(t, out, 16)
	require.Equal(t, byte(7), out[7])
	// consumed: the array now belongs to the caller, not the pool
	require.Panics(t, func() { buf.At(0) })
}

func TestRecycleSkipsOversizeBuffers(t *testing.T) {
	t.Parallel()

	buf := FromPool(maxBufSize + 1)
	require.Equal(t, maxBufSize+1, buf.Len())
	buf.Release()
}
