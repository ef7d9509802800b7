package goshard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleCounting(t *testing.T) {
	t.Parallel()

	h := newHandle([]int{1, 2, 3}, nil)
	require.EqualValues(t, 1, h.refs())

	h.retain()
	h.retain()
	require.EqualValues(t, 3, h.refs())

	h.release()
	h.release()
	require.NotNil(t, h.store)
	h.release()
	require.Nil(t, h.store)
}

func TestHandleFreeHookRunsOnce(t *testing.T) {
	t.Parallel()

	var got [][]int
	h := newHandle(make([]int, 2, 5), func(store []int) { got = append(got, store) })
	h.retain()

	h.release()
	require.Empty(t, got)
	h.release()
	require.Len(t, got, 1)
	// the hook receives the full-capacity backing array
	require.Equal(t, 5, cap(got[0]))
}

func TestHandleWindowIsClamped(t *testing.T) {
	t.Parallel()

	h := newHandle(make([]int, 8), nil)
	w := h.slice(2, 3)
	require.Equal(t, 3, len(w))
	require.Equal(t, 3, cap(w))
}

func TestHandleKeepsCapacity(t *testing.T) {
	t.Parallel()

	h := newHandle(make([]byte, 3, 32), nil)
	require.Equal(t, 32, h.capacity())
}
