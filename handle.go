package goshard

import (
	"fmt"
	"sync/atomic"

	"github.com/ugparu/goshard/utils/logger"
)

// handle owns the backing array of one wrapped slice. It counts the shards
// referencing the array and detaches it exactly once, on the last release.
// The handle never inspects element contents: which slots are live is decided
// entirely by the shards, the handle only keeps the memory reachable.
type handle[T any] struct {
	store []T
	count atomic.Int32
	free  func([]T)
}

// newHandle wraps store with a count of one. The optional free hook runs once,
// after the storage has been detached on the final release.
func newHandle[T any](store []T, free func([]T)) *handle[T] {
	h := &handle[T]{
		store: store[:cap(store)],
		free:  free,
	}
	h.count.Store(1)
	logger.Tracef(h, "wrapped backing array, cap=%d", cap(store))
	return h
}

func (h *handle[T]) capacity() int {
	return cap(h.store)
}

// slice returns the [start, start+n) window of the backing array. The result
// is capacity-clamped so appends through it cannot spill into sibling ranges.
func (h *handle[T]) slice(start, n int) []T {
	return h.store[start : start+n : start+n]
}

// retain adds one reference. Called whenever a new shard starts sharing h.
func (h *handle[T]) retain() {
	h.count.Add(1)
}

// release drops one reference. On the 1->0 transition the backing array is
// detached and the free hook runs; nothing is freed while a reference remains.
func (h *handle[T]) release() {
	if h.count.Add(-1) != 0 {
		return
	}
	store := h.store
	h.store = nil
	logger.Tracef(h, "released backing array, cap=%d", cap(store))
	if h.free != nil {
		h.free(store)
	}
}

// refs returns the current reference count. Used by the sole-owner fast paths.
func (h *handle[T]) refs() int32 {
	return h.count.Load()
}

func (h *handle[T]) String() string {
	return fmt.Sprintf("handle(cap=%d,refs=%d)", cap(h.store), h.count.Load())
}
