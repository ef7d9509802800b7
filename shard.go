package goshard

import "fmt"

// Shard is an owned view over a contiguous range of a shared backing array.
// It behaves like a slice over its own range: it can be indexed, mutated,
// split further, drained element by element, and converted back into a plain
// slice. Shards created from the same Wrap never overlap, so each shard is the
// sole owner of the elements in its range while only sharing the memory.
//
// A Shard is not safe for concurrent use; disjoint shards may be used from
// different goroutines independently.
type Shard[T any] struct {
	owner *handle[T]
	start int
	len   int
}

func wrap[T any](src []T, free func([]T)) *Shard[T] {
	return &Shard[T]{
		owner: newHandle(src, free),
		start: 0,
		len:   len(src),
	}
}

func (s *Shard[T]) ensureLive() {
	if s.owner == nil {
		panic("goshard: use of released shard")
	}
}

// window is the shard's own range of the backing array.
func (s *Shard[T]) window() []T {
	s.ensureLive()
	return s.owner.slice(s.start, s.len)
}

// Len returns the number of elements remaining in the shard.
func (s *Shard[T]) Len() int {
	return s.len
}

// Empty reports whether the shard has no elements left.
func (s *Shard[T]) Empty() bool {
	return s.len == 0
}

// SplitAt splits the shard at index at, in O(1): no element moves, only
// offsets and the reference count change. The left half is the receiver
// narrowed down to at elements, the right half is a new shard over the
// remainder of the same backing array. After a partial drain, at is relative
// to the remaining range. Panics if at is not in [0, Len()].
//
// The receiver is consumed: keep using it only through the returned left.
func (s *Shard[T]) SplitAt(at int) (left, right *Shard[T]) {
	s.ensureLive()
	if at < 0 || at > s.len {
		panic(fmt.Sprintf("goshard: split index %d out of range [0:%d]", at, s.len))
	}
	s.owner.retain()
	right = &Shard[T]{
		owner: s.owner,
		start: s.start + at,
		len:   s.len - at,
	}
	s.len = at
	return s, right
}

// At returns the element at index i. Panics if i is outside the shard's own
// range, regardless of how large the shared backing array is.
func (s *Shard[T]) At(i int) T {
	return s.window()[i]
}

// Set stores v at index i. Same bounds rules as At.
func (s *Shard[T]) Set(i int, v T) {
	s.window()[i] = v
}

// Slice returns the shard's range as a mutable slice. The view is capacity
// clamped, so it can never reach a sibling shard's elements. It stays valid
// only until the shard is split, drained, released, or converted.
func (s *Shard[T]) Slice() []T {
	return s.window()
}

// Range returns the [i, j) sub-range of the shard as a mutable slice,
// bounds-checked against the shard's own length.
func (s *Shard[T]) Range(i, j int) []T {
	return s.window()[i:j:j]
}

// Next removes and returns the front element, transferring its ownership to
// the caller. The vacated slot is cleared and never touched again. Once the
// shard is exhausted Next keeps returning false.
func (s *Shard[T]) Next() (T, bool) {
	s.ensureLive()
	var zero T
	if s.len == 0 {
		return zero, false
	}
	w := s.owner.slice(s.start, 1)
	v := w[0]
	w[0] = zero
	s.start++
	s.len--
	return v, true
}

// NextBack removes and returns the last element, transferring its ownership to
// the caller. The vacated slot is cleared and never touched again. Draining
// from both ends meets in the middle; once the shard is exhausted NextBack
// keeps returning false.
func (s *Shard[T]) NextBack() (T, bool) {
	s.ensureLive()
	var zero T
	if s.len == 0 {
		return zero, false
	}
	w := s.owner.slice(s.start+s.len-1, 1)
	v := w[0]
	w[0] = zero
	s.len--
	return v, true
}

// Clone copies the shard's remaining range into a fresh allocation with its
// own handle. O(n), but draining or releasing the clone never affects the
// source, and the source handle's reference count is untouched.
func (s *Shard[T]) Clone() *Shard[T] {
	dst := make([]T, s.len)
	copy(dst, s.window())
	return Wrap(dst)
}

// ToSlice converts the shard back into a plain slice, consuming it.
//
// When the shard is the last reference to its backing array the array is
// reused in place: O(1) if the shard already starts at offset zero, one
// in-place compaction otherwise, never an allocation. When other shards still
// alias the array, the remaining range is copied into a right-sized slice and
// this shard's reference is released.
func (s *Shard[T]) ToSlice() []T {
	s.ensureLive()
	h := s.owner
	if h.refs() == 1 {
		if s.start != 0 {
			copy(h.store, h.store[s.start:s.start+s.len])
			clear(h.store[max(s.len, s.start) : s.start+s.len])
		}
		out := h.store[:s.len]
		// Ownership of the array moves to the caller, so the handle must
		// neither clear slots nor run its free hook.
		h.store = nil
		s.owner = nil
		s.len = 0
		return out
	}
	out := make([]T, s.len)
	copy(out, h.slice(s.start, s.len))
	s.Release()
	return out
}

// Release drops the shard: every remaining slot in its range is cleared, then
// the shard's reference on the backing array is dropped. The backing array is
// freed when the last referencing shard releases. Safe to defer; releasing a
// shard already consumed by ToSlice or a merge is a no-op.
func (s *Shard[T]) Release() {
	if s.owner == nil {
		return
	}
	clear(s.owner.slice(s.start, s.len))
	s.owner.release()
	s.owner = nil
	s.len = 0
}

func (s *Shard[T]) String() string {
	if s.owner == nil {
		return "Shard(released)"
	}
	return fmt.Sprintf("%v", s.window())
}
