// Package goshard splits slices into independently owned shards in O(1) time.
//
// The standard library can split a slice into two sub-slices, but those views
// share one owner: neither half can be drained, recycled, or handed to another
// goroutine as a value with its own lifetime. Copying the tail into a second
// slice gives real ownership but costs O(n) time and a second allocation.
//
// A Shard closes that gap. Wrapping a slice moves its backing array behind a
// reference-counted handle, and splitting a shard only narrows offsets: no
// element is copied, no memory is allocated. Each shard owns the elements of
// its own range and the backing array is released exactly once, when the last
// shard referencing it goes away.
package goshard

// Wrap takes ownership of src's backing array and returns one shard spanning
// all of it. O(1): the array is moved, not copied. src must not be used by the
// caller afterwards.
func Wrap[T any](src []T) *Shard[T] {
	return wrap(src, nil)
}

// Split wraps src and splits it at index at, returning the two halves as
// shards over the same backing array. Panics if at is not in [0, len(src)].
func Split[T any](src []T, at int) (left, right *Shard[T]) {
	return Wrap(src).SplitAt(at)
}

// Equal reports whether two shards hold equal elements in the same order.
func Equal[T comparable](a, b *Shard[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	av, bv := a.Slice(), b.Slice()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}
