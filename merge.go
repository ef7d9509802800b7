package goshard

import "slices"

// MergeInPlace merges left and right into one shard without moving a single
// element, in O(1). It succeeds only when both shards share one backing array
// and right starts exactly where left ends. On success both inputs are
// consumed and one of their two references is dropped; on refusal both stay
// live and the error's Reason tells why.
func MergeInPlace[T any](left, right *Shard[T]) (*Shard[T], error) {
	left.ensureLive()
	right.ensureLive()
	switch {
	case left.owner != right.owner:
		return nil, &CantMergeError{Reason: MergeDifferentAllocations}
	case left.start+left.len == right.start:
		merged := &Shard[T]{
			owner: left.owner,
			start: left.start,
			len:   left.len + right.len,
		}
		// The pair collapses into a single reference.
		right.owner.release()
		left.owner, right.owner = nil, nil
		left.len, right.len = 0, 0
		return merged, nil
	case right.start+right.len == left.start:
		return nil, &CantMergeError{Reason: MergeWrongOrder}
	default:
		return nil, &CantMergeError{Reason: MergeNotAdjacent}
	}
}

// MergeNoAlloc merges left and right without allocating. It starts with the
// O(1) in-place attempt and falls back to moving elements around within the
// backing array: adjacent-but-reversed shards are rotated back into order, and
// separated shards are compacted when they hold the only two references to the
// array. Refusals (different allocations, or other shards still alive) leave
// both inputs live.
func MergeNoAlloc[T any](left, right *Shard[T]) (*Shard[T], error) {
	merged, err := MergeInPlace(left, right)
	if err == nil {
		return merged, nil
	}

	reason := err.(*CantMergeError).Reason
	if reason == MergeDifferentAllocations {
		return nil, err
	}

	h := left.owner
	ls, ll := left.start, left.len
	rs, rl := right.start, right.len

	if reason == MergeWrongOrder {
		// right physically precedes left with no gap: rotate the pair back
		// into element order.
		rotateLeft(h.store[rs:ls+ll], rl)
		return mergeConsume(left, right, rs)
	}

	if h.refs() != 2 {
		return nil, &CantMergeError{Reason: MergeOtherShardsLeft}
	}

	// These two shards are the only references, so the holes around them are
	// free space and the pair can be compacted inside the allocation.
	var ns int
	switch {
	case rs < ls && ll < rl:
		// right is lower and longer: pull left down next to it, then rotate.
		copy(h.store[rs+rl:rs+rl+ll], h.store[ls:ls+ll])
		rotateLeft(h.store[rs:rs+rl+ll], rl)
		ns = rs
	case rs < ls:
		// right is lower and shorter: pull it up to just before left.
		copy(h.store[ls-rl:ls], h.store[rs:rs+rl])
		rotateLeft(h.store[ls-rl:ls+ll], rl)
		ns = ls - rl
	default:
		// left is lower: scoot right down to its end.
		copy(h.store[ls+ll:ls+ll+rl], h.store[rs:rs+rl])
		ns = ls
	}

	nl := ll + rl
	clearOutside(h, ls, ll, ns, nl)
	clearOutside(h, rs, rl, ns, nl)
	return mergeConsume(left, right, ns)
}

// Merge merges left and right into one shard, preferring the in-place and
// no-allocation paths and falling back to copying both ranges into a fresh
// backing array. It never fails and always consumes both inputs.
func Merge[T any](left, right *Shard[T]) *Shard[T] {
	merged, err := MergeNoAlloc(left, right)
	if err == nil {
		return merged
	}
	out := make([]T, 0, left.Len()+right.Len())
	out = append(out, left.Slice()...)
	out = append(out, right.Slice()...)
	left.Release()
	right.Release()
	return Wrap(out)
}

// mergeConsume builds the merged shard over [ns, ns+left.len+right.len) and
// invalidates the inputs, dropping one of their two references.
func mergeConsume[T any](left, right *Shard[T], ns int) (*Shard[T], error) {
	merged := &Shard[T]{
		owner: left.owner,
		start: ns,
		len:   left.len + right.len,
	}
	right.owner.release()
	left.owner, right.owner = nil, nil
	left.len, right.len = 0, 0
	return merged, nil
}

// rotateLeft rotates s left by n using three reversals.
func rotateLeft[T any](s []T, n int) {
	slices.Reverse(s[:n])
	slices.Reverse(s[n:])
	slices.Reverse(s)
}

// clearOutside zeroes the slots of [start, start+n) that fall outside the
// merged range [keepStart, keepStart+keepLen), so stale copies left behind by
// compaction do not keep elements reachable.
func clearOutside[T any](h *handle[T], start, n, keepStart, keepLen int) {
	var zero T
	for i := start; i < start+n; i++ {
		if i < keepStart || i >= keepStart+keepLen {
			h.store[i] = zero
		}
	}
}
