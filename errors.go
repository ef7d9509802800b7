package goshard

import "fmt"

// MergeReason classifies why a pair of shards could not be merged by
// MergeInPlace or MergeNoAlloc.
type MergeReason uint8

const (
	// MergeDifferentAllocations means the shards come from different Wraps.
	MergeDifferentAllocations MergeReason = iota
	// MergeNotAdjacent means the shards share a backing array but other
	// ranges or holes lie between them.
	MergeNotAdjacent
	// MergeWrongOrder means the shards are adjacent but right sits at a lower
	// offset than left, so merging would reorder elements.
	MergeWrongOrder
	// MergeOtherShardsLeft means in-place compaction is blocked by other live
	// shards still referencing the backing array.
	MergeOtherShardsLeft
)

// String returns a human-readable description of the merge refusal.
func (r MergeReason) String() string {
	switch r {
	case MergeDifferentAllocations:
		return "different allocations"
	case MergeNotAdjacent:
		return "not adjacent"
	case MergeWrongOrder:
		return "wrong order"
	case MergeOtherShardsLeft:
		return "other shards left"
	default:
		return "unknown"
	}
}

// CantMergeError reports a refused merge. Both input shards remain live and
// usable after the refusal.
type CantMergeError struct {
	Reason MergeReason
}

// Error returns the error message for CantMergeError.
func (e *CantMergeError) Error() string {
	return fmt.Sprintf("can't merge shards: %s", e.Reason)
}
