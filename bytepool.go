package goshard

import "sync"

const (
	defaultBufSize = 4 * 1024        // Starting size 4KB
	bigBufSize     = 64 * 1024       // 64KB
	maxBufSize     = 1 * 1024 * 1024 // 1MB limit for returning to the pool
)

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, defaultBufSize)
		return &b
	},
}

var bigBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, bigBufSize)
		return &b
	},
}

// FromPool returns a byte shard of the given length whose backing array is
// drawn from an internal size-classed pool. The array goes back to its pool
// once the last shard referencing it is released, so a pooled buffer can be
// split among workers and still recycle exactly once. Converting such a shard
// with ToSlice hands the array to the caller instead.
func FromPool(size int) *Shard[byte] {
	pool := &bufPool
	if size >= bigBufSize {
		pool = &bigBufPool
	}
	bp := pool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < size {
		buf = make([]byte, size)
	}
	return wrap(buf[:size], recycleBytes)
}

// recycleBytes returns a detached backing array to its pool. Buffers that grew
// past maxBufSize are left to the GC instead of being kept alive in the pool.
func recycleBytes(store []byte) {
	if cap(store) > maxBufSize {
		return
	}
	store = store[:0]
	if cap(store) >= bigBufSize {
		bigBufPool.Put(&store)
	} else {
		bufPool.Put(&store)
	}
}
