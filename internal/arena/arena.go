// Package arena provides a growable, block-based allocator indexed by
// integer ID. It backs the contour package's vertex storage: spec.md calls
// for vertices "allocated in bulk for cache locality, and discarded
// wholesale between level passes" without pointer arithmetic or aliasing
// concerns (see DESIGN.md, "Intrusive doubly-linked vertex lists" redesign
// note).
//
// The block-reuse pattern (grow by appending a fixed-size block rather than
// reallocating and copying the whole arena) is adapted from
// github.com/cwbudde/algo-dsp's dsp/buffer.Pool, which reuses a *Buffer's
// backing slice across Get/Put cycles for the same reason: avoid GC churn in
// a tight, repeatedly-invoked loop.
package arena

// Arena is a block-based allocator for values of type T. Allocation never
// reallocates existing blocks — it only appends a new block once the
// current one is full — so previously returned IDs (and any index derived
// from them) stay valid until Reset.
type Arena[T any] struct {
	blockSize int
	blocks    [][]T
	n         int
}

// New returns an Arena that grows by blockSize elements at a time.
func New[T any](blockSize int) *Arena[T] {
	if blockSize <= 0 {
		blockSize = 1
	}
	return &Arena[T]{blockSize: blockSize}
}

// Alloc appends a new, zero-valued element and returns its ID along with a
// pointer usable to populate it in place.
func (a *Arena[T]) Alloc() (id int, v *T) {
	id = a.n
	blockIdx, offset := id/a.blockSize, id%a.blockSize
	if blockIdx == len(a.blocks) {
		a.blocks = append(a.blocks, make([]T, a.blockSize))
	}
	block := a.blocks[blockIdx]
	var zero T
	block[offset] = zero
	a.n++
	return id, &block[offset]
}

// At returns a pointer to the element with the given ID. The ID must have
// been returned by Alloc since the last Reset.
func (a *Arena[T]) At(id int) *T {
	blockIdx, offset := id/a.blockSize, id%a.blockSize
	return &a.blocks[blockIdx][offset]
}

// Len returns the number of elements allocated since the last Reset.
func (a *Arena[T]) Len() int {
	return a.n
}

// Reset zeroes the allocation count so the next Alloc call reuses block 0
// again. Already-grown blocks are retained, matching spec.md's "blocks are
// reused" requirement between marching-squares level passes.
func (a *Arena[T]) Reset() {
	a.n = 0
}
