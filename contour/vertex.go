package contour

import "github.com/cwbudde/algo-nmr2d/internal/arena"

// vertexBlockSize is the arena's growth increment (spec.md §5: "grows by
// fixed-size blocks rather than doubling, since contour vertex counts are
// small and bounded per level").
const vertexBlockSize = 50

// noVertex is the Option<VertexID>::None sentinel: an absent prev/next
// link (spec.md §9, "intrusive doubly-linked vertex lists" redesign note —
// replaced here by an arena index instead of a raw pointer).
const noVertex = -1

// vertex is one contour crossing point, linked into a maximal chain via
// prev/next arena indices.
type vertex struct {
	x, y float32
	prev int
	next int
}

// vertexArena allocates vertex records for a single level's marching-squares
// pass. It is reset (not reallocated) between level passes so its backing
// blocks are reused across the whole contour run (spec.md §5 "Resource
// sizing invariants").
type vertexArena = arena.Arena[vertex]

func newVertexArena() *vertexArena {
	a := arena.New[vertex](vertexBlockSize)
	return a
}

// allocVertex appends a fresh, unlinked vertex and returns its id.
func allocVertex(a *vertexArena, x, y float32) int {
	id, v := a.Alloc()
	v.x, v.y = x, y
	v.prev, v.next = noVertex, noVertex
	return id
}

// link sets a.next = to and b.prev = from, i.e. directs the chain to flow
// from -> to.
func link(a *vertexArena, from, to int) {
	a.At(from).next = to
	a.At(to).prev = from
}
