package contour

import "github.com/cwbudde/algo-nmr2d/grid"

// edge names a cell's four sides in the CCW cycle Bottom -> Right -> Top ->
// Left -> Bottom, walking the cell boundary with x increasing rightward and
// y increasing upward (spec.md §3: "origin at the lower-left corner of the
// (0,0) cell").
type edge int

const (
	edgeBottom edge = iota // old0 (x=c) -- old1 (x=c+1), at y=r
	edgeRight              // old1 -- new1, at x=c+1
	edgeTop                // new1 -- new0, at y=r+1
	edgeLeft               // new0 -- old0, at x=c
)

// pass holds the per-level-pass scratch state shared by every cell visited
// during one marching-squares sweep: the vertex arena, and the edge-vertex
// caches that let adjacent cells share the vertex on their common edge
// instead of allocating a duplicate.
type pass struct {
	g   *grid.Grid
	lvl float32
	dir Direction

	verts *vertexArena

	// horiz[c] is the vertex id on the horizontal edge at the current row
	// boundary between columns c and c+1, or noVertex. It is populated
	// while processing a row-pair's Top edges and consumed as Bottom edges
	// of the next row-pair.
	horiz []int

	trk *tracker
}

func newPass(g *grid.Grid, lvl float32, dir Direction, trk *tracker) *pass {
	cols := g.Cols()
	horiz := make([]int, cols-1)
	for i := range horiz {
		horiz[i] = noVertex
	}
	return &pass{g: g, lvl: lvl, dir: dir, verts: newVertexArena(), horiz: horiz, trk: trk}
}

// above reports whether a corner value is strictly above the pass's level
// (spec.md §3: "above" requires strict >, a deliberate departure from the
// >= used by comparable marching-squares implementations, so that a sample
// exactly on the level is never misclassified as containing it).
func above(v, level float32) bool {
	return v > level
}

// run scans every eligible row in trk.old's region and returns the
// completed vertex arena for this level.
func (p *pass) run() *vertexArena {
	rows := p.g.Rows()
	cols := p.g.Cols()

	p.trk.old.forEachRange(cols, func(row, start, end int) {
		if row >= rows-1 {
			return
		}
		p.scanRow(row, start, end)
	})
	return p.verts
}

// scanRow sweeps cell columns [start,end) anchored at old row r, reusing
// the previous cell's Right-edge vertex as this cell's Left edge, and
// tracking contiguous runs of non-trivial cells to feed the active-region
// tracker for both rows this row-pair touches.
func (p *pass) scanRow(r, start, end int) {
	leftVert := noVertex
	runOpenOld, runOpenNew := false, false

	closeRuns := func(atCol int) {
		if runOpenOld {
			p.trk.updateNew(atCol, r, kindEndRange)
			runOpenOld = false
		}
		if runOpenNew {
			p.trk.updateNew(atCol, r+1, kindEndRange)
			runOpenNew = false
		}
	}

	if start == 0 {
		p.trk.updateNew(0, r, kindNeither)
		p.trk.updateNew(0, r+1, kindNeither)
	}

	leftVert = noVertex
	for c := start; c < end; c++ {
		fired := p.cell(r, c, &leftVert)

		if fired {
			if !runOpenOld {
				p.trk.updateNew(c, r, kindStartRange)
				runOpenOld = true
			}
			if !runOpenNew {
				p.trk.updateNew(c, r+1, kindStartRange)
				runOpenNew = true
			}
		} else {
			closeRuns(c)
			leftVert = noVertex
		}
	}
	closeRuns(end)
}

// cell classifies and, if non-trivial, emits vertices for the 2x2 cell
// anchored at (old row r, old col c). leftVert carries the previous cell's
// Right-edge vertex in; it is updated to this cell's Right-edge vertex (or
// reset) on return. Reports whether the cell produced any vertices.
func (p *pass) cell(r, c int, leftVert *int) bool {
	old0 := p.g.At2D(r, c)
	old1 := p.g.At2D(r, c+1)
	new0 := p.g.At2D(r+1, c)
	new1 := p.g.At2D(r+1, c+1)

	b0 := above(old0, p.lvl)
	b1 := above(old1, p.lvl)
	b2 := above(new0, p.lvl)
	b3 := above(new1, p.lvl)

	code := 0
	if b0 {
		code |= 1
	}
	if b1 {
		code |= 2
	}
	if b2 {
		code |= 4
	}
	if b3 {
		code |= 8
	}

	if code == 0 || code == 15 {
		*leftVert = noVertex
		return false
	}

	// memo ensures each of the cell's up to 4 edges resolves to exactly one
	// vertex id no matter how many times get is called for it: callers
	// (caseDirection/emitSaddle linking, plus this cell's own cross-cell
	// cache population below) must all see the same vertex.
	var memo [4]int
	for i := range memo {
		memo[i] = noVertex
	}
	get := func(e edge) int {
		if memo[e] != noVertex {
			return memo[e]
		}
		var id int
		switch e {
		case edgeLeft:
			if *leftVert != noVertex {
				id = *leftVert
			} else {
				id = p.interp(c, r, c, r+1, old0, new0)
			}
		case edgeRight:
			id = p.interp(c+1, r, c+1, r+1, old1, new1)
		case edgeBottom:
			if v := p.horiz[c]; v != noVertex {
				id = v
			} else {
				id = p.interp(c, r, c+1, r, old0, old1)
			}
		case edgeTop:
			id = p.interp(c, r+1, c+1, r+1, new0, new1)
		default:
			panic("contour: unreachable edge")
		}
		memo[e] = id
		return id
	}

	if isSaddle(code) {
		center := (old0 + old1 + new0 + new1) / 4
		p.emitSaddle(code, center > p.lvl, get)
	} else {
		from, to := caseDirection(code)
		p.link2(get(from), get(to))
	}

	// Cache this cell's Right and Top edges for reuse by its neighbors,
	// but only when that edge is a genuine crossing: get() would otherwise
	// "interpolate" a position on an edge whose endpoints are on the same
	// side of the level.
	if b1 != b3 {
		*leftVert = get(edgeRight)
	} else {
		*leftVert = noVertex
	}
	if b2 != b3 {
		p.horiz[c] = get(edgeTop)
	} else {
		p.horiz[c] = noVertex
	}

	return true
}

// interp returns the cached or freshly allocated vertex at the crossing of
// the level between grid points (x0,y0) and (x1,y1), with values v0,v1.
func (p *pass) interp(x0, y0, x1, y1 int, v0, v1 float32) int {
	t := (p.lvl - v0) / (v1 - v0)
	x := float32(x0) + t*float32(x1-x0)
	y := float32(y0) + t*float32(y1-y0)
	return allocVertex(p.verts, x, y)
}

// link2 links from->to (or to->from for a decreasing sequence, which
// reverses every pairing so above-level lies on the contour's left).
func (p *pass) link2(from, to int) {
	if p.dir == Decreasing {
		from, to = to, from
	}
	link(p.verts, from, to)
}

// emitSaddle resolves cases 6 and 9 using the cell-center approximation
// (spec.md §4.2): the two corners on the minority side of the center-level
// comparison are each isolated as their own single-corner bump, using the
// same edge pairing a lone corner of that polarity would use elsewhere.
func (p *pass) emitSaddle(code int, isolateBelow bool, get func(edge) int) {
	switch code {
	case 6: // old1, new0 above; old0, new1 below
		if isolateBelow {
			p.link2(get(edgeBottom), get(edgeLeft)) // old0 alone (below)
			p.link2(get(edgeTop), get(edgeRight))    // new1 alone (below)
		} else {
			p.link2(get(edgeBottom), get(edgeRight)) // old1 alone (above)
			p.link2(get(edgeTop), get(edgeLeft))      // new0 alone (above)
		}
	case 9: // old0, new1 above; old1, new0 below
		if isolateBelow {
			p.link2(get(edgeRight), get(edgeBottom)) // old1 alone (below)
			p.link2(get(edgeLeft), get(edgeTop))      // new0 alone (below)
		} else {
			p.link2(get(edgeLeft), get(edgeBottom)) // old0 alone (above)
			p.link2(get(edgeRight), get(edgeTop))    // new1 alone (above)
		}
	}
}

// isSaddle reports whether code is one of the two diagonal-saddle cases
// (spec.md §4.2, "cases 6 and 9 are geometric saddles").
func isSaddle(code int) bool {
	return code == 6 || code == 9
}

// caseDirection returns the (from, to) edge pairing for every non-saddle,
// non-trivial case, derived so that walking from->to keeps the above-level
// side on the contour's right hand (see DESIGN.md for the derivation).
func caseDirection(code int) (edge, edge) {
	switch code {
	// Single corner above.
	case 1: // old0
		return edgeLeft, edgeBottom
	case 2: // old1
		return edgeBottom, edgeRight
	case 4: // new0
		return edgeTop, edgeLeft
	case 8: // new1
		return edgeRight, edgeTop

	// Single corner below (three above): reverse of the above-alone case
	// touching the same corner.
	case 14: // old0 below
		return edgeBottom, edgeLeft
	case 13: // old1 below
		return edgeRight, edgeBottom
	case 11: // new0 below
		return edgeLeft, edgeTop
	case 7: // new1 below
		return edgeTop, edgeRight

	// Two adjacent corners: old row vs new row split.
	case 3: // old row above
		return edgeLeft, edgeRight
	case 12: // new row above
		return edgeRight, edgeLeft

	// Two adjacent corners: left column vs right column split.
	case 5: // left column above
		return edgeTop, edgeBottom
	case 10: // right column above
		return edgeBottom, edgeTop
	}
	panic("contour: caseDirection called on trivial or saddle code")
}
