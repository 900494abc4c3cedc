package contour

import "github.com/cwbudde/algo-nmr2d/grid"

// List extracts contour polylines from g at every level, returning one
// slice of Polyline per level in the same order as levels (spec.md §6,
// "List" interface). g must be 2-D; ErrInvalidGrid is returned otherwise.
func List(g *grid.Grid, levels []float32) ([][]Polyline, error) {
	if g.NDims() != 2 {
		return nil, ErrInvalidGrid
	}
	dir, err := ValidateLevels(levels)
	if err != nil {
		return nil, err
	}

	rows, cols := g.Rows(), g.Cols()
	trk := newTracker(rows, cols)
	shared := newVertexArena()

	out := make([][]Polyline, len(levels))
	for i, lvl := range levels {
		p := newPass(g, lvl, dir, trk)
		shared.Reset()
		p.verts = shared
		verts := p.run()
		out[i] = chainPolylines(verts)
		trk.advance(cols)
	}
	return out, nil
}
