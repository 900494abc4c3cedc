package contour

import "github.com/cwbudde/algo-nmr2d/grid"

// Flatten collapses a stack of same-shaped arrays ("planes") into a single
// envelope array, so a caller can contour the worst case across an
// experiment series with one pass (spec.md §4.6 "Multi-array flattener").
// For each element, the envelope is max(cellsMax, 0) + min(cellsMin, 0),
// where cellsMax and cellsMin are that element's maximum and minimum across
// all planes — the most positive value any plane reaches there plus the
// most negative one, rather than a plain elementwise max or sum.
//
// All planes must share an identical shape; Flatten returns
// ErrInconsistentArrayShapes otherwise.
func Flatten(planes []*grid.Grid) (*grid.Grid, error) {
	if len(planes) == 0 {
		return nil, ErrInconsistentArrayShapes
	}
	shape := planes[0].Shape()
	n := grid.Size(shape)
	for _, p := range planes[1:] {
		if !sameShape(p.Shape(), shape) {
			return nil, ErrInconsistentArrayShapes
		}
	}

	cellsMax := append([]float32(nil), planes[0].Data()...)
	cellsMin := append([]float32(nil), planes[0].Data()...)
	for _, p := range planes[1:] {
		d := p.Data()
		for i, v := range d {
			if v > cellsMax[i] {
				cellsMax[i] = v
			}
			if v < cellsMin[i] {
				cellsMin[i] = v
			}
		}
	}

	out := make([]float32, n)
	for i := range out {
		hi := cellsMax[i]
		if hi < 0 {
			hi = 0
		}
		lo := cellsMin[i]
		if lo > 0 {
			lo = 0
		}
		out[i] = hi + lo
	}

	return grid.New(append([]int(nil), shape...), out), nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
