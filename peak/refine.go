package peak

import "github.com/cwbudde/algo-nmr2d/grid"

// Refined is the result of a parabolic sub-pixel refinement.
type Refined struct {
	Height    float32
	Position  []float32
	Linewidth []float32
}

// Refine sharpens a seed position to sub-pixel accuracy using an
// independent 3-point parabolic fit per axis (spec.md §4.8), clipped to the
// fitting region [first,last) per axis. Grounded on
// original_source/.../peak_models.py:fit_parabolic_to_ndim's dispatcher
// (same 3-point central-cross approach, generalized here from its
// dimension-capped 1D/2D/3D/4D specializations to an N-D loop using grid's
// generic accessor).
func Refine(g *grid.Grid, seed []float32, first, last []int) Refined {
	n := len(seed)
	center := make([]int, n)
	for i, s := range seed {
		lo := first[i] + 1
		hi := last[i] - 2
		c := int(s + 0.5)
		if s < 0 {
			c = int(s - 0.5)
		}
		if c < lo {
			c = lo
		}
		if c > hi {
			c = hi
		}
		center[i] = c
	}

	height := g.At(center...)
	position := make([]float32, n)
	linewidth := make([]float32, n)
	for i, c := range center {
		position[i] = float32(c)
	}

	idx := append([]int(nil), center...)
	for axis := range center {
		idx[axis] = center[axis] - 1
		vl := g.At(idx...)
		idx[axis] = center[axis] + 1
		vr := g.At(idx...)
		idx[axis] = center[axis]
		vm := g.At(idx...)

		c := vm
		a := 0.5 * (vl + vr - 2*vm)
		b := (vr - vl) / 2

		if a == 0 {
			continue
		}
		xStar := -b / (2 * a)
		hStar := a*xStar*xStar + b*xStar + c

		position[axis] = float32(center[axis]) + xStar
		height = hStar

		k := b*b - 4*a*(c-hStar/2)
		if k <= 0 || a >= 0 {
			linewidth[axis] = 0
			continue
		}
		sq := sqrt32(k)
		xHalf := (sq - b) / (2 * a)
		linewidth[axis] = 2 * abs32(xStar-xHalf)
	}

	return Refined{Height: height, Position: position, Linewidth: linewidth}
}
