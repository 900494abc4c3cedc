package fit

import "github.com/cwbudde/algo-nmr2d/grid"

// FitRegion fits shape to the grid region [first,last) (per-axis integer
// bounds, last exclusive), seeded from positions P (spec.md §4.11). Height
// and linewidth seeds are derived from the grid directly; noise <= 0 means
// "estimate automatically".
func FitRegion(g *grid.Grid, shape Shape, first, last []int, positions [][]float64, noise float64) (Result, error) {
	samples := flattenRegion(g, first, last)
	seed := make([]PeakParams, len(positions))
	for k, p := range positions {
		seed[k] = seedPeak(g, p)
	}
	return Run(shape, samples, first, last, seed, noise)
}

// flattenRegion enumerates every grid point in [first,last) in row-major
// order as a Sample, x given as float64 grid coordinates (spec.md §4.11
// step 1).
func flattenRegion(g *grid.Grid, first, last []int) []Sample {
	n := len(first)
	extent := make([]int, n)
	total := 1
	for i := range first {
		extent[i] = last[i] - first[i]
		total *= extent[i]
	}

	samples := make([]Sample, 0, total)
	idx := append([]int(nil), first...)
	for {
		x := make([]float64, n)
		gi := make([]int, n)
		for i, v := range idx {
			x[i] = float64(v)
			gi[i] = v
		}
		samples = append(samples, Sample{X: x, Y: float64(g.At(gi...)), Weight: 1})

		axis := n - 1
		for axis >= 0 {
			idx[axis]++
			if idx[axis] < last[axis] {
				break
			}
			idx[axis] = first[axis]
			axis--
		}
		if axis < 0 {
			break
		}
	}
	return samples
}

// seedPeak derives a peak's initial parameters from a seed position
// (spec.md §4.11 step 2): height is the grid value at the rounded
// position, and each axis's linewidth is the half-max width measured by
// walking outward from the seed (forward direction) until the value
// crosses height/2, linearly interpolating between the last in-half and
// first out-of-half sample, falling back to 1.0 if no crossing is found —
// spec.md's literal fallback for this seeding step, distinct from the
// peak package's linewidth gate, whose boundary fallback instead reports
// the distance to the grid edge (see DESIGN.md).
func seedPeak(g *grid.Grid, p []float64) PeakParams {
	n := len(p)
	center := make([]int, n)
	for i, v := range p {
		center[i] = int(v + 0.5)
	}
	height := float64(g.At(center...))

	linewidth := make([]float64, n)
	for axis := range center {
		linewidth[axis] = halfMaxWidth(g, center, axis, height)
	}

	return PeakParams{Height: height, Position: append([]float64(nil), p...), Linewidth: linewidth}
}

// halfMaxWidth walks from center along axis in the forward direction until
// the value crosses height/2, returning the linearly interpolated distance
// from center to the crossing, or 1.0 if the walk exits the grid first.
func halfMaxWidth(g *grid.Grid, center []int, axis int, height float64) float64 {
	shape := g.Shape()
	half := height / 2
	prev := height
	idx := append([]int(nil), center...)
	steps := 0

	for {
		idx[axis]++
		if idx[axis] >= shape[axis] {
			return 1.0
		}
		steps++
		v := float64(g.At(idx...))
		if v <= half {
			frac := (prev - half) / (prev - v)
			return float64(steps-1) + frac
		}
		prev = v
	}
}
