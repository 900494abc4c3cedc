package peak

import "github.com/cwbudde/algo-nmr2d/grid"

// linewidthGate implements spec.md §4.7 step 5: for every axis with a
// positive MinLinewidth, the measured full-width-at-half-height must meet
// it. Grounded on
// original_source/.../peak_models.py:calculate_linewidth_at_point and its
// half_max_position_2d/3d helpers, generalized from their hardcoded
// 2D/3D array indexing to grid's N-D accessor.
func linewidthGate(g *grid.Grid, p []int, crit Criteria) bool {
	for axis := range p {
		minlw := crit.minLinewidthAxis(axis)
		if minlw <= 0 {
			continue
		}
		if linewidthAt(g, p, axis, crit.SeekMaxima) < minlw {
			return false
		}
	}
	return true
}

// linewidthAt measures the FWHM along axis at p by walking outward in both
// directions until the value crosses half the peak height, linearly
// interpolating the crossing position; if no crossing is found before the
// grid edge, that side falls back to index shape-1 (forward) or 1
// (backward) rather than rejecting (see DESIGN.md Open Question decisions).
func linewidthAt(g *grid.Grid, p []int, axis int, findMaximum bool) float32 {
	vPeak := g.At(p...)
	a := halfMaxPosition(g, p, axis, 1, vPeak, findMaximum)
	b := halfMaxPosition(g, p, axis, -1, vPeak, findMaximum)
	return a - b
}

func halfMaxPosition(g *grid.Grid, p []int, axis, dir int, vPeak float32, findMaximum bool) float32 {
	shape := g.Shape()
	vHalf := 0.5 * vPeak
	vPrev := vPeak
	idx := append([]int(nil), p...)

	for {
		idx[axis] += dir
		if idx[axis] < 0 || idx[axis] >= shape[axis] {
			break
		}
		vThis := g.At(idx...)

		crossed := (findMaximum && vThis < vHalf) || (!findMaximum && vThis > vHalf)
		if crossed {
			i := float32(idx[axis])
			step := float32(dir)
			return i - step*(vHalf-vThis)/(vPrev-vThis)
		}
		vPrev = vThis
	}

	if dir == 1 {
		return float32(shape[axis] - 1)
	}
	return 1.0
}
