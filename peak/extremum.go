package peak

import "github.com/cwbudde/algo-nmr2d/grid"

// extremumGate implements spec.md §4.7 step 3. Adjacent mode compares v
// against the 2N axis-aligned unit neighbors; non-adjacent mode compares
// against all 3^N-1 neighbors in the unit cube. Ties are accepted (the drop
// gate is what breaks flat tops), grounded on
// original_source/.../peak_finding.py's check_adjacent_extremum_2d/3d and
// check_nonadjacent_extremum_2d/3d, which reject only on strict
// v2 > v (maxima) / v2 < v (minima).
func extremumGate(g *grid.Grid, p []int, v float32, crit Criteria) bool {
	shape := g.Shape()
	if crit.Nonadjacent {
		for axis, x := range p {
			if x == 0 || x == shape[axis]-1 {
				return false
			}
		}
		return forEachCubeOffset(len(p), func(off []int) bool {
			return compareNeighbor(g, p, off, v, crit)
		})
	}

	for axis := range p {
		for _, d := range [2]int{-1, 1} {
			if p[axis]+d < 0 || p[axis]+d >= shape[axis] {
				continue
			}
			off := make([]int, len(p))
			off[axis] = d
			if !compareNeighbor(g, p, off, v, crit) {
				return false
			}
		}
	}
	return true
}

func compareNeighbor(g *grid.Grid, p, off []int, v float32, crit Criteria) bool {
	neighbor := make([]int, len(p))
	for i := range p {
		neighbor[i] = p[i] + off[i]
	}
	v2 := g.At(neighbor...)
	if crit.SeekMaxima {
		return v2 <= v
	}
	return v2 >= v
}

// forEachCubeOffset visits every offset in {-1,0,1}^n except the all-zero
// center, short-circuiting as soon as fn returns false.
func forEachCubeOffset(n int, fn func(off []int) bool) bool {
	off := make([]int, n)
	for i := range off {
		off[i] = -1
	}
	for {
		allZero := true
		for _, v := range off {
			if v != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			if !fn(off) {
				return false
			}
		}

		axis := n - 1
		for axis >= 0 {
			off[axis]++
			if off[axis] <= 1 {
				break
			}
			off[axis] = -1
			axis--
		}
		if axis < 0 {
			return true
		}
	}
}

// dropGate implements spec.md §4.7 step 4: the peak must drop by at least
// delta*|v| (or rise back above it, for minima) on every one of its 2N
// axis-aligned half-lines, a conjunction confirmed against
// original_source/.../peak_finding.py:check_drop_criterion ("Must drop
// enough in all dimensions, both directions").
func dropGate(g *grid.Grid, p []int, v float32, crit Criteria) bool {
	if crit.DropFactor <= 0 {
		return true
	}
	dropValue := crit.DropFactor * abs32(v)
	shape := g.Shape()

	for axis := range p {
		for _, dir := range [2]int{1, -1} {
			if !dropsInDirection(g, p, axis, dir, v, dropValue, shape, crit.SeekMaxima) {
				return false
			}
		}
	}
	return true
}

func dropsInDirection(g *grid.Grid, p []int, axis, dir int, vPeak, dropValue float32, shape []int, findMaximum bool) bool {
	vPrev := vPeak
	idx := append([]int(nil), p...)
	for {
		idx[axis] += dir
		if idx[axis] < 0 || idx[axis] >= shape[axis] {
			break
		}
		vThis := g.At(idx...)

		if findMaximum {
			if vThis > vPrev {
				return false
			}
			if vPeak-vThis >= dropValue {
				return true
			}
		} else {
			if vThis < vPrev {
				return false
			}
			if vThis-vPeak >= dropValue {
				return true
			}
		}
		vPrev = vThis
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
