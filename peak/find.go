package peak

import "github.com/cwbudde/algo-nmr2d/grid"

// Peak is one accepted extremum: its integer grid position and height.
type Peak struct {
	Position []int
	Height   float32
}

// Find scans g for local extrema matching crit, in lexicographic order
// (innermost/last axis fastest), applying each gate from spec.md §4.7 in
// turn: intensity, exclusion, extremum, drop, linewidth, buffer, accept.
//
// Empty grids, grids with no interior points on some axis, and
// inconsistent criteria (neither SeekMaxima nor SeekMinima) return an empty
// list with no error (spec.md §4.7 "Failure semantics").
func Find(g *grid.Grid, crit Criteria) ([]Peak, error) {
	if !crit.SeekMaxima && !crit.SeekMinima {
		return nil, nil
	}

	shape := g.Shape()
	n := len(shape)
	if n < 1 || n > 10 {
		return nil, ErrInvalidGrid
	}
	if !validCriteria(crit, n) {
		return nil, ErrInvalidCriteria
	}

	lo := make([]int, n)
	hi := make([]int, n)
	for i, s := range shape {
		lo[i] = 1
		hi[i] = s - 2
		if hi[i] < lo[i] {
			return nil, nil
		}
	}

	var peaks []Peak
	idx := append([]int(nil), lo...)
	for {
		v := g.At(idx...)
		if passesAll(g, idx, v, crit, peaks) {
			pos := append([]int(nil), idx...)
			peaks = append(peaks, Peak{Position: pos, Height: v})
		}

		if !next(idx, lo, hi) {
			break
		}
	}
	return peaks, nil
}

// next advances idx to the next lexicographic point in [lo,hi] (inclusive,
// innermost axis fastest), returning false once idx has exhausted the
// range.
func next(idx, lo, hi []int) bool {
	for axis := len(idx) - 1; axis >= 0; axis-- {
		idx[axis]++
		if idx[axis] <= hi[axis] {
			return true
		}
		idx[axis] = lo[axis]
	}
	return false
}

func passesAll(g *grid.Grid, p []int, v float32, crit Criteria, accepted []Peak) bool {
	if !intensityGate(v, crit) {
		return false
	}
	if excluded(p, crit.RectExclusions, crit.DiagExclusions) {
		return false
	}
	if !extremumGate(g, p, v, crit) {
		return false
	}
	if !dropGate(g, p, v, crit) {
		return false
	}
	if !linewidthGate(g, p, crit) {
		return false
	}
	if !bufferGate(p, crit, accepted) {
		return false
	}
	return true
}

// validCriteria reports whether every exclusion in crit names axes the
// rank-n grid actually has. A rect exclusion with a {Lo,Hi} length other
// than n, or a diag exclusion whose DimI/DimJ falls outside [0,n), would
// otherwise panic deep inside the gate chain rather than fail cleanly.
func validCriteria(crit Criteria, n int) bool {
	for _, r := range crit.RectExclusions {
		if len(r.Lo) != n || len(r.Hi) != n {
			return false
		}
	}
	for _, d := range crit.DiagExclusions {
		if d.DimI < 0 || d.DimI >= n || d.DimJ < 0 || d.DimJ >= n {
			return false
		}
	}
	return true
}

func intensityGate(v float32, crit Criteria) bool {
	return (crit.SeekMaxima && v >= crit.High) || (crit.SeekMinima && v <= crit.Low)
}

func bufferGate(p []int, crit Criteria, accepted []Peak) bool {
	for _, q := range accepted {
		within := true
		for i := range p {
			d := p[i] - q.Position[i]
			if d < 0 {
				d = -d
			}
			if d > crit.bufferAxis(i) {
				within = false
				break
			}
		}
		if within {
			return false
		}
	}
	return true
}
