package peak

// RectExclusion marks an axis-aligned inclusive box `[Lo,Hi]` (per axis) as
// off-limits to the peak finder (spec.md §6 "rect_exclusions: list<{lo:
// i32[N], hi: i32[N]}>").
type RectExclusion struct {
	Lo []int
	Hi []int
}

// contains reports whether p falls inside the box on every axis.
func (r RectExclusion) contains(p []int) bool {
	for i, v := range p {
		if v < r.Lo[i] || v > r.Hi[i] {
			return false
		}
	}
	return true
}

// DiagExclusion excludes points near a line in the (DimI,DimJ) plane defined
// by A_i*x_i - A_j*x_j + B = 0, within tolerance Delta (spec.md §6:
// "diag_exclusions: list<{dims: (i,j), a_i, a_j, b, delta}>"). This shape of
// predicate has no direct original_source equivalent to cross-check (the
// reference implementation delegates diagonal exclusion to a native
// extension with no Python fallback); it is implemented directly from
// spec.md's parameter list as a banded-line exclusion, the natural reading
// of a linear predicate with a tolerance term.
type DiagExclusion struct {
	DimI, DimJ int
	AI, AJ     float32
	B          float32
	Delta      float32
}

// excludes reports whether p lies within Delta of the line A_i*x_i -
// A_j*x_j + B = 0 (spec.md §3's |a_i*p_i - a_j*p_j + b| <= delta).
func (d DiagExclusion) excludes(p []int) bool {
	v := d.AI*float32(p[d.DimI]) - d.AJ*float32(p[d.DimJ]) + d.B
	if v < 0 {
		v = -v
	}
	return v <= d.Delta
}

func excluded(p []int, rects []RectExclusion, diags []DiagExclusion) bool {
	for _, r := range rects {
		if r.contains(p) {
			return true
		}
	}
	for _, d := range diags {
		if d.excludes(p) {
			return true
		}
	}
	return false
}
