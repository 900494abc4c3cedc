package peak

// Criteria bundles every tunable of the N-D extremum scan (spec.md §4.7).
// Buffer and MinLinewidth are per-axis and must match the grid's rank; a nil
// slice is treated as all-zeros (no buffer / no linewidth requirement).
type Criteria struct {
	SeekMaxima bool
	SeekMinima bool

	// High/Low are the intensity thresholds a maximum/minimum must clear.
	High float32
	Low  float32

	// Buffer is the per-axis exclusion radius between accepted peaks.
	Buffer []int

	// Nonadjacent selects the 3^N-1 neighbor comparison for the extremum
	// gate instead of the default 2N adjacent-neighbor comparison.
	Nonadjacent bool

	// DropFactor is delta in [0,1): a peak must drop by at least
	// delta*|v| from its height along every one of its 2N axis-aligned
	// half-lines before the value stops falling away monotonically; a
	// half-line that reaches the grid edge without turning back counts as
	// dropping. A single dropping direction is not enough to pass.
	DropFactor float32

	// MinLinewidth is the per-axis minimum full-width-at-half-height; an
	// entry of 0 disables the linewidth gate on that axis.
	MinLinewidth []float32

	RectExclusions []RectExclusion
	DiagExclusions []DiagExclusion
}

// DefaultCriteria returns a Criteria with no thresholds, no exclusions, and
// adjacent-mode maxima seeking only — a permissive starting point callers
// narrow by setting fields directly.
func DefaultCriteria() Criteria {
	return Criteria{
		SeekMaxima: true,
		High:       0,
		DropFactor: 0,
	}
}

func (c Criteria) bufferAxis(i int) int {
	if i < len(c.Buffer) {
		return c.Buffer[i]
	}
	return 0
}

func (c Criteria) minLinewidthAxis(i int) float32 {
	if i < len(c.MinLinewidth) {
		return c.MinLinewidth[i]
	}
	return 0
}
