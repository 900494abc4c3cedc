package fit

// Shape selects a peak lineshape (spec.md §4.9).
type Shape int

const (
	Gaussian Shape = iota
	Lorentzian
)

// fourLn2 is c in spec.md §4.9's dx/linewidth convention.
const fourLn2 = 4 * 0.6931471805599453

// outOfRegionPenalty is forced as a sample's whole model value when any
// peak's position strays more than one cell outside the fit region on any
// axis (see modelAt in composite.go), repelling
// the LM step without an explicit constraint (spec.md §4.9).
const outOfRegionPenalty = 1e20

// PeakParams is one peak's parameter block: height, N-D position, and
// per-axis linewidth.
type PeakParams struct {
	Height    float64
	Position  []float64
	Linewidth []float64
}

// derivs holds a peak's partial derivatives at one sample, indexed the same
// way as PeakParams: dHeight, then one entry per position axis, then one
// entry per linewidth axis.
type derivs struct {
	dHeight   float64
	dPosition []float64
	dLinewidth []float64
}

// eval computes one peak's contribution to the model at x along with its
// partial derivatives (spec.md §4.9). eval does no region check and applies
// no penalty; modelAt in composite.go, which knows the fit's bounds, checks
// every peak with outOfRegion and applies outOfRegionPenalty.
func (s Shape) eval(p PeakParams, x []float64) (y float64, d derivs) {
	n := len(x)
	dx := make([]float64, n)
	for i := range x {
		dx[i] = x[i] - p.Position[i]
	}

	d.dPosition = make([]float64, n)
	d.dLinewidth = make([]float64, n)

	switch s {
	case Gaussian:
		y = p.Height
		for i := 0; i < n; i++ {
			w := p.Linewidth[i]
			y *= mathExp(-fourLn2 * dx[i] * dx[i] / (w * w))
		}
		d.dHeight = y / p.Height
		for i := 0; i < n; i++ {
			w := p.Linewidth[i]
			d.dPosition[i] = y * (2 * fourLn2 * dx[i]) / (w * w)
			d.dLinewidth[i] = y * (2 * fourLn2 * dx[i] * dx[i]) / (w * w * w)
		}

	case Lorentzian:
		y = p.Height
		dVals := make([]float64, n)
		for i := 0; i < n; i++ {
			w := p.Linewidth[i]
			dVals[i] = w*w + 4*dx[i]*dx[i]
			y *= w * w / dVals[i]
		}
		d.dHeight = y / p.Height
		for i := 0; i < n; i++ {
			w := p.Linewidth[i]
			d.dPosition[i] = y * 8 * dx[i] / dVals[i]
			d.dLinewidth[i] = y * 8 * dx[i] * dx[i] / (w * dVals[i])
		}
	}

	return y, d
}

// outOfRegion reports whether p's position lies more than one cell outside
// [first,last) on any axis.
func outOfRegion(p PeakParams, first, last []int) bool {
	for i, pos := range p.Position {
		if pos < float64(first[i])-1 || pos > float64(last[i]) {
			return true
		}
	}
	return false
}
