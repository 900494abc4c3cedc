package fit

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nmr2d/internal/testutil"
)

func TestGaussianEvalAtPeakEqualsHeight(t *testing.T) {
	p := PeakParams{Height: 100, Position: []float64{2, 3}, Linewidth: []float64{2, 4}}
	y, d := Gaussian.eval(p, []float64{2, 3})
	testutil.RequireNear(t, y, 100, 1e-9, "y at the peak (exp terms are all 1)")
	testutil.RequireNear(t, d.dHeight, 1, 1e-9, "dHeight (y/h at the peak)")
	// At dx=0 every position/linewidth partial vanishes.
	testutil.RequireSliceNearlyEqual(t, d.dPosition, make([]float64, len(d.dPosition)), 0)
	testutil.RequireSliceNearlyEqual(t, d.dLinewidth, make([]float64, len(d.dLinewidth)), 0)
}

func TestGaussianMatchesClosedForm(t *testing.T) {
	p := PeakParams{Height: 10, Position: []float64{0}, Linewidth: []float64{2}}
	y, _ := Gaussian.eval(p, []float64{1})
	want := 10 * math.Exp(-fourLn2*1*1/4)
	testutil.RequireNear(t, y, want, 1e-9, "y")
}

func TestLorentzianEvalAtPeakEqualsHeight(t *testing.T) {
	p := PeakParams{Height: 50, Position: []float64{0}, Linewidth: []float64{3}}
	y, d := Lorentzian.eval(p, []float64{0})
	testutil.RequireNear(t, y, 50, 1e-9, "y")
	testutil.RequireNear(t, d.dHeight, 1, 1e-9, "dHeight")
}

func TestLorentzianMatchesClosedForm(t *testing.T) {
	p := PeakParams{Height: 10, Position: []float64{0}, Linewidth: []float64{2}}
	y, _ := Lorentzian.eval(p, []float64{1})
	want := 10 * (4.0 / (4.0 + 4.0*1*1))
	testutil.RequireNear(t, y, want, 1e-9, "y")
}

func TestOutOfRegionPenaltyFires(t *testing.T) {
	p := PeakParams{Height: 10, Position: []float64{10}, Linewidth: []float64{1}}
	if !outOfRegion(p, []int{0}, []int{5}) {
		t.Fatal("expected position 10 to be out of region [0,5)")
	}
	inBounds := PeakParams{Height: 10, Position: []float64{4}, Linewidth: []float64{1}}
	if outOfRegion(inBounds, []int{0}, []int{5}) {
		t.Fatal("expected position 4 to be within one cell of region [0,5)")
	}
}
