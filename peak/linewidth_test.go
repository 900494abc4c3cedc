package peak

import (
	"testing"

	"github.com/cwbudde/algo-nmr2d/grid"
)

func TestLinewidthGateRejectsNarrowPeak(t *testing.T) {
	// A one-sample-wide spike: half-max is crossed half a step out on both
	// sides, giving FWHM = 1, which must fail a minlw of 5.
	data := []float32{0, 0, 100, 0, 0, 0, 0}
	g := grid.New([]int{7}, data)
	crit := Criteria{SeekMaxima: true, MinLinewidth: []float32{5}}
	if linewidthGate(g, []int{2}, crit) {
		t.Fatal("expected narrow spike to fail the linewidth gate")
	}
}

func TestLinewidthGateAcceptsWidePeak(t *testing.T) {
	data := []float32{0, 10, 40, 70, 100, 70, 40, 10, 0}
	g := grid.New([]int{9}, data)
	crit := Criteria{MinLinewidth: []float32{1}}
	if !linewidthGate(g, []int{4}, crit) {
		t.Fatal("expected wide peak to pass a lenient linewidth gate")
	}
}

func TestLinewidthGateDisabledWhenMinlwZero(t *testing.T) {
	data := []float32{0, 0, 100, 0, 0}
	g := grid.New([]int{5}, data)
	if !linewidthGate(g, []int{2}, Criteria{}) {
		t.Fatal("expected gate to pass when no axis has a positive minlw")
	}
}
