package contour

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nmr2d/grid"
)

// TestListSingleSpike reproduces spec.md §8's first end-to-end scenario: a
// 3x3 grid with a single interior spike, contoured at a level that only the
// spike clears. The grid-index (unshifted) coordinate convention this
// package uses (spec.md §3: origin at the lower-left corner of the (0,0)
// cell) places the resulting loop's vertices at distance 0.5 from the
// spike along each axis, all strictly inside [0, rows-1] x [0, cols-1] —
// see DESIGN.md for why this differs from spec.md §8's own illustrative
// numbers, which place vertices outside that invariant's bounds.
func TestListSingleSpike(t *testing.T) {
	data := []float32{
		0, 0, 0,
		0, 10, 0,
		0, 0, 0,
	}
	g := grid.New([]int{3, 3}, data)

	out, err := List(g, []float32{5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("levels = %d, want 1", len(out))
	}
	polys := out[0]
	if len(polys) != 1 {
		t.Fatalf("polylines = %d, want 1", len(polys))
	}
	p := polys[0]
	if !p.Closed {
		t.Fatalf("expected a closed loop")
	}
	if p.VertexCount() != 4 {
		t.Fatalf("vertex count = %d, want 4", p.VertexCount())
	}

	want := map[[2]float32]bool{
		{1, 0.5}: false, {0.5, 1}: false, {1.5, 1}: false, {1, 1.5}: false,
	}
	for i := 0; i < p.VertexCount(); i++ {
		x, y := p.Points[2*i], p.Points[2*i+1]
		key := [2]float32{x, y}
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected vertex (%v,%v)", x, y)
		}
		want[key] = true

		if x < 0 || x > 2 || y < 0 || y > 2 {
			t.Fatalf("vertex (%v,%v) violates [0,cols-1]x[0,rows-1]", x, y)
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("expected vertex %v missing", k)
		}
	}
}

// TestListGaussianRing reproduces spec.md §8's second scenario: a 5x5
// analytic Gaussian peaked at grid index (2,2), contoured at its half-max
// level. Every vertex must lie within 1.1 of the peak, and the loop must
// have a vertex count a real circle approximation would plausibly produce.
func TestListGaussianRing(t *testing.T) {
	const (
		peakRow, peakCol = 2.0, 2.0
		fwhm             = 2.0
	)
	c := fwhm / (2 * math.Sqrt(math.Ln2))

	data := make([]float32, 25)
	for r := 0; r < 5; r++ {
		for col := 0; col < 5; col++ {
			dx := float64(col) - peakCol
			dy := float64(r) - peakRow
			d2 := dx*dx + dy*dy
			data[r*5+col] = float32(math.Exp(-d2 / (c * c)))
		}
	}
	g := grid.New([]int{5, 5}, data)

	out, err := List(g, []float32{0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	polys := out[0]
	if len(polys) != 1 {
		t.Fatalf("polylines = %d, want 1", len(polys))
	}
	p := polys[0]
	if n := p.VertexCount(); n < 8 || n > 16 {
		t.Fatalf("vertex count = %d, want in [8,16]", n)
	}
	for i := 0; i < p.VertexCount(); i++ {
		x, y := p.Points[2*i], p.Points[2*i+1]
		dist := math.Hypot(float64(x)-peakCol, float64(y)-peakRow)
		if dist > 1.1 {
			t.Fatalf("vertex (%v,%v) at distance %v from peak, want <= 1.1", x, y, dist)
		}
	}
}

func TestListRejectsNonMonotonicLevels(t *testing.T) {
	g := grid.New([]int{3, 3}, make([]float32, 9))
	if _, err := List(g, []float32{0.1, 0.2, 0.1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestListRejects1D(t *testing.T) {
	g := grid.New([]int{9}, make([]float32, 9))
	if _, err := List(g, []float32{1}); err == nil {
		t.Fatal("expected ErrInvalidGrid")
	}
}

func TestListEmptyGridProducesNoPolylines(t *testing.T) {
	g := grid.New([]int{3, 3}, make([]float32, 9))
	out, err := List(g, []float32{5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out[0]) != 0 {
		t.Fatalf("polylines = %d, want 0", len(out[0]))
	}
}
