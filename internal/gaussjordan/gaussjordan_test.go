package gaussjordan

import (
	"math"
	"testing"
)

func copyMatrix(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func TestSolveDiagonal(t *testing.T) {
	a := [][]float64{
		{2, 0},
		{0, 4},
	}
	b := []float64{6, 8}

	x, err := SolveWithInverse(copyMatrix(a), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{3, 2}
	for i := range x {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSolveGeneral(t *testing.T) {
	// 3x + 2y = 18, x + 4y = 14  ->  x=4.4, y=2.4; verify by substitution.
	a := [][]float64{
		{3, 2},
		{1, 4},
	}
	b := []float64{18, 14}

	x, err := SolveWithInverse(copyMatrix(a), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify a*x == b using the original matrix.
	for i, row := range a {
		sum := 0.0
		for j, v := range row {
			sum += v * x[j]
		}
		if math.Abs(sum-b[i]) > 1e-9 {
			t.Fatalf("row %d: a*x = %v, want %v", i, sum, b[i])
		}
	}
}

func TestInverseDiagonal(t *testing.T) {
	a := [][]float64{
		{2, 0},
		{0, 4},
	}
	inv := copyMatrix(a)
	_, err := SolveWithInverse(inv, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(inv[0][0]-0.5) > 1e-9 {
		t.Fatalf("inv[0][0] = %v, want 0.5", inv[0][0])
	}
	if math.Abs(inv[1][1]-0.25) > 1e-9 {
		t.Fatalf("inv[1][1] = %v, want 0.25", inv[1][1])
	}
}

func TestSingularMatrix(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 4},
	}
	_, err := SolveWithInverse(a, []float64{1, 2})
	if err != ErrSingular {
		t.Fatalf("err = %v, want ErrSingular", err)
	}
}
