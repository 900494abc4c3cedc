// Package gaussjordan implements full-pivoting Gauss-Jordan elimination,
// used by the fit package's Levenberg-Marquardt engine both to solve the
// damped normal equations and to recover the parameter covariance diagonal
// from the same elimination pass (spec.md §4.10, §9 "Gauss-Jordan in-place
// solve" redesign note: retained deliberately so the final alpha-inverse
// falls out of the same routine rather than a separate LU/Cholesky path).
package gaussjordan

import (
	"errors"
	"math"
)

// ErrSingular is returned when full pivoting cannot find a pivot element
// with magnitude above the epsilon threshold.
var ErrSingular = errors.New("gaussjordan: singular matrix")

const pivotEpsilon = 1e-12

// SolveWithInverse solves a*x = b for x via full-pivot Gauss-Jordan
// elimination, and simultaneously inverts a in place. a must be square and
// symmetric-sized (n x n); b must have length n. On return a holds a^-1 and
// the returned slice holds x. a and b are not mutated on the caller's
// behalf beyond being consumed into the result — callers that need the
// original matrix must copy it first.
//
// This single routine serves two spec.md needs: the damped LM step (solve
// only, inverse discarded) and the final covariance recovery (inverse only,
// by passing a zero vector for b).
func SolveWithInverse(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	for _, row := range a {
		if len(row) != n {
			return nil, errors.New("gaussjordan: matrix must be square")
		}
	}
	if len(b) != n {
		return nil, errors.New("gaussjordan: vector length mismatch")
	}

	x := append([]float64(nil), b...)

	// Bookkeeping for full pivoting: which row/column currently holds the
	// pivot for each elimination step, and which columns have been used.
	indxc := make([]int, n)
	indxr := make([]int, n)
	ipiv := make([]int, n)

	for i := 0; i < n; i++ {
		big := 0.0
		irow, icol := -1, -1

		for j := 0; j < n; j++ {
			if ipiv[j] == 1 {
				continue
			}
			for k := 0; k < n; k++ {
				if ipiv[k] != 0 {
					continue
				}
				if v := math.Abs(a[j][k]); v >= big {
					big = v
					irow, icol = j, k
				}
			}
		}
		if irow < 0 {
			return nil, ErrSingular
		}
		ipiv[icol]++

		if irow != icol {
			a[irow], a[icol] = a[icol], a[irow]
			x[irow], x[icol] = x[icol], x[irow]
		}
		indxr[i] = irow
		indxc[i] = icol

		pivot := a[icol][icol]
		if math.Abs(pivot) < pivotEpsilon {
			return nil, ErrSingular
		}

		pivinv := 1.0 / pivot
		a[icol][icol] = 1.0
		for k := range a[icol] {
			a[icol][k] *= pivinv
		}
		x[icol] *= pivinv

		for row := 0; row < n; row++ {
			if row == icol {
				continue
			}
			factor := a[row][icol]
			if factor == 0 {
				continue
			}
			a[row][icol] = 0
			for k := 0; k < n; k++ {
				a[row][k] -= a[icol][k] * factor
			}
			x[row] -= x[icol] * factor
		}
	}

	// Undo the column permutations to restore a's original column order,
	// so the diagonal of the returned a is the true inverse diagonal.
	for i := n - 1; i >= 0; i-- {
		if indxr[i] == indxc[i] {
			continue
		}
		for row := 0; row < n; row++ {
			a[row][indxr[i]], a[row][indxc[i]] = a[row][indxc[i]], a[row][indxr[i]]
		}
	}

	return x, nil
}
