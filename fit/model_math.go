//go:build !fastmath

package fit

import "math"

// mathExp computes e^x using the standard library.
func mathExp(x float64) float64 {
	return math.Exp(x)
}
