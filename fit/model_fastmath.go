//go:build fastmath

package fit

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using algo-approx's fast approximation, trading a
// little accuracy for speed in the hot inner loop of the LM residual
// evaluation (grounded on dsp/effects/compressor_math_fast.go's identical
// //go:build fastmath split).
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
