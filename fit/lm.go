package fit

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nmr2d/internal/buffer"
	"github.com/cwbudde/algo-nmr2d/internal/gaussjordan"
)

const (
	initialLambda  = 1e-3
	lambdaDown     = 0.1
	lambdaUp       = 10.0
	convergenceCap = 4
	iterationCap   = 20
)

// Sample is one observed (position, intensity) pair fed to the LM engine.
// Weight defaults to 1 when zero.
type Sample struct {
	X      []float64
	Y      float64
	Weight float64
}

// Result is a completed fit: the per-peak parameters, their 1-sigma
// uncertainties (same shape as Params), and fit-quality statistics.
type Result struct {
	Params           []PeakParams
	Uncertainty      []PeakParams
	ChiSquare        float64
	ReducedChiSquare float64
	Iterations       int
}

// Run fits shape's composite model to samples within [first,last), starting
// from seed, using the Levenberg-Marquardt engine of spec.md §4.10. noise,
// if <= 0, is estimated as 0.05*max|y| over samples.
func Run(shape Shape, samples []Sample, first, last []int, seed []PeakParams, noise float64) (Result, error) {
	n := len(seed[0].Position)
	a := pack(seed)
	m := len(a)

	if noise <= 0 {
		noise = estimateNoise(samples)
	}

	alpha, beta, chiSq := linearize(shape, samples, a, n, first, last)
	lambda := initialLambda
	convergence := 0
	iterations := 0

	var work, rhs []float64
	damped := make([][]float64, m)
	for i := range damped {
		damped[i] = make([]float64, m)
	}

	for iterations < iterationCap {
		iterations++

		for i := range damped {
			copy(damped[i], alpha[i])
			damped[i][i] *= 1 + lambda
		}
		rhs = buffer.EnsureLen(rhs, m)
		copy(rhs, beta)

		delta, err := gaussjordan.SolveWithInverse(damped, rhs)
		if err != nil {
			return Result{}, ErrSingular
		}

		work = buffer.EnsureLen(work, m)
		copy(work, a)
		vecmath.AddBlockInPlace(work, delta)
		aPrime := append([]float64(nil), work...)

		chiSqPrime := chiSquareAt(shape, samples, aPrime, n, first, last)

		if chiSqPrime < chiSq {
			improvement := chiSq - chiSqPrime
			a = aPrime
			alpha, beta, chiSq = linearize(shape, samples, a, n, first, last)
			lambda *= lambdaDown

			if improvement < 0.1*noise*noise {
				convergence++
			} else {
				convergence = 0
			}
			if convergence >= convergenceCap {
				break
			}
		} else {
			lambda *= lambdaUp
			convergence = 0
		}
	}

	if convergence < convergenceCap {
		return Result{}, ErrDidNotConverge
	}

	finalAlpha, _, finalChiSq := linearize(shape, samples, a, n, first, last)
	inv := append([][]float64(nil), finalAlpha...)
	for i := range inv {
		inv[i] = append([]float64(nil), finalAlpha[i]...)
	}
	zero := make([]float64, m)
	if _, err := gaussjordan.SolveWithInverse(inv, zero); err != nil {
		return Result{}, ErrSingular
	}

	sigma := make([]float64, m)
	for p := 0; p < m; p++ {
		diag := inv[p][p]
		if diag < 0 {
			diag = 0
		}
		sigma[p] = math.Sqrt(finalChiSq * diag)
	}

	reducedChiSq := finalChiSq
	if dof := len(samples) - m; dof > 0 {
		reducedChiSq = finalChiSq / float64(dof)
	}

	return Result{
		Params:           unpack(a, n),
		Uncertainty:      unpack(sigma, n),
		ChiSquare:        finalChiSq,
		ReducedChiSquare: reducedChiSq,
		Iterations:       iterations,
	}, nil
}

// linearize builds the normal equations alpha, beta at parameter vector a
// (spec.md §4.10 "Linearization") and returns chi-square at a alongside
// them so callers don't re-walk the sample set a second time.
func linearize(shape Shape, samples []Sample, a []float64, n int, first, last []int) ([][]float64, []float64, float64) {
	m := len(a)
	peaks := unpack(a, n)

	alpha := make([][]float64, m)
	for i := range alpha {
		alpha[i] = make([]float64, m)
	}
	beta := make([]float64, m)
	chiSq := 0.0

	for _, s := range samples {
		w := s.Weight
		if w == 0 {
			w = 1
		}
		yModel, grad := modelAt(shape, peaks, s.X, first, last)
		resid := s.Y - yModel
		chiSq += w * resid * resid

		for p := 0; p < m; p++ {
			if grad[p] == 0 {
				continue
			}
			beta[p] += w * resid * grad[p]
			for q := 0; q < m; q++ {
				if grad[q] == 0 {
					continue
				}
				alpha[p][q] += w * grad[p] * grad[q]
			}
		}
	}
	return alpha, beta, chiSq
}

func chiSquareAt(shape Shape, samples []Sample, a []float64, n int, first, last []int) float64 {
	peaks := unpack(a, n)
	chiSq := 0.0
	for _, s := range samples {
		w := s.Weight
		if w == 0 {
			w = 1
		}
		yModel, _ := modelAt(shape, peaks, s.X, first, last)
		resid := s.Y - yModel
		chiSq += w * resid * resid
	}
	return chiSq
}

func estimateNoise(samples []Sample) float64 {
	maxAbs := 0.0
	for _, s := range samples {
		v := math.Abs(s.Y)
		if v > maxAbs {
			maxAbs = v
		}
	}
	return 0.05 * maxAbs
}
