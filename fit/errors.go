package fit

import "errors"

// ErrSingular is returned when the damped normal equations (or the final
// covariance inversion) have no pivot above the solver's epsilon threshold.
var ErrSingular = errors.New("fit: singular normal equations")

// ErrDidNotConverge is returned when the iteration cap (20) is reached
// before the convergence counter reaches 4 consecutive small-improvement
// steps (spec.md §4.10 "Stopping").
var ErrDidNotConverge = errors.New("fit: did not converge")
