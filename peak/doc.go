// Package peak finds local extrema in an N-D float32 grid and refines their
// positions to sub-pixel accuracy with an independent per-axis parabolic fit
// (spec.md §4.7-§4.8). Peaks are reported as integer grid indices; refinement
// is a separate, optional step applied to an already-found peak's position.
package peak
