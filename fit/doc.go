// Package fit fits a sum of K independent Gaussian or Lorentzian peak
// shapes to a region of grid samples using a Levenberg-Marquardt engine
// (spec.md §4.9-§4.11).
package fit
