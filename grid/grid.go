// Package grid provides a bounds-checked accessor over a rectangular
// float32 sample array of dimension 1..10 (spec.md §3, "Sample grid").
//
// A Grid stores its data in row-major order with axis 0 the slowest-varying
// axis. The contour package treats axis 0 as rows (y) and axis 1 as columns
// (x); other packages treat all axes uniformly.
package grid

import "fmt"

// MaxDims is the highest dimensionality a Grid supports (spec.md §3: "1 ≤ N
// ≤ 10").
const MaxDims = 10

// Grid is an N-D float32 array in row-major order.
type Grid struct {
	shape  []int
	stride []int
	data   []float32
}

// New returns a Grid of the given shape backed by data, which must have
// exactly Size(shape) elements. Shape must have between 1 and MaxDims
// dimensions, each >= 1. New panics on any violation: an invalid shape is a
// programming error, not a runtime condition (spec.md §3).
func New(shape []int, data []float32) *Grid {
	if len(shape) < 1 || len(shape) > MaxDims {
		panic(fmt.Sprintf("grid: rank %d out of range [1,%d]", len(shape), MaxDims))
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			panic(fmt.Sprintf("grid: non-positive shape %v", shape))
		}
		n *= s
	}
	if len(data) != n {
		panic(fmt.Sprintf("grid: data has %d elements, shape %v needs %d", len(data), shape, n))
	}

	shapeCopy := append([]int(nil), shape...)
	return &Grid{
		shape:  shapeCopy,
		stride: strides(shapeCopy),
		data:   data,
	}
}

// strides computes row-major strides: stride[N-1] = 1, stride[i] =
// stride[i+1] * shape[i+1].
func strides(shape []int) []int {
	n := len(shape)
	s := make([]int, n)
	acc := 1
	for i := n - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// Shape returns the grid's per-axis extents. The returned slice must not be
// mutated.
func (g *Grid) Shape() []int { return g.shape }

// NDims returns the grid's rank.
func (g *Grid) NDims() int { return len(g.shape) }

// Data returns the grid's flat backing storage in row-major order. The
// returned slice must not be retained past the caller's use of the Grid
// (spec.md §5: "must not retain references to caller-provided grid buffers
// past return").
func (g *Grid) Data() []float32 { return g.data }

// Size returns the total element count of a shape.
func Size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// FlatIndex converts a multi-index to a flat offset into Data(). It panics
// if idx doesn't match the grid's rank or any component is out of range.
func (g *Grid) FlatIndex(idx ...int) int {
	if len(idx) != len(g.shape) {
		panic(fmt.Sprintf("grid: index rank %d, want %d", len(idx), len(g.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= g.shape[i] {
			panic(fmt.Sprintf("grid: index %d out of range [0,%d) on axis %d", v, g.shape[i], i))
		}
		off += v * g.stride[i]
	}
	return off
}

// At returns the value at the given multi-index.
func (g *Grid) At(idx ...int) float32 {
	return g.data[g.FlatIndex(idx...)]
}

// Set assigns the value at the given multi-index.
func (g *Grid) Set(v float32, idx ...int) {
	g.data[g.FlatIndex(idx...)] = v
}

// Rows returns the extent of axis 0 (spec.md: "the contour engine indexes
// it as rows (y)"). Panics if the grid is not 2-D.
func (g *Grid) Rows() int { return g.axis2D(0) }

// Cols returns the extent of axis 1.
func (g *Grid) Cols() int { return g.axis2D(1) }

func (g *Grid) axis2D(axis int) int {
	if len(g.shape) != 2 {
		panic(fmt.Sprintf("grid: Rows/Cols require a 2-D grid, got rank %d", len(g.shape)))
	}
	return g.shape[axis]
}

// At2D returns the value at row r (axis 0), column c (axis 1) of a 2-D
// grid. This is a hot-path convenience for the contour package, avoiding
// the variadic At's slice allocation.
func (g *Grid) At2D(r, c int) float32 {
	return g.data[r*g.stride[0]+c*g.stride[1]]
}
